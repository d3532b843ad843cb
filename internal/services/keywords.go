package services

// KeywordCatalog maps a category name to its ordered keyword list.
// Built once at startup and never mutated, so it is safe to share
// across requests without synchronization.
type KeywordCatalog map[string][]string

const (
	CategoryTechnicalSkills = "technical_skills"
	CategorySoftSkills      = "soft_skills"
	CategoryCertifications  = "certifications"
	CategoryFormats         = "formats"
)

// DefaultKeywordCatalog returns the ATS keyword table the analyzers
// score against.
func DefaultKeywordCatalog() KeywordCatalog {
	return KeywordCatalog{
		CategoryTechnicalSkills: {
			"python", "java", "javascript", "c++", "sql", "react", "angular", "node.js",
			"aws", "azure", "gcp", "docker", "kubernetes", "git", "linux", "windows",
			"machine learning", "data analysis", "rest api", "microservices", "mongodb",
			"postgresql", "mysql", "redis", "elasticsearch", "apache spark", "tensorflow",
		},
		CategorySoftSkills: {
			"leadership", "communication", "teamwork", "problem-solving", "project management",
			"time management", "analytical", "creative", "adaptable", "collaborative",
			"critical thinking", "agile", "scrum",
		},
		CategoryCertifications: {
			"aws certified", "gcp certified", "microsoft certified", "certified kubernetes",
			"pmp", "comptia", "cissp", "azure", "google cloud",
		},
		CategoryFormats: {
			"pdf", "docx", "doc", "html", "rtf",
		},
	}
}

// ScoringKeywords flattens the categories that feed keyword density:
// technical skills, soft skills and certifications. Formats are
// excluded; they describe file types, not resume content.
func (c KeywordCatalog) ScoringKeywords() []string {
	var all []string
	all = append(all, c[CategoryTechnicalSkills]...)
	all = append(all, c[CategorySoftSkills]...)
	all = append(all, c[CategoryCertifications]...)
	return all
}
