package services

import (
	"context"
	"log"
	"math"
	"sort"

	"resume-analyzer/internal/models"
)

// AnalyzerService composes the pipeline: validate, prompt, complete,
// parse, enrich. Validation failures come back as error records
// rather than errors; callers inspect the record's status field, the
// same way the API's consumers do. Real failures (LLM transport,
// unparseable output) are returned as errors.
type AnalyzerService interface {
	AnalyzeATS(ctx context.Context, resumeText string) (models.AnalysisResult, error)
	AnalyzeMatch(ctx context.Context, resumeText, jdText string) (models.AnalysisResult, error)
	CompareJDs(ctx context.Context, resumeText string, jdTexts []string) (*models.ComparisonResult, error)
}

type analyzerService struct {
	llm           LLMService
	promptBuilder *PromptBuilder
	keywords      KeywordCatalog
}

func NewAnalyzerService(llm LLMService, keywords KeywordCatalog) AnalyzerService {
	return &analyzerService{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		keywords:      keywords,
	}
}

const invalidResumeMessage = "Resume content is too short or missing key sections"

// AnalyzeATS scores a resume for ATS compatibility and attaches the
// locally computed keyword fields to whatever the model returned.
func (a *analyzerService) AnalyzeATS(ctx context.Context, resumeText string) (models.AnalysisResult, error) {
	if !IsValidResume(resumeText) {
		return models.AnalysisResult{
			"status":    "error",
			"error":     invalidResumeMessage,
			"ats_score": 0,
		}, nil
	}

	log.Println("🤖 Requesting ATS analysis from LLM...")
	completion, err := a.llm.Complete(ctx, a.promptBuilder.BuildATSPrompt(resumeText))
	if err != nil {
		return nil, err
	}

	result, err := ExtractJSON(completion)
	if err != nil {
		return nil, err
	}

	density := KeywordDensity(resumeText, a.keywords.ScoringKeywords())
	result["keyword_density"] = math.Round(density*100) / 100
	result["technical_skills_found"] = FindKeywords(resumeText, a.keywords[CategoryTechnicalSkills])
	result["soft_skills_found"] = FindKeywords(resumeText, a.keywords[CategorySoftSkills])
	result["certifications_found"] = FindKeywords(resumeText, a.keywords[CategoryCertifications])

	return result, nil
}

// AnalyzeMatch scores a resume against one job description. The
// parsed record is returned as the model produced it, with no
// enrichment.
func (a *analyzerService) AnalyzeMatch(ctx context.Context, resumeText, jdText string) (models.AnalysisResult, error) {
	if !IsValidResume(resumeText) {
		return models.AnalysisResult{
			"status": "error",
			"error":  invalidResumeMessage,
		}, nil
	}

	if !IsValidJobDescription(jdText) {
		return models.AnalysisResult{
			"status": "error",
			"error":  "Job description is too short (minimum 200 characters required)",
		}, nil
	}

	log.Println("🤖 Requesting JD match analysis from LLM...")
	completion, err := a.llm.Complete(ctx, a.promptBuilder.BuildMatchPrompt(resumeText, jdText))
	if err != nil {
		return nil, err
	}

	return ExtractJSON(completion)
}

// CompareJDs runs the match analysis once per job description,
// sequentially and with per-item failure isolation: one bad JD or one
// failed model call becomes an inline error record instead of
// aborting the batch. Every record carries its original zero-based
// jd_index.
func (a *analyzerService) CompareJDs(ctx context.Context, resumeText string, jdTexts []string) (*models.ComparisonResult, error) {
	perItem := make([]models.AnalysisResult, 0, len(jdTexts))

	for idx, jdText := range jdTexts {
		result, err := a.AnalyzeMatch(ctx, resumeText, jdText)
		if err != nil {
			log.Printf("⚠️ JD %d analysis failed: %v", idx, err)
			result = models.AnalysisResult{
				"status": "error",
				"error":  err.Error(),
			}
		}
		result["jd_index"] = idx
		perItem = append(perItem, result)
	}

	scored := []models.AnalysisResult{}
	for _, result := range perItem {
		if _, ok := result.MatchScore(); ok {
			scored = append(scored, result)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		si, _ := scored[i].MatchScore()
		sj, _ := scored[j].MatchScore()
		return si > sj
	})

	comparison := &models.ComparisonResult{
		TotalJDs: len(jdTexts),
		Results:  scored,
	}

	// Deliberately the first per-item record in input order, not the
	// top scorer; see models.ComparisonResult.
	if len(perItem) > 0 {
		if idx, ok := perItem[0]["jd_index"].(int); ok {
			comparison.BestMatchIndex = &idx
		}
	}

	return comparison, nil
}
