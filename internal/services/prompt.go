package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const atsScoreTemplate = `
Analyze this resume and provide an ATS (Applicant Tracking System) compatibility score.
Consider the following factors:
1. Format and structure (proper sections like Summary, Experience, Education, Skills)
2. Keyword presence and density
3. Use of standard formatting (no images, tables, special characters that break parsing)
4. Clear job titles and company names
5. Proper date formatting
6. Contact information presence

Provide your response ONLY in this exact JSON format:
{
    "ats_score": <number between 0-100>,
    "score_breakdown": {
        "format_structure": <0-25>,
        "keyword_optimization": <0-25>,
        "parseability": <0-20>,
        "clarity": <0-15>,
        "completeness": <0-15>
    },
    "strengths": [<list of strong points>],
    "weaknesses": [<list of improvement areas>],
    "suggestions": [<list of specific improvements>]
}
`

const jdMatchTemplate = `
Analyze this resume against the provided job description. Provide a detailed match analysis.

Resume:
%s

Job Description:
%s

Provide your response ONLY in this exact JSON format:
{
    "overall_match_score": <number between 0-100>,
    "match_breakdown": {
        "skills_match": <0-30>,
        "experience_match": <0-25>,
        "qualification_match": <0-20>,
        "responsibility_alignment": <0-25>
    },
    "matched_skills": [<skills present in both resume and JD>],
    "missing_skills": [<skills required by JD but missing from resume>],
    "matched_responsibilities": [<responsibilities the candidate has done>],
    "missing_responsibilities": [<key responsibilities from JD not in resume>],
    "strengths": [<why candidate is a good fit>],
    "gaps": [<areas where candidate is lacking>],
    "recommendations": [<specific improvements to resume for this JD>],
    "final_assessment": "<2-3 sentence summary of fit>"
}
`

// BuildATSPrompt renders the ATS scoring prompt with the resume text
// appended after the instructions.
func (pb *PromptBuilder) BuildATSPrompt(resumeText string) string {
	return fmt.Sprintf("%s\n\nResume:\n%s", atsScoreTemplate, resumeText)
}

// BuildMatchPrompt renders the resume/JD match prompt with both texts
// substituted at their insertion points.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jdText string) string {
	return fmt.Sprintf(jdMatchTemplate, resumeText, jdText)
}
