package services

import (
	"regexp"
	"strings"
)

const (
	minResumeLength = 500
	minJDLength     = 200
)

// resumeSections are matched as plain substrings, not whole words, so
// "experienced" satisfies the "experience" check. Loose on purpose.
var resumeSections = []string{"experience", "education", "skills"}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialRe    = regexp.MustCompile(`[^a-zA-Z0-9_\s\-.,@:()]`)
)

// IsValidResume reports whether text is substantial enough to spend a
// model call on: at least 500 characters after trimming and at least
// one common resume section keyword somewhere in it.
func IsValidResume(text string) bool {
	if len(strings.TrimSpace(text)) < minResumeLength {
		return false
	}

	lower := strings.ToLower(text)
	for _, section := range resumeSections {
		if strings.Contains(lower, section) {
			return true
		}
	}
	return false
}

// IsValidJobDescription requires 200 trimmed characters and nothing
// else; job postings have no predictable section structure.
func IsValidJobDescription(text string) bool {
	return len(strings.TrimSpace(text)) >= minJDLength
}

// CleanText collapses whitespace runs to single spaces and strips
// characters outside alphanumerics, whitespace and -.,@:() — a
// pre-processing helper for callers that want normalized text. The
// analysis path feeds the model raw extracted text and does not call
// this.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// KeywordDensity counts case-insensitive whole-word occurrences of
// every keyword (multi-word keywords match as literal phrases) and
// returns occurrences per hundred whitespace-delimited tokens.
// Occurrences are not deduplicated: a keyword appearing three times
// contributes three to the numerator.
func KeywordDensity(text string, keywords []string) float64 {
	textLower := strings.ToLower(text)
	keywordCount := 0

	for _, keyword := range keywords {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
		keywordCount += len(pattern.FindAllString(textLower, -1))
	}

	wordCount := len(strings.Fields(textLower))
	if wordCount == 0 {
		return 0
	}

	return float64(keywordCount) / float64(wordCount) * 100
}

// FindKeywords returns the keywords with at least one whole-word,
// case-insensitive match in text. Unlike KeywordDensity this reports
// distinct presence: each keyword appears at most once regardless of
// how often it occurs.
func FindKeywords(text string, keywords []string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	found := []string{}

	for _, keyword := range keywords {
		if seen[keyword] {
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
		if pattern.MatchString(textLower) {
			seen[keyword] = true
			found = append(found, keyword)
		}
	}

	return found
}
