package services

import (
	"encoding/json"
	"regexp"

	"resume-analyzer/internal/models"
	"resume-analyzer/pkg/errors"
)

// Models are inconsistent about how they return JSON: sometimes the
// bare object, sometimes fenced in a markdown code block, sometimes
// buried in explanatory prose. ExtractJSON tries each shape in order
// of strictness; the first strategy that yields a valid object wins.

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	braceSpanRe   = regexp.MustCompile(`(?s)\{.*\}`)
)

type extractStrategy func(string) (models.AnalysisResult, bool)

func parseDirect(text string) (models.AnalysisResult, bool) {
	var record models.AnalysisResult
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, false
	}
	// "null" unmarshals successfully into a nil map; only a real
	// object counts as a recovered record.
	if record == nil {
		return nil, false
	}
	return record, true
}

func parseFencedBlock(text string) (models.AnalysisResult, bool) {
	match := fencedBlockRe.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	return parseDirect(match[1])
}

// parseBraceSpan grabs the first '{' through the last '}' and hopes
// for the best. Greedy on purpose: prose around the object is common,
// braces inside it are too.
func parseBraceSpan(text string) (models.AnalysisResult, bool) {
	span := braceSpanRe.FindString(text)
	if span == "" {
		return nil, false
	}
	return parseDirect(span)
}

// ExtractJSON recovers a structured record from raw model output. No
// schema validation happens here; callers get the mapping as-is.
func ExtractJSON(text string) (models.AnalysisResult, error) {
	strategies := []extractStrategy{parseDirect, parseFencedBlock, parseBraceSpan}
	for _, strategy := range strategies {
		if record, ok := strategy(text); ok {
			return record, nil
		}
	}
	return nil, errors.Parse("Could not extract valid structured data from response")
}
