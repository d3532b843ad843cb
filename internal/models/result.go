package models

// AnalysisResult is the record recovered from a model completion,
// possibly enriched with locally computed keyword fields. It stays an
// untyped mapping on purpose: the model decides which keys come back
// and downstream consumers tolerate missing ones.
type AnalysisResult map[string]interface{}

// MatchScore returns the numeric overall match score when present.
func (r AnalysisResult) MatchScore() (float64, bool) {
	v, ok := r["overall_match_score"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// ComparisonResult reports a resume compared against several job
// descriptions. Results holds only the entries that produced a
// numeric match score, sorted best first; per-item failures are kept
// out of it but still counted in TotalJDs.
//
// BestMatchIndex is the jd_index of the first per-item result in
// original input order, not of the top scorer. The original service
// shipped with this behavior and the frontend depends on it; the
// true best match is Results[0].
type ComparisonResult struct {
	TotalJDs       int              `json:"total_jds"`
	Results        []AnalysisResult `json:"results"`
	BestMatchIndex *int             `json:"best_match_index"`
}
