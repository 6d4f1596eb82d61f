package dto

// MatchResponse carries the ranked jobs, each one the original record
// plus its computed match_score.
type MatchResponse struct {
	Matches []map[string]any `json:"matches"`
}
