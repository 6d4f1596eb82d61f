package dto

// MatchRequest keeps candidate and jobs as raw maps so that fields the
// matcher does not know about survive the round trip untouched.
type MatchRequest struct {
	Candidate map[string]any   `json:"candidate"`
	Jobs      []map[string]any `json:"jobs"`
}
