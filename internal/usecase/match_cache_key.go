package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

type matchCacheKeyInput struct {
	Candidate map[string]any   `json:"candidate"`
	Jobs      []map[string]any `json:"jobs"`
	Normalize bool             `json:"normalize"`
}

// MatchResultCacheKey derives a stable key from the full request:
// the cached value embeds the job payloads, so the key has to cover
// them too. encoding/json writes map keys sorted, which makes the
// digest canonical. Returns "" when the payload cannot be marshaled.
func MatchResultCacheKey(params MatchParams, normalize bool) string {
	in := matchCacheKeyInput{
		Candidate: params.Candidate,
		Jobs:      params.Jobs,
		Normalize: normalize,
	}

	b, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return "match:rank:" + hex.EncodeToString(sum[:])
}
