package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-matcher/internal/domain/matching"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrInternal       = errors.New("internal error")
)

// MatchParams is the decoded request body: the candidate record and the
// job records exactly as the client sent them. Shape validation happens
// here, not at decode time, so arbitrary extra fields pass through.
type MatchParams struct {
	Candidate map[string]any
	Jobs      []map[string]any
}

type MatchUsecase interface {
	Match(ctx context.Context, params MatchParams) ([]matching.RankedPosting, error)
}

type Match struct {
	normalize bool
	cache     MatchCache
	logger    *log.Logger
}

func NewMatchUsecase(normalize bool, cache MatchCache, logger *log.Logger) *Match {
	return &Match{normalize: normalize, cache: cache, logger: logger}
}

func (u *Match) Match(ctx context.Context, params MatchParams) ([]matching.RankedPosting, error) {
	candidate, err := candidateFromPayload(params.Candidate)
	if err != nil {
		return nil, err
	}

	if params.Jobs == nil {
		return nil, fmt.Errorf("%w: jobs must be an array", ErrMalformedInput)
	}
	postings := make([]matching.Posting, 0, len(params.Jobs))
	for i, job := range params.Jobs {
		p, err := postingFromPayload(i, job)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	if u.normalize {
		candidate.Skills = normalizeSkills(candidate.Skills)
		for i := range postings {
			postings[i].RequiredSkills = normalizeSkills(postings[i].RequiredSkills)
		}
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = MatchResultCacheKey(params, u.normalize)
	}
	if cacheKey != "" {
		var cached []matching.RankedPosting
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Match] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Match] Cache MISS: %s", cacheKey)
		}
	}

	ranked := matching.Rank(candidate, postings)

	if cacheKey != "" {
		_ = u.cache.SetJSON(ctx, cacheKey, ranked, 0)
	}
	return ranked, nil
}

func candidateFromPayload(payload map[string]any) (matching.Candidate, error) {
	raw, ok := payload["skills"]
	if !ok {
		return matching.Candidate{}, fmt.Errorf("%w: candidate.skills is required", ErrMalformedInput)
	}
	skills, ok := stringSlice(raw)
	if !ok {
		return matching.Candidate{}, fmt.Errorf("%w: candidate.skills must be an array of strings", ErrMalformedInput)
	}
	return matching.Candidate{Skills: skills}, nil
}

func postingFromPayload(idx int, payload map[string]any) (matching.Posting, error) {
	if payload == nil {
		return matching.Posting{}, fmt.Errorf("%w: jobs[%d] must be an object", ErrMalformedInput, idx)
	}
	raw, ok := payload["required_skills"]
	if !ok {
		return matching.Posting{}, fmt.Errorf("%w: jobs[%d].required_skills is required", ErrMalformedInput, idx)
	}
	required, ok := stringSlice(raw)
	if !ok {
		return matching.Posting{}, fmt.Errorf("%w: jobs[%d].required_skills must be an array of strings", ErrMalformedInput, idx)
	}
	return matching.Posting{RequiredSkills: required, Payload: payload}, nil
}

// stringSlice accepts the two shapes a JSON array of strings can decode
// into: []any straight from encoding/json, or []string from cached or
// test inputs.
func stringSlice(v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out, true
	case []any:
		out := make([]string, 0, len(vv))
		for _, it := range vv {
			s, ok := it.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
