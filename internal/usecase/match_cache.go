package usecase

import (
	"context"
	"time"
)

// MatchCache is the slice of the cache layer the match usecase needs.
// A nil MatchCache disables caching.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
