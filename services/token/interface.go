package token

import "context"

// TokenProvider hands out a bearer token valid for the upstream tenant
// API. Implementations cache aggressively; callers must not.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}
