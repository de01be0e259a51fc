package contracts

import "context"

// TokenProvider gives access to the bearer token of the visitor whose
// session id travels in ctx. An empty token means the visitor is anonymous.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
