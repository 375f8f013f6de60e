// Package auth provides token management for the Shasta API client.
//
// The Shasta API authenticates every call with a static Bearer token; there
// is no refresh or grant flow. TokenManager stays an interface so tests can
// substitute failing or recording implementations.
package auth

import "context"

// TokenManager supplies the Bearer token attached to each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager returns a fixed token for every request.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}
