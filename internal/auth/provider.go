package auth

import "context"

// Session is the auth provider's notion of a currently authenticated identity.
type Session struct {
	UserID string
	Email  string
}

type User struct {
	UserID string
	Email  string
}

// Provider wraps the hosted auth service. Sessions are fetched fresh on every
// call, never cached.
type Provider interface {
	// Session verifies the presented token and returns the identity behind it.
	Session(ctx context.Context, token string) (*Session, error)
	User(ctx context.Context, userID string) (*User, error)
	SignOut(ctx context.Context, userID string) error
}
