package auth

import (
	"context"
	"fmt"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
)

type firebaseProvider struct {
	client *firebaseauth.Client
}

func NewFirebaseProvider(client *firebaseauth.Client) Provider {
	return &firebaseProvider{
		client: client,
	}
}

func (p *firebaseProvider) Session(ctx context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("VerifyIDToken: %w", err)
	}

	email := ""
	if raw, ok := decoded.Claims["email"]; ok {
		if e, ok := raw.(string); ok {
			email = strings.TrimSpace(e)
		}
	}

	return &Session{
		UserID: decoded.UID,
		Email:  email,
	}, nil
}

func (p *firebaseProvider) User(ctx context.Context, userID string) (*User, error) {
	record, err := p.client.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w", err)
	}

	return &User{
		UserID: record.UID,
		Email:  record.Email,
	}, nil
}

func (p *firebaseProvider) SignOut(ctx context.Context, userID string) error {
	if err := p.client.RevokeRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("RevokeRefreshTokens: %w", err)
	}
	return nil
}
