package client

import (
	"context"
	"log"

	"jewelry-storefront/internal/config"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitFirebaseAuth builds the auth provider client. With an empty credentials
// file it falls back to Application Default Credentials.
func InitFirebaseAuth(ctx context.Context, cfg *config.Firebase) *firebaseauth.Client {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		log.Fatal("failed to init firebase app:", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatal("failed to init firebase auth client:", err)
	}

	return authClient
}
