package client

import (
	"context"
	"log"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func InitStorageClient(ctx context.Context, credentialsFile string) *storage.Client {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	gcs, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Fatal("failed to init storage client:", err)
	}

	return gcs
}
