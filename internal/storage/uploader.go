// Package storage uploads product media to object storage and hands back
// public retrieval addresses.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

const publicBaseURL = "https://storage.googleapis.com"

type Uploader struct {
	client *storage.Client
	bucket string
	folder string
}

func NewUploader(client *storage.Client, bucket, folder string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		folder: strings.Trim(folder, "/"),
	}
}

// Upload validates the content type before any network call, writes the file
// under a collision-resistant name and returns its public URL. Any failure
// aborts with an empty URL; no partially written object is handed out.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("file must be an image, got %q", contentType)
	}

	objectPath := u.objectPath(filename)

	w := u.client.Bucket(u.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer: %w", err)
	}

	return u.PublicURL(objectPath), nil
}

// Delete is best-effort cleanup: failures are logged and swallowed so they
// never block the caller's primary flow.
func (u *Uploader) Delete(ctx context.Context, publicURL string) {
	if publicURL == "" {
		return
	}

	objectPath, ok := objectPathFromURL(publicURL)
	if !ok {
		log.Printf("delete image: cannot derive object path from %q", publicURL)
		return
	}

	err := u.client.Bucket(u.bucket).Object(objectPath).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		log.Printf("delete image %s: %v", objectPath, err)
	}
}

// List returns the object names under the media folder.
func (u *Uploader) List(ctx context.Context) ([]string, error) {
	it := u.client.Bucket(u.bucket).Objects(ctx, &storage.Query{Prefix: u.folder + "/"})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

func (u *Uploader) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", publicBaseURL, u.bucket, strings.TrimLeft(objectPath, "/"))
}

func (u *Uploader) objectPath(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", u.folder, uuid.NewString(), ext)
}

// objectPathFromURL takes the last two path segments, matching the
// <folder>/<file> layout used by Upload.
func objectPathFromURL(publicURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", false
	}

	parts := strings.Split(strings.Trim(parsed.EscapedPath(), "/"), "/")
	if len(parts) < 2 {
		return "", false
	}

	objectPath, err := url.PathUnescape(strings.Join(parts[len(parts)-2:], "/"))
	if err != nil {
		return "", false
	}
	return objectPath, true
}
