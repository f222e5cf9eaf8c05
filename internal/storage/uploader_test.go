package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFakeBucket(t *testing.T) (*fakestorage.Server, *Uploader) {
	// NoListener keeps the fake in-process; the client talks to it directly
	server, err := fakestorage.NewServerWithOptions(fakestorage.Options{NoListener: true})
	require.NoError(t, err)
	t.Cleanup(server.Stop)

	server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: "product-images"})

	return server, NewUploader(server.Client(), "product-images", "products")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	// nil client proves the content type is checked before any network call
	u := NewUploader(nil, "product-images", "products")

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "plain text", contentType: "text/plain"},
		{name: "pdf", contentType: "application/pdf"},
		{name: "empty", contentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := u.Upload(context.Background(), "file.txt", tt.contentType, strings.NewReader("data"))
			require.Error(t, err)
			assert.Empty(t, url)
		})
	}
}

func TestUpload_WritesObjectAndReturnsURL(t *testing.T) {
	server, u := setupFakeBucket(t)

	url, err := u.Upload(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, url)

	assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/product-images/products/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	objectPath, ok := objectPathFromURL(url)
	require.True(t, ok)

	obj, err := server.GetObject("product-images", objectPath)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(obj.Content))
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, "public, max-age=3600", obj.CacheControl)
}

func TestDelete_RemovesUploadedObject(t *testing.T) {
	server, u := setupFakeBucket(t)
	ctx := context.Background()

	url, err := u.Upload(ctx, "photo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	u.Delete(ctx, url)

	objectPath, ok := objectPathFromURL(url)
	require.True(t, ok)
	_, err = server.GetObject("product-images", objectPath)
	assert.Error(t, err)

	// deleting again, or deleting garbage, stays silent
	u.Delete(ctx, url)
	u.Delete(ctx, "not-a-url")
}

func TestList_ReturnsFolderObjects(t *testing.T) {
	_, u := setupFakeBucket(t)
	ctx := context.Background()

	_, err := u.Upload(ctx, "a.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = u.Upload(ctx, "b.webp", "image/webp", strings.NewReader("b"))
	require.NoError(t, err)

	names, err := u.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 2)
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "products/"), name)
	}
}

func TestPublicURL(t *testing.T) {
	u := NewUploader(nil, "product-images", "products")

	url := u.PublicURL("products/abc.jpg")
	assert.Equal(t, "https://storage.googleapis.com/product-images/products/abc.jpg", url)
}

func TestObjectPath_KeepsExtension(t *testing.T) {
	u := NewUploader(nil, "product-images", "products")

	p := u.objectPath("photo.JPG")
	assert.True(t, strings.HasPrefix(p, "products/"))
	assert.True(t, strings.HasSuffix(p, ".jpg"))

	// generated names must not collide
	assert.NotEqual(t, p, u.objectPath("photo.JPG"))
}

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "public url",
			url:  "https://storage.googleapis.com/product-images/products/abc.jpg",
			want: "products/abc.jpg",
			ok:   true,
		},
		{
			name: "escaped path",
			url:  "https://storage.googleapis.com/product-images/products/a%20b.jpg",
			want: "products/a b.jpg",
			ok:   true,
		},
		{
			name: "too short",
			url:  "https://storage.googleapis.com/x",
			ok:   false,
		},
		{
			name: "empty",
			url:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := objectPathFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
