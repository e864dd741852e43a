package attachment

import (
	"context"
	"io"
	"time"
)

// StorageDriver abstracts the binary store that holds attachment content.
type StorageDriver interface {
	// Save writes the content under the given key.
	Save(ctx context.Context, key string, body io.Reader, contentType string) error

	// Get streams the content back along with its content type.
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the content. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// GenerateURL returns a public-facing URL for the key.
	GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
