package service

import "context"

// FileStorage stores uploaded files and exposes them by public URL.
type FileStorage interface {
	// Upload writes data under a generated key inside prefix and returns the key and its public URL.
	Upload(ctx context.Context, prefix, filename, contentType string, data []byte) (key string, publicURL string, err error)

	// Delete removes the object at key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a public URL produced by Upload back to its key.
	KeyFromURL(publicURL string) (string, bool)
}
