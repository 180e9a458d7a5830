// Package storage stores uploaded files in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultPublicBaseURL = "/uploads"

// BlobStorage implements service.FileStorage on top of a blob.Bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage wraps an open bucket. Public URLs are publicBaseURL joined with the object key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *BlobStorage {
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL
	}

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes data to <prefix>/<uuid><ext>.
func (s *BlobStorage) Upload(ctx context.Context, prefix, filename, contentType string, data []byte) (string, string, error) {
	key := path.Join(prefix, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to upload %s", key)
	}

	s.logger.Info("File uploaded",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return key, s.publicURL(key), nil
}

// Delete removes key. A missing object is ignored.
func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// KeyFromURL reverses publicURL for URLs this storage produced.
func (s *BlobStorage) KeyFromURL(publicURL string) (string, bool) {
	key, ok := strings.CutPrefix(publicURL, s.publicBaseURL+"/")
	if !ok || key == "" {
		return "", false
	}

	return key, true
}

// Read returns an object's contents and content type.
func (s *BlobStorage) Read(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return data, attrs.ContentType, nil
}

// Close closes the bucket.
func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *BlobStorage) publicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	return gcerrors.Code(errors.Cause(err)) == gcerrors.NotFound
}

// Params holds dependencies for the storage provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the storage both as the domain interface and as the concrete
// type used by the upload file server.
type Result struct {
	fx.Out

	Storage     service.FileStorage
	BlobStorage *BlobStorage
}

// New opens the configured bucket.
func New(params Params) (Result, error) {
	bucketURL := "mem://"
	publicBaseURL := ""
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		publicBaseURL = params.Config.Storage.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Storage bucket opened", slog.String("bucket_url", bucketURL))

	s := NewBlobStorage(bucket, publicBaseURL, params.Logger)
	params.Lc.Append(fx.StopHook(s.Close))

	return Result{Storage: s, BlobStorage: s}, nil
}
