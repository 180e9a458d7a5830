package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestUploadsHandler_Serve(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	blobs := storage.NewBlobStorage(bucket, "", testLogger())
	key, url, err := blobs.Upload(context.Background(), "logos", "logo.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/"+key, url)

	h := NewUploadsHandler(UploadsHandlerParams{Storage: blobs, Logger: testLogger()})
	e := newTestEcho()
	e.GET("/uploads/*", h.Serve)

	t.Run("serves the stored object", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing object", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/uploads/logos/nope.png", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FILE_NOT_FOUND", errorBody(t, rec).Code)
	})

	t.Run("path escaping the bucket", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/uploads/..%2F..%2Fetc%2Fpasswd", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
