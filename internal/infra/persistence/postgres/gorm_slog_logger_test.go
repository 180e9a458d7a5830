package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_TraceErrorIncludesRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "query failed")
	assert.Contains(t, out, `"request_id":"req-123"`)
	assert.Contains(t, out, "SELECT 1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}
	l := newGormSlogLogger(newBufferLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT count(*) FROM inquiries", 3 }, nil)

	out := buf.String()
	assert.Contains(t, out, "slow query")
	assert.Contains(t, out, `"rows":3`)
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "query failed")
}
