package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantOK    bool
		wantLevel slog.Level
	}{
		{
			name:   "no new waits",
			prev:   sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantOK: false,
		},
		{
			name:      "short waits stay at debug",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "long waits warn",
			prev:      sql.DBStats{},
			cur:       sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, attrs, ok := poolWaitReport(tt.prev, tt.cur)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLevel, level)
				assert.NotEmpty(t, attrs)
			}
		})
	}
}
