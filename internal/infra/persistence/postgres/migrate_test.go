package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_AreOrderedAndAnnotated(t *testing.T) {
	t.Parallel()

	names, err := MigrationFiles()
	require.NoError(t, err)
	require.Equal(t, []string{"00001_users.sql", "00002_vendors.sql", "00003_planner.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestMigrations_CreateChangeFeedTables(t *testing.T) {
	t.Parallel()

	body, err := fs.ReadFile(migrations, migrationsDir+"/00002_vendors.sql")
	require.NoError(t, err)

	for _, table := range []string{"vendor_profiles", "vendor_inquiries", "vendor_analytics"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
