package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/sql"
)

func newTestDatabase(t *testing.T) sql.Database {
	t.Helper()

	db, err := sql.NewDatabase(&sql.Config{
		Driver:     sql.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "migrations.db"),
	}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })

	return db
}

func TestSQLMigrations_AppliesComponentOnce(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	buf := &bytes.Buffer{}
	migrations := cmd.NewSQLMigrations(context.Background(), db, log.NewWithWriter(buf, log.LevelInfo))

	var calls int
	source := func() ([]sql.Migration, error) {
		calls++
		return []sql.Migration{{ID: "0001", SQL: "CREATE TABLE pinned_item (id TEXT PRIMARY KEY);"}}, nil
	}

	migrations.MustApply("pinned", source)
	migrations.MustApply("pinned", source)
	assert.Equal(t, 1, calls)

	var count int
	require.NoError(t, db.GetContext(context.Background(), &count, "SELECT count(*) FROM pinned_item"))
	assert.Zero(t, count)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "sql migrations applied", entry["msg"])
	assert.Equal(t, "pinned", entry["component"])
}

func TestSQLMigrations_PanicsOnFailedSource(t *testing.T) {
	t.Parallel()
	migrations := cmd.NewSQLMigrations(context.Background(), newTestDatabase(t), log.NewStub())

	assert.PanicsWithError(t, "execute broken migrations: get migrations: no such file", func() {
		migrations.MustApply("broken", func() ([]sql.Migration, error) {
			return nil, errors.New("no such file")
		})
	})
}
