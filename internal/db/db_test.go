package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "app.db")
}

func TestOpenCreatesParentDir(t *testing.T) {
	conn, err := Open(openTemp(t))
	require.NoError(t, err)
	defer conn.Close()
	assert.NoError(t, conn.Ping())
}

func TestMigrateIsIdempotent(t *testing.T) {
	conn, err := Open(openTemp(t))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))

	var applied int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)

	for _, table := range []string{"users", "games", "daily_results"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestMigrateRollsBackBrokenFile(t *testing.T) {
	conn, err := Open(openTemp(t))
	require.NoError(t, err)
	defer conn.Close()

	fsys := fstest.MapFS{
		"migrations/001_ok.sql":     {Data: []byte(`CREATE TABLE t1 (id INTEGER);`)},
		"migrations/002_broken.sql": {Data: []byte(`CREATE TABLE t2 (id INTEGER); NOT SQL;`)},
	}
	err = migrateFS(conn, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.sql")

	var names []string
	rows, err := conn.Query(`SELECT name FROM _migrations ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	assert.Equal(t, []string{"001_ok.sql"}, names)
}
