package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer conn.Close()

	var name string
	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	conn, err := Open(path)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO tasks(name, estimated_hours, created_date) VALUES('A', 1, '2026-01-01')`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = Open(path)
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpen_RejectsNonPositiveHours(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO tasks(name, estimated_hours, created_date) VALUES('A', 0, '2026-01-01')`)
	assert.Error(t, err)
}
