package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: sqlite\nlenient_load: true\ndaily_goal_hours: 3\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.True(t, cfg.LenientLoad)
	assert.Equal(t, 3.0, cfg.DailyGoalHours)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.BackendName())
	assert.False(t, cfg.LenientLoad)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: postgres\n"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Backend: BackendSQLite, DataFile: "study.db", DailyGoalHours: 2.5}

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	require.NoError(t, Save(dir, &Config{}))
	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestStorePath(t *testing.T) {
	dir := "/data"
	assert.Equal(t, filepath.Join(dir, "tasks.json"), (&Config{}).StorePath(dir))
	assert.Equal(t, filepath.Join(dir, "tasks.db"), (&Config{Backend: BackendSQLite}).StorePath(dir))
	assert.Equal(t, filepath.Join(dir, "mine.json"), (&Config{DataFile: "mine.json"}).StorePath(dir))
	assert.Equal(t, "/elsewhere/t.json", (&Config{DataFile: "/elsewhere/t.json"}).StorePath(dir))
}

func TestSetAndGet(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("backend", "sqlite"))
	require.NoError(t, cfg.Set("lenient_load", "true"))
	require.NoError(t, cfg.Set("daily_goal_hours", "1.5"))
	require.NoError(t, cfg.Set("data_file", "x.db"))

	for key, want := range map[string]string{
		"backend":          "sqlite",
		"lenient_load":     "true",
		"daily_goal_hours": "1.5",
		"data_file":        "x.db",
	} {
		got, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestSet_Invalid(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Set("backend", "mongo"))
	assert.Error(t, cfg.Set("lenient_load", "maybe"))
	assert.Error(t, cfg.Set("daily_goal_hours", "-1"))
	assert.Error(t, cfg.Set("colour", "blue"))
	assert.Equal(t, &Config{}, cfg, "failed sets leave config untouched")
}
