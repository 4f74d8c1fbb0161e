package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "PROJECTS_ROOT", "UNITY_VERSION", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8089, cfg.Server.Port)
	assert.Equal(t, DefaultEditorVersion, cfg.Unity.EditorVersion)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "projects"), cfg.Storage.ProjectsRoot)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should be written")
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9000\nstorage:\n  projectsRoot: /srv/unity\nunity:\n  editorVersion: 2022.3.10f1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/unity", cfg.Storage.ProjectsRoot)
	assert.Equal(t, "2022.3.10f1", cfg.Unity.EditorVersion)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.BindAddress)
	assert.True(t, cfg.Security.AllowAssetDeletion)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("PROJECTS_ROOT", "/tmp/projects")
	t.Setenv("UNITY_VERSION", "2021.3.0f1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "/tmp/projects", cfg.Storage.ProjectsRoot)
	assert.Equal(t, "2021.3.0f1", cfg.Unity.EditorVersion)
	assert.Equal(t, "debug", cfg.Advanced.LogLevel)
	assert.Equal(t, "0.0.0.0:7001", cfg.GetServerAddr())
}

func TestGetBodyLimitBytes(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(64<<20), cfg.GetBodyLimitBytes())

	cfg.Server.BodyLimit = "2K"
	assert.Equal(t, int64(2048), cfg.GetBodyLimitBytes())

	cfg.Server.BodyLimit = "lots"
	assert.Zero(t, cfg.GetBodyLimitBytes())

	cfg.Server.BodyLimit = ""
	assert.Zero(t, cfg.GetBodyLimitBytes())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.ProjectsRoot = filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, cfg.EnsureDirectories())

	info, err := os.Stat(cfg.Storage.ProjectsRoot)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
