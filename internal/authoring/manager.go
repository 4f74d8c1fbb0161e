// Package authoring composes ingestion, rendering and sidecar generation into
// the operations exposed to callers: scenes, prefabs, materials, scripts,
// typed asset saves and project scaffolding.
package authoring

import (
	"context"
	"fmt"

	"github.com/unity-forge/backend/internal/config"
	"github.com/unity-forge/backend/internal/log"
	"github.com/unity-forge/backend/internal/meta"
	"github.com/unity-forge/backend/internal/storage"
)

// Manager performs authoring operations against a storage.Store.
// It is safe for concurrent use; writes to the same path are serialized.
type Manager struct {
	store    storage.Store
	metas    *meta.Generator
	locks    *pathLocks
	logger   log.Logger
	settings Settings
}

// Settings are the defaults applied when a request leaves them out.
type Settings struct {
	// EditorVersion is written into ProjectVersion.txt of new projects.
	EditorVersion string
	// ProjectsRoot is where projects are scaffolded when no root is given.
	ProjectsRoot string
}

// SettingsFromConfig extracts manager settings from the application config.
func SettingsFromConfig(cfg *config.AppConfig) Settings {
	return Settings{
		EditorVersion: cfg.Unity.EditorVersion,
		ProjectsRoot:  cfg.Storage.ProjectsRoot,
	}
}

// NewManager creates a manager. Empty settings fall back to
// config.DefaultEditorVersion and the working directory.
func NewManager(store storage.Store, settings Settings) *Manager {
	if settings.EditorVersion == "" {
		settings.EditorVersion = config.DefaultEditorVersion
	}
	if settings.ProjectsRoot == "" {
		settings.ProjectsRoot = "."
	}
	return &Manager{
		store:    store,
		metas:    meta.NewGenerator(store),
		locks:    newPathLocks(),
		logger:   log.New("authoring"),
		settings: settings,
	}
}

// begin refuses to start an operation whose context is already done.
func begin(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// writeAsset replaces the file at path and makes sure it has a sidecar.
// An existing sidecar is kept so the asset keeps its GUID.
func (m *Manager) writeAsset(path, content string) (string, error) {
	unlock := m.locks.lock(path)
	defer unlock()

	if err := m.store.WriteText(path, content); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	guid, created, err := m.metas.Ensure(path, meta.KindForPath(path))
	if err != nil {
		return "", err
	}
	if created {
		m.logger.Debugf("wrote sidecar for %s (%s)", path, guid)
	}
	return guid, nil
}
