package meta

import (
	"fmt"

	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/storage"
)

// Generator writes sidecars through a storage.Store.
type Generator struct {
	store storage.Store
}

func NewGenerator(store storage.Store) *Generator {
	return &Generator{store: store}
}

// PathFor returns the sidecar path of an asset.
func PathFor(assetPath string) string {
	return assetPath + Extension
}

// Write writes the sidecar of assetPath, replacing any existing one. An empty
// guid is replaced by a fresh one. The GUID written is returned.
func (g *Generator) Write(assetPath string, kind models.AssetKind, guid string) (string, error) {
	if guid == "" {
		guid = NewGUID()
	} else if !IsGUID(guid) {
		return "", fmt.Errorf("guid %q: expected 32 lowercase hex characters: %w", guid, models.ErrInvalidInput)
	}
	if err := g.store.WriteText(PathFor(assetPath), Render(kind, guid)); err != nil {
		return "", fmt.Errorf("writing sidecar for %s: %w", assetPath, err)
	}
	return guid, nil
}

// Ensure writes a sidecar only when none exists, so an asset keeps its GUID
// across rewrites. It returns the GUID in effect and whether a new sidecar
// was written. An existing sidecar without a readable guid is replaced.
func (g *Generator) Ensure(assetPath string, kind models.AssetKind) (string, bool, error) {
	metaPath := PathFor(assetPath)
	if g.store.Exists(metaPath) {
		text, err := g.store.ReadText(metaPath)
		if err != nil {
			return "", false, fmt.Errorf("reading sidecar for %s: %w", assetPath, err)
		}
		if guid, ok := ReadGUID(text); ok {
			return guid, false, nil
		}
	}
	guid, err := g.Write(assetPath, kind, "")
	if err != nil {
		return "", false, err
	}
	return guid, true, nil
}

// GUID reads the GUID recorded for assetPath.
func (g *Generator) GUID(assetPath string) (string, error) {
	text, err := g.store.ReadText(PathFor(assetPath))
	if err != nil {
		return "", err
	}
	guid, ok := ReadGUID(text)
	if !ok {
		return "", fmt.Errorf("sidecar for %s has no guid: %w", assetPath, models.ErrInvalidInput)
	}
	return guid, nil
}
