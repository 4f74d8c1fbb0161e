package authoring

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/unity-forge/backend/internal/meta"
	"github.com/unity-forge/backend/internal/models"
)

// Conventional Assets subfolders.
const (
	FolderScripts   = "Scripts"
	FolderScenes    = "Scenes"
	FolderPrefabs   = "Prefabs"
	FolderMaterials = "Materials"
	FolderTextures  = "Textures"
	FolderAudio     = "Audio"
	FolderText      = "Text"
)

const scriptTemplate = `using UnityEngine;

public class %s : MonoBehaviour
{
    void Start()
    {
        
    }

    void Update()
    {
        
    }
}`

// textFolders routes text assets by extension; anything else goes to Text.
var textFolders = map[string]string{
	".cs":     FolderScripts,
	".unity":  FolderScenes,
	".prefab": FolderPrefabs,
	".mat":    FolderMaterials,
}

// CreateScript writes a C# script. With empty content a MonoBehaviour
// template named after className is used; an empty className is taken from
// the file name. The syntax check is advisory and never blocks the write.
func (m *Manager) CreateScript(ctx context.Context, path, className, content string) (*models.ScriptRecord, error) {
	if err := begin(ctx, "create script"); err != nil {
		return nil, err
	}
	if className == "" {
		className = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	className = SanitizeClassName(className)
	if className == "" {
		return nil, fmt.Errorf("create script %s: empty class name: %w", path, models.ErrInvalidInput)
	}
	if content == "" {
		content = fmt.Sprintf(scriptTemplate, className)
	}

	syntax := ValidateScriptSyntax(content)
	if !syntax.IsValid {
		m.logger.Warningf("Script %s failed the syntax check: %s", path, strings.Join(syntax.Errors, "; "))
	}

	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Script created at %s", path)
	return &models.ScriptRecord{
		AssetRecord: models.AssetRecord{Path: path, GUID: guid},
		ClassName:   className,
		Syntax:      syntax,
	}, nil
}

// SanitizeClassName turns name into a C# identifier: spaces and other
// characters outside letters, digits and '_' are removed, and a leading digit
// gets a '_' prefix.
func SanitizeClassName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "_" + out
	}
	return out
}

// CreateGenericAsset writes text content as-is.
func (m *Manager) CreateGenericAsset(ctx context.Context, path, content string) (*models.AssetRecord, error) {
	if err := begin(ctx, "create asset"); err != nil {
		return nil, err
	}
	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Asset created at %s", path)
	return &models.AssetRecord{Path: path, GUID: guid}, nil
}

// assetFileName reduces a caller-supplied name to a plain file name.
func assetFileName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "", fmt.Errorf("invalid asset name %q: %w", name, models.ErrInvalidInput)
	}
	return base, nil
}

// SaveBinaryAsset stores raw bytes under the project's Assets folder:
// textures in Textures, audio in Audio and anything else in Text. The
// sidecar kind follows the file extension.
func (m *Manager) SaveBinaryAsset(ctx context.Context, projectPath, name string, data []byte) (*models.AssetRecord, error) {
	if err := begin(ctx, "save binary asset"); err != nil {
		return nil, err
	}
	fileName, err := assetFileName(name)
	if err != nil {
		return nil, err
	}

	kind := meta.KindForPath(fileName)
	folder := FolderText
	switch kind {
	case models.AssetTexture:
		folder = FolderTextures
	case models.AssetAudio:
		folder = FolderAudio
	}
	path := filepath.Join(projectPath, "Assets", folder, fileName)

	unlock := m.locks.lock(path)
	defer unlock()

	if err := m.store.WriteBytes(path, data); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	guid, _, err := m.metas.Ensure(path, kind)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Saved %d bytes to %s", len(data), path)
	return &models.AssetRecord{Path: path, GUID: guid}, nil
}

// SaveTextAsset stores text under the project's Assets folder, routed by
// extension: scripts, scenes, prefabs and materials to their folders, the
// rest to Text.
func (m *Manager) SaveTextAsset(ctx context.Context, projectPath, name, content string) (*models.AssetRecord, error) {
	if err := begin(ctx, "save text asset"); err != nil {
		return nil, err
	}
	fileName, err := assetFileName(name)
	if err != nil {
		return nil, err
	}

	folder, ok := textFolders[strings.ToLower(filepath.Ext(fileName))]
	if !ok {
		folder = FolderText
	}
	path := filepath.Join(projectPath, "Assets", folder, fileName)

	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Saved text asset %s", path)
	return &models.AssetRecord{Path: path, GUID: guid}, nil
}

// ReadAsset returns the text of an asset.
func (m *Manager) ReadAsset(ctx context.Context, path string) (string, error) {
	if err := begin(ctx, "read asset"); err != nil {
		return "", err
	}
	if m.store.IsDir(path) {
		return "", fmt.Errorf("%s is a directory: %w", path, models.ErrInvalidInput)
	}
	return m.store.ReadText(path)
}

// DeleteAsset removes an asset and its sidecar. A missing asset or a
// directory is logged and reported as not deleted, without error.
func (m *Manager) DeleteAsset(ctx context.Context, path string) (bool, error) {
	if err := begin(ctx, "delete asset"); err != nil {
		return false, err
	}

	unlock := m.locks.lock(path)
	defer unlock()

	if !m.store.Exists(path) {
		m.logger.Warningf("File not found for deletion: %s", path)
		return false, nil
	}
	if m.store.IsDir(path) {
		m.logger.Warningf("Refusing to delete directory: %s", path)
		return false, nil
	}
	guid, _ := m.metas.GUID(path)
	if err := m.store.Delete(path); err != nil {
		return false, fmt.Errorf("deleting %s: %w", path, err)
	}
	metaPath := meta.PathFor(path)
	if m.store.Exists(metaPath) {
		if err := m.store.Delete(metaPath); err != nil && !errors.Is(err, models.ErrNotFound) {
			return true, fmt.Errorf("deleting %s: %w", metaPath, err)
		}
	}
	m.logger.Infof("Deleted asset at %s (guid %q)", path, guid)
	return true, nil
}

// ListAssets lists files below dir matching pattern, excluding sidecars.
// A missing directory yields an empty list.
func (m *Manager) ListAssets(ctx context.Context, dir, pattern string) ([]string, error) {
	if err := begin(ctx, "list assets"); err != nil {
		return nil, err
	}
	if !m.store.IsDir(dir) {
		m.logger.Warningf("Directory not found: %s", dir)
		return []string{}, nil
	}

	files, err := m.store.ListFiles(dir, pattern)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(files))
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f), meta.Extension) {
			continue
		}
		list = append(list, f)
	}
	return list, nil
}
