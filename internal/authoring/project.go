package authoring

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/parser"
)

// DefaultProjectName replaces project names that sanitize to nothing.
const DefaultProjectName = "UnityProject"

// AssetFolders are created under Assets/ by ScaffoldProject.
var AssetFolders = []string{
	FolderScripts, FolderScenes, FolderPrefabs, FolderMaterials,
	FolderTextures, FolderAudio, FolderText,
}

var editorVersionRe = regexp.MustCompile(`(?m)^m_EditorVersion:\s*(\S+)`)

// SanitizeProjectName keeps letters, digits, '-' and '_'. Spaces become '_'
// and everything else is dropped.
func SanitizeProjectName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultProjectName
	}
	return b.String()
}

func versionFile(projectPath string) string {
	return filepath.Join(projectPath, "ProjectSettings", "ProjectVersion.txt")
}

func manifestFile(projectPath string) string {
	return filepath.Join(projectPath, "Packages", "manifest.json")
}

// ScaffoldProject creates the skeleton of a Unity project and returns its
// absolute path. Existing files are left alone, so calling it again with
// the same arguments only fills in what is missing.
func (m *Manager) ScaffoldProject(ctx context.Context, name, root, version string) (string, error) {
	if err := begin(ctx, "scaffold project"); err != nil {
		return "", err
	}
	if root == "" {
		root = m.settings.ProjectsRoot
	}
	if version == "" {
		version = m.settings.EditorVersion
	}

	projectPath, err := filepath.Abs(filepath.Join(root, SanitizeProjectName(name)))
	if err != nil {
		return "", fmt.Errorf("resolving project path: %w", err)
	}

	unlock := m.locks.lock(projectPath)
	defer unlock()

	for _, folder := range AssetFolders {
		dir := filepath.Join(projectPath, "Assets", folder)
		if err := m.store.MakeDirectory(dir); err != nil {
			return "", fmt.Errorf("scaffolding %s: %w", dir, err)
		}
		if _, _, err := m.metas.Ensure(dir, models.AssetFolder); err != nil {
			return "", err
		}
	}
	for _, dir := range []string{"ProjectSettings", "Packages"} {
		if err := m.store.MakeDirectory(filepath.Join(projectPath, dir)); err != nil {
			return "", fmt.Errorf("scaffolding %s: %w", dir, err)
		}
	}

	if err := m.writeIfAbsent(versionFile(projectPath), "m_EditorVersion: "+version+"\n"); err != nil {
		return "", err
	}
	if err := m.writeIfAbsent(manifestFile(projectPath), parser.EmptyManifest); err != nil {
		return "", err
	}

	m.logger.Infof("Project scaffolded at %s", projectPath)
	return projectPath, nil
}

func (m *Manager) writeIfAbsent(path, content string) error {
	if m.store.Exists(path) {
		return nil
	}
	if err := m.store.WriteText(path, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// GetProjectInfo summarizes the project at projectPath.
func (m *Manager) GetProjectInfo(ctx context.Context, projectPath string) (*models.ProjectInfo, error) {
	if err := begin(ctx, "project info"); err != nil {
		return nil, err
	}
	if !m.store.IsDir(projectPath) {
		return nil, fmt.Errorf("project not found: %s: %w", projectPath, models.ErrNotFound)
	}

	info := &models.ProjectInfo{
		Name:      filepath.Base(projectPath),
		Path:      projectPath,
		HasAssets: m.store.IsDir(filepath.Join(projectPath, "Assets")),
	}
	if text, err := m.store.ReadText(versionFile(projectPath)); err == nil {
		if match := editorVersionRe.FindStringSubmatch(text); match != nil {
			info.Version = match[1]
		}
	}
	return info, nil
}

// AddPackages merges name/version pairs into Packages/manifest.json. New
// versions win; other manifest keys are preserved. It returns the resulting
// dependency set.
func (m *Manager) AddPackages(ctx context.Context, projectPath string, packages map[string]string) (map[string]string, error) {
	if err := begin(ctx, "add packages"); err != nil {
		return nil, err
	}
	for name, version := range packages {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(version) == "" {
			return nil, fmt.Errorf("package %q: name and version are required: %w", name, models.ErrInvalidInput)
		}
	}

	path := manifestFile(projectPath)
	unlock := m.locks.lock(path)
	defer unlock()

	current := parser.EmptyManifest
	if m.store.Exists(path) {
		text, err := m.store.ReadText(path)
		if err != nil {
			return nil, fmt.Errorf("reading manifest: %w", err)
		}
		current = text
	}

	manifest, err := parser.ParseManifest([]byte(current))
	if err != nil {
		return nil, err
	}
	manifest.Merge(packages)
	data, err := manifest.Encode()
	if err != nil {
		return nil, err
	}
	if err := m.store.WriteBytes(path, data); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	m.logger.Infof("Added %d package(s) to %s", len(packages), path)
	return manifest.Dependencies, nil
}
