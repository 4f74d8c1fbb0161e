package authoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/unity-forge/backend/internal/emitter"
	"github.com/unity-forge/backend/internal/meta"
	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/parser"
)

// DefaultSceneObjects returns the camera and light every new scene starts with.
func DefaultSceneObjects() []*models.SceneObject {
	camera := models.NewSceneObject("Main Camera")
	camera.Tag = "MainCamera"
	camera.Position = models.Vec3(0, 1, -10)
	camera.AddComponent(models.ClassCamera).
		With("clearFlags", models.Number(1)).
		With("fov", models.Number(60)).
		With("nearClip", models.Number(0.3)).
		With("farClip", models.Number(1000))

	light := models.NewSceneObject("Directional Light")
	light.EulerHint = models.Vec3(50, -30, 0)
	light.Rotation = parser.EulerToQuaternion(light.EulerHint)
	light.AddComponent(models.ClassLight).
		With("type", models.Number(1)).
		With("intensity", models.Number(1))

	return []*models.SceneObject{camera, light}
}

// CreateScene writes a scene holding the default camera and light.
func (m *Manager) CreateScene(ctx context.Context, path string) (*models.AssetRecord, error) {
	if err := begin(ctx, "create scene"); err != nil {
		return nil, err
	}
	return m.writeScene(path, DefaultSceneObjects())
}

// CreateDetailedScene writes a scene from a decoded JSON description; see
// parser.ParseSceneObjects for the accepted shapes.
func (m *Manager) CreateDetailedScene(ctx context.Context, path string, tree any) (*models.AssetRecord, error) {
	if err := begin(ctx, "create detailed scene"); err != nil {
		return nil, err
	}
	objects, err := parser.ParseSceneObjects(tree)
	if err != nil {
		return nil, fmt.Errorf("create detailed scene %s: %w", path, err)
	}
	return m.writeScene(path, objects)
}

func (m *Manager) writeScene(path string, objects []*models.SceneObject) (*models.AssetRecord, error) {
	content := emitter.RenderScene(emitter.NewAllocator(emitter.DefaultStartHandle), objects)
	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Scene created at %s with %d objects", path, len(objects))
	return &models.AssetRecord{Path: path, GUID: guid, Objects: len(objects)}, nil
}

// AddObjectToScene appends one object to an existing scene. New handles
// continue after the highest handle already in the file.
func (m *Manager) AddObjectToScene(ctx context.Context, scenePath string, tree any) (*models.AssetRecord, error) {
	if err := begin(ctx, "add object"); err != nil {
		return nil, err
	}
	obj, err := parser.ParseSceneObject(tree)
	if err != nil {
		return nil, fmt.Errorf("add object to %s: %w", scenePath, err)
	}

	unlock := m.locks.lock(scenePath)
	defer unlock()

	if !m.store.Exists(scenePath) || m.store.IsDir(scenePath) {
		return nil, fmt.Errorf("scene file not found: %s: %w", scenePath, models.ErrNotFound)
	}
	existing, err := m.store.ReadText(scenePath)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	ids, err := emitter.NewAllocatorAfter(existing)
	if err != nil {
		return nil, fmt.Errorf("add object to %s: %w", scenePath, err)
	}
	first := ids.Peek()
	fragment := emitter.RenderFragment(ids, obj)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		fragment = "\n" + fragment
	}
	if err := m.store.AppendText(scenePath, fragment); err != nil {
		return nil, fmt.Errorf("appending to scene: %w", err)
	}
	guid, _, err := m.metas.Ensure(scenePath, meta.KindForPath(scenePath))
	if err != nil {
		return nil, err
	}

	m.logger.Infof("GameObject %s added to scene %s at &%d", obj.Name, scenePath, first)
	return &models.AssetRecord{Path: scenePath, GUID: guid, Objects: 1}, nil
}

// CreatePrefab writes a prefab holding a single root object.
func (m *Manager) CreatePrefab(ctx context.Context, path string, tree any) (*models.AssetRecord, error) {
	if err := begin(ctx, "create prefab"); err != nil {
		return nil, err
	}
	root, err := parser.ParseSceneObject(tree)
	if err != nil {
		return nil, fmt.Errorf("create prefab %s: %w", path, err)
	}

	content := emitter.RenderPrefab(emitter.NewAllocator(emitter.DefaultStartHandle), root)
	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Prefab created at %s", path)
	return &models.AssetRecord{Path: path, GUID: guid, Objects: 1}, nil
}

// CreateMaterial writes a material. Its block uses emitter.MaterialHandle so
// renderers can reference it by GUID.
func (m *Manager) CreateMaterial(ctx context.Context, path string, tree any) (*models.AssetRecord, error) {
	if err := begin(ctx, "create material"); err != nil {
		return nil, err
	}
	mat, err := parser.ParseMaterial(tree)
	if err != nil {
		return nil, fmt.Errorf("create material %s: %w", path, err)
	}

	content := emitter.RenderMaterial(emitter.NewAllocator(emitter.MaterialHandle), mat)
	guid, err := m.writeAsset(path, content)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Material %s created at %s", mat.Name, path)
	return &models.AssetRecord{Path: path, GUID: guid}, nil
}

// VerifyDocument checks the structure of a stored scene, prefab or material.
func (m *Manager) VerifyDocument(ctx context.Context, path string) (*models.DocumentReport, error) {
	if err := begin(ctx, "verify document"); err != nil {
		return nil, err
	}
	text, err := m.store.ReadText(path)
	if err != nil {
		return nil, err
	}
	return emitter.Verify(text), nil
}
