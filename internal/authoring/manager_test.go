package authoring

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unity-forge/backend/internal/emitter"
	"github.com/unity-forge/backend/internal/meta"
	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/testutil"
)

const scenePath = "/proj/Assets/Scenes/Main.unity"

func newTestManager() (*Manager, *testutil.MockStorage) {
	store := testutil.NewMockStorage()
	return NewManager(store, Settings{}), store
}

func decode(t *testing.T, text string) any {
	t.Helper()
	var tree any
	require.NoError(t, json.Unmarshal([]byte(text), &tree))
	return tree
}

func TestNewManager_Defaults(t *testing.T) {
	m, _ := newTestManager()
	assert.Equal(t, "6000.3.2f1", m.settings.EditorVersion)
	assert.Equal(t, ".", m.settings.ProjectsRoot)
}

func TestCreateScene(t *testing.T) {
	m, store := newTestManager()

	rec, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)
	assert.Equal(t, scenePath, rec.Path)
	assert.Equal(t, 2, rec.Objects)
	assert.True(t, meta.IsGUID(rec.GUID), rec.GUID)

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.Contains(t, text, "m_Name: Main Camera")
	assert.Contains(t, text, "m_Name: Directional Light")
	assert.True(t, emitter.Verify(text).Valid())

	sidecar, err := store.ReadText(scenePath + ".meta")
	require.NoError(t, err)
	assert.Contains(t, sidecar, "guid: "+rec.GUID)
	assert.Contains(t, sidecar, "DefaultImporter:")
}

func TestCreateScene_KeepsGUID(t *testing.T) {
	m, _ := newTestManager()

	first, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)
	second, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)
	assert.Equal(t, first.GUID, second.GUID)
}

func TestCreateDetailedScene(t *testing.T) {
	m, store := newTestManager()
	tree := decode(t, `{"gameObjects": [
		{"name": "Floor", "scale": {"x": 10, "z": 10}, "components": [{"type": "MeshFilter", "mesh": "Plane"}, {"type": "MeshRenderer"}]},
		{"name": "Crate", "position": [0, 0.5, 0], "components": [{"type": "BoxCollider"}, {"type": "Rigidbody", "mass": 2}]}
	]}`)

	rec, err := m.CreateDetailedScene(context.Background(), scenePath, tree)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Objects)

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.Contains(t, text, "m_LocalScale: {x: 10, y: 1, z: 10}")
	assert.Contains(t, text, "m_Mass: 2")
	report := emitter.Verify(text)
	assert.True(t, report.Valid(), report.Errors)
}

func TestCreateDetailedScene_InvalidInput(t *testing.T) {
	m, store := newTestManager()

	_, err := m.CreateDetailedScene(context.Background(), scenePath, decode(t, `[{"name": 5}]`))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, 0, store.GetFileCount())
}

func TestAddObjectToScene(t *testing.T) {
	m, store := newTestManager()
	created, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)

	rec, err := m.AddObjectToScene(context.Background(), scenePath,
		decode(t, `{"name": "Cube", "components": [{"type": "MeshFilter"}, {"type": "MeshRenderer"}]}`))
	require.NoError(t, err)
	assert.Equal(t, created.GUID, rec.GUID)

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(text, "%YAML 1.1"))
	assert.Contains(t, text, "--- !u!1 &106\nGameObject:")
	assert.Contains(t, text, "m_Name: Cube")

	report := emitter.Verify(text)
	assert.True(t, report.Valid(), report.Errors)
	assert.Empty(t, report.DuplicateHandles)
}

func TestAddObjectToScene_MissingNewline(t *testing.T) {
	m, store := newTestManager()
	store.AddFile(scenePath, strings.TrimSuffix(emitter.RenderScene(nil, nil), "\n"))

	_, err := m.AddObjectToScene(context.Background(), scenePath, decode(t, `{"name": "Empty"}`))
	require.NoError(t, err)

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.True(t, emitter.Verify(text).Valid())
}

func TestAddObjectToScene_NotFound(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.AddObjectToScene(context.Background(), scenePath, decode(t, `{"name": "Cube"}`))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddObjectToScene_HandleSpaceExhausted(t *testing.T) {
	m, store := newTestManager()
	existing := "%YAML 1.1\n--- !u!1 &9223372036854775807\nGameObject:\n  m_Name: Last\n"
	store.AddFile(scenePath, existing)

	_, err := m.AddObjectToScene(context.Background(), scenePath, decode(t, `{"name": "Cube"}`))
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.Equal(t, existing, text)
}

func TestAddObjectToScene_Concurrent(t *testing.T) {
	m, store := newTestManager()
	_, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.AddObjectToScene(context.Background(), scenePath, map[string]any{"name": "Clone"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	text, err := store.ReadText(scenePath)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(text, "m_Name: Clone"))
	assert.True(t, emitter.Verify(text).Valid())
}

func TestCreatePrefab(t *testing.T) {
	m, store := newTestManager()
	path := "/proj/Assets/Prefabs/Enemy.prefab"

	rec, err := m.CreatePrefab(context.Background(), path,
		decode(t, `{"name": "Enemy", "tag": "Enemy", "components": [{"type": "CapsuleCollider"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Objects)

	text, err := store.ReadText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "--- !u!1 &100\nGameObject:")
	assert.Contains(t, text, "m_TagString: Enemy")
	assert.NotContains(t, text, "OcclusionCullingSettings")
	assert.True(t, emitter.Verify(text).Valid())
}

func TestCreateMaterial(t *testing.T) {
	m, store := newTestManager()
	path := "/proj/Assets/Materials/Glass.mat"

	_, err := m.CreateMaterial(context.Background(), path,
		decode(t, `{"name": "Glass", "color": {"r": 0.8, "g": 0.9, "b": 1, "a": 0.3}, "renderMode": "Transparent"}`))
	require.NoError(t, err)

	text, err := store.ReadText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "--- !u!21 &2100000\nMaterial:")
	assert.Contains(t, text, "m_Name: Glass")
	assert.Contains(t, text, "_ALPHAPREMULTIPLY_ON")
}

func TestVerifyDocument(t *testing.T) {
	m, store := newTestManager()
	_, err := m.CreateScene(context.Background(), scenePath)
	require.NoError(t, err)

	report, err := m.VerifyDocument(context.Background(), scenePath)
	require.NoError(t, err)
	assert.True(t, report.Valid())
	assert.True(t, report.HasHeader)
	assert.Equal(t, int64(105), report.MaxHandle)

	store.AddFile("/proj/broken.unity", emitter.Header+"--- !u!1 &5\nGameObject:\n  m_Component:\n  - component: {fileID: 77}\n")
	report, err = m.VerifyDocument(context.Background(), "/proj/broken.unity")
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, report.UnresolvedRefs)

	_, err = m.VerifyDocument(context.Background(), "/proj/missing.unity")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOperations_CanceledContext(t *testing.T) {
	m, store := newTestManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.CreateScene(ctx, scenePath)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = m.CreateScript(ctx, "/proj/Assets/Scripts/A.cs", "", "")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = m.ScaffoldProject(ctx, "Game", "/projects", "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.GetFileCount())
}

func TestWriteAsset_StorageFailure(t *testing.T) {
	m, store := newTestManager()
	store.FailWrites = assert.AnError

	_, err := m.CreateScene(context.Background(), scenePath)
	assert.ErrorIs(t, err, assert.AnError)
}
