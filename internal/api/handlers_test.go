package api

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unity-forge/backend/internal/authoring"
	"github.com/unity-forge/backend/internal/testutil"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer(allowDeletion bool) (*echo.Echo, *testutil.MockStorage) {
	store := testutil.NewMockStorage()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	RegisterRoutes(e, NewHandlers(&Dependencies{
		Service:            authoring.NewManager(store, authoring.Settings{ProjectsRoot: "/projects"}),
		Version:            "test",
		EditorVersion:      "6000.3.2f1",
		AllowAssetDeletion: allowDeletion,
	}))
	return e, store
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHandleHealth(t *testing.T) {
	e, _ := newTestServer(false)

	rec := doJSON(e, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "6000.3.2f1", body["editorVersion"])
}

func TestHandleCreateScene(t *testing.T) {
	e, store := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/scenes", `{"path": "/p/Assets/Scenes/Main.unity"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "/p/Assets/Scenes/Main.unity", body["path"])
	assert.Len(t, body["guid"], 32)
	assert.True(t, store.Exists("/p/Assets/Scenes/Main.unity.meta"))

	rec = doJSON(e, http.MethodPost, "/api/scenes",
		`{"path": "/p/Assets/Scenes/Level.unity", "gameObjects": [{"name": "Floor"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), decodeBody(t, rec)["objects"])

	text, err := store.ReadText("/p/Assets/Scenes/Level.unity")
	require.NoError(t, err)
	assert.Contains(t, text, "m_Name: Floor")
}

func TestHandleCreateScene_Errors(t *testing.T) {
	e, _ := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/scenes", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, rec)["code"])

	rec = doJSON(e, http.MethodPost, "/api/scenes", `{"path": "/p/a.unity", "gameObjects": [{"position": "up"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeBody(t, rec)["code"])

	rec = doJSON(e, http.MethodPost, "/api/scenes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAddObject(t *testing.T) {
	e, store := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/scenes/objects", `{"scenePath": "/p/missing.unity", "gameObject": {"name": "Cube"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/api/scenes", `{"path": "/p/s.unity"}`).Code)
	rec = doJSON(e, http.MethodPost, "/api/scenes/objects", `{"scenePath": "/p/s.unity", "gameObject": {"name": "Cube"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	text, err := store.ReadText("/p/s.unity")
	require.NoError(t, err)
	assert.Contains(t, text, "m_Name: Cube")

	rec = doJSON(e, http.MethodPost, "/api/scenes/objects", `{"scenePath": "/p/s.unity"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePrefabAndMaterial(t *testing.T) {
	e, store := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/prefabs", `{"path": "/p/Enemy.prefab", "gameObject": {"name": "Enemy"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, store.Exists("/p/Enemy.prefab"))

	rec = doJSON(e, http.MethodPost, "/api/materials", `{"path": "/p/Red.mat", "material": {"name": "Red", "color": {"r": 1, "g": 0, "b": 0}}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	text, err := store.ReadText("/p/Red.mat")
	require.NoError(t, err)
	assert.Contains(t, text, "m_Name: Red")

	rec = doJSON(e, http.MethodPost, "/api/materials", `{"path": "/p/Bad.mat", "material": {"renderMode": 9}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVerifyDocument(t *testing.T) {
	e, _ := newTestServer(false)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/api/scenes", `{"path": "/p/s.unity"}`).Code)

	rec := doJSON(e, http.MethodGet, "/api/documents/verify?path=/p/s.unity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["valid"])

	rec = doJSON(e, http.MethodGet, "/api/documents/verify", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScripts(t *testing.T) {
	e, store := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/scripts", `{"path": "/p/Assets/Scripts/Mover.cs"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Mover", body["className"])
	assert.Equal(t, true, body["syntax"].(map[string]interface{})["isValid"])
	assert.True(t, store.Exists("/p/Assets/Scripts/Mover.cs.meta"))

	rec = doJSON(e, http.MethodPost, "/api/scripts/check", `{"content": "class A {"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["isValid"])
}

func TestHandleSaveBinaryAsset(t *testing.T) {
	e, store := newTestServer(false)
	data := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})

	rec := doJSON(e, http.MethodPost, "/api/assets/binary",
		fmt.Sprintf(`{"projectPath": "/p", "name": "icon.png", "data": %q}`, data))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/p/Assets/Textures/icon.png", decodeBody(t, rec)["path"])
	assert.True(t, store.Exists("/p/Assets/Textures/icon.png.meta"))

	rec = doJSON(e, http.MethodPost, "/api/assets/binary", `{"projectPath": "/p", "name": "icon.png", "data": "***"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/assets/binary", `{"projectPath": "/p", "name": "icon.png"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSaveBinaryAsset_Gzip(t *testing.T) {
	e, store := newTestServer(false)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("RIFF....WAVE"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	data := base64.StdEncoding.EncodeToString(buf.Bytes())

	rec := doJSON(e, http.MethodPost, "/api/assets/binary",
		fmt.Sprintf(`{"projectPath": "/p", "name": "hit.wav", "data": %q, "encoding": "gzip"}`, data))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	text, err := store.ReadText("/p/Assets/Audio/hit.wav")
	require.NoError(t, err)
	assert.Equal(t, "RIFF....WAVE", text)

	rec = doJSON(e, http.MethodPost, "/api/assets/binary",
		fmt.Sprintf(`{"projectPath": "/p", "name": "hit.wav", "data": %q, "encoding": "brotli"}`, data))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSaveBinaryAsset_DecodedSizeLimit(t *testing.T) {
	store := testutil.NewMockStorage()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	RegisterRoutes(e, NewHandlers(&Dependencies{
		Service:      authoring.NewManager(store, authoring.Settings{}),
		MaxAssetSize: 1024,
	}))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(make([]byte, 64*1024))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, buf.Len(), 1024)
	data := base64.StdEncoding.EncodeToString(buf.Bytes())

	rec := doJSON(e, http.MethodPost, "/api/assets/binary",
		fmt.Sprintf(`{"projectPath": "/p", "name": "bomb.bin", "data": %q, "encoding": "gzip"}`, data))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
	assert.Zero(t, store.GetFileCount())

	small := base64.StdEncoding.EncodeToString(make([]byte, 1024))
	rec = doJSON(e, http.MethodPost, "/api/assets/binary",
		fmt.Sprintf(`{"projectPath": "/p", "name": "ok.bin", "data": %q}`, small))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHandleAssetLifecycle(t *testing.T) {
	e, _ := newTestServer(true)

	rec := doJSON(e, http.MethodPost, "/api/assets/text", `{"projectPath": "/p", "name": "notes.txt", "content": "hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/assets?path=/p/Assets/Text/notes.txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", decodeBody(t, rec)["content"])

	rec = doJSON(e, http.MethodGet, "/api/assets/list?dir=/p/Assets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	rec = doJSON(e, http.MethodDelete, "/api/assets?path=/p/Assets/Text/notes.txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["deleted"])

	rec = doJSON(e, http.MethodDelete, "/api/assets?path=/p/Assets/Text/notes.txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["deleted"])

	rec = doJSON(e, http.MethodGet, "/api/assets?path=/p/Assets/Text/notes.txt", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteAsset_Disabled(t *testing.T) {
	e, store := newTestServer(false)
	store.AddFile("/p/a.txt", "x")

	rec := doJSON(e, http.MethodDelete, "/api/assets?path=/p/a.txt", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.True(t, store.Exists("/p/a.txt"))
}

func TestHandleListAssets_Msgpack(t *testing.T) {
	e, store := newTestServer(false)
	store.AddFile("/p/Assets/Scripts/A.cs", "")
	store.AddFile("/p/Assets/Scripts/A.cs.meta", "")

	req := httptest.NewRequest(http.MethodGet, "/api/assets/list?dir=/p/Assets&pattern=*.cs", nil)
	req.Header.Set(echo.HeaderAccept, MIMEApplicationMsgpack)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MIMEApplicationMsgpack, rec.Header().Get(echo.HeaderContentType))

	var out struct {
		Files []string `msgpack:"files"`
		Count int      `msgpack:"count"`
	}
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"/p/Assets/Scripts/A.cs"}, out.Files)
	assert.Equal(t, 1, out.Count)
}

func TestHandleProjects(t *testing.T) {
	e, store := newTestServer(false)

	rec := doJSON(e, http.MethodPost, "/api/projects", `{"name": "My Game", "version": "2022.3.0f1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "My_Game", body["name"])
	assert.Equal(t, "/projects/My_Game", body["path"])
	assert.Equal(t, "2022.3.0f1", body["version"])
	assert.Equal(t, true, body["hasAssets"])
	assert.True(t, store.Exists("/projects/My_Game/Assets/Scripts.meta"))

	rec = doJSON(e, http.MethodPost, "/api/projects/packages",
		`{"projectPath": "/projects/My_Game", "packages": {"com.unity.cinemachine": "2.9.7"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	deps := decodeBody(t, rec)["dependencies"].(map[string]interface{})
	assert.Equal(t, "2.9.7", deps["com.unity.cinemachine"])

	rec = doJSON(e, http.MethodPost, "/api/projects/packages", `{"projectPath": "/projects/My_Game"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/projects/info?path=/projects/Missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
