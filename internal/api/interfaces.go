// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/unity-forge/backend/internal/authoring"
	"github.com/unity-forge/backend/internal/models"
)

// Authoring is the service the handlers delegate to.
// This allows mocking in tests
type Authoring interface {
	CreateScene(ctx context.Context, path string) (*models.AssetRecord, error)
	CreateDetailedScene(ctx context.Context, path string, tree any) (*models.AssetRecord, error)
	AddObjectToScene(ctx context.Context, scenePath string, tree any) (*models.AssetRecord, error)
	CreatePrefab(ctx context.Context, path string, tree any) (*models.AssetRecord, error)
	CreateMaterial(ctx context.Context, path string, tree any) (*models.AssetRecord, error)
	VerifyDocument(ctx context.Context, path string) (*models.DocumentReport, error)

	CreateScript(ctx context.Context, path, className, content string) (*models.ScriptRecord, error)
	CreateGenericAsset(ctx context.Context, path, content string) (*models.AssetRecord, error)
	SaveBinaryAsset(ctx context.Context, projectPath, name string, data []byte) (*models.AssetRecord, error)
	SaveTextAsset(ctx context.Context, projectPath, name, content string) (*models.AssetRecord, error)
	ReadAsset(ctx context.Context, path string) (string, error)
	DeleteAsset(ctx context.Context, path string) (bool, error)
	ListAssets(ctx context.Context, dir, pattern string) ([]string, error)

	ScaffoldProject(ctx context.Context, name, root, version string) (string, error)
	GetProjectInfo(ctx context.Context, projectPath string) (*models.ProjectInfo, error)
	AddPackages(ctx context.Context, projectPath string, packages map[string]string) (map[string]string, error)
}

var _ Authoring = (*authoring.Manager)(nil)

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// ProjectHandler handles project scaffolding and package management
type ProjectHandler interface {
	HandleScaffoldProject(c echo.Context) error
	HandleGetProjectInfo(c echo.Context) error
	HandleAddPackages(c echo.Context) error
}

// DocumentHandler handles scenes, prefabs and materials
type DocumentHandler interface {
	HandleCreateScene(c echo.Context) error
	HandleAddObject(c echo.Context) error
	HandleCreatePrefab(c echo.Context) error
	HandleCreateMaterial(c echo.Context) error
	HandleVerifyDocument(c echo.Context) error
}

// AssetHandler handles scripts and plain asset files
type AssetHandler interface {
	HandleCreateScript(c echo.Context) error
	HandleCheckScript(c echo.Context) error
	HandleCreateAsset(c echo.Context) error
	HandleSaveBinaryAsset(c echo.Context) error
	HandleSaveTextAsset(c echo.Context) error
	HandleReadAsset(c echo.Context) error
	HandleDeleteAsset(c echo.Context) error
	HandleListAssets(c echo.Context) error
}
