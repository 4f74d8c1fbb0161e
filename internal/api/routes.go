// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/unity-forge/backend/internal/config"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Service            Authoring
	Version            string
	EditorVersion      string
	AllowAssetDeletion bool
	// MaxAssetSize caps decoded binary uploads; 0 uses DefaultMaxAssetSize.
	MaxAssetSize       int64
}

// Handlers holds all handler instances
type Handlers struct {
	Health   HealthHandler
	Project  ProjectHandler
	Document DocumentHandler
	Asset    AssetHandler

	allowAssetDeletion bool
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:             NewHealthHandler(deps.Version, deps.EditorVersion),
		Project:            NewProjectHandler(deps.Service),
		Document:           NewDocumentHandler(deps.Service),
		Asset:              NewAssetHandler(deps.Service, deps.MaxAssetSize),
		allowAssetDeletion: deps.AllowAssetDeletion,
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.Health.HandleHealth)

	// Projects
	apiGroup.POST("/projects", handlers.Project.HandleScaffoldProject)
	apiGroup.GET("/projects/info", handlers.Project.HandleGetProjectInfo)
	apiGroup.POST("/projects/packages", handlers.Project.HandleAddPackages)

	// Unity YAML documents
	apiGroup.POST("/scenes", handlers.Document.HandleCreateScene)
	apiGroup.POST("/scenes/objects", handlers.Document.HandleAddObject)
	apiGroup.POST("/prefabs", handlers.Document.HandleCreatePrefab)
	apiGroup.POST("/materials", handlers.Document.HandleCreateMaterial)
	apiGroup.GET("/documents/verify", handlers.Document.HandleVerifyDocument)

	// Scripts
	apiGroup.POST("/scripts", handlers.Asset.HandleCreateScript)
	apiGroup.POST("/scripts/check", handlers.Asset.HandleCheckScript)

	// Asset files
	apiGroup.POST("/assets", handlers.Asset.HandleCreateAsset)
	apiGroup.POST("/assets/binary", handlers.Asset.HandleSaveBinaryAsset)
	apiGroup.POST("/assets/text", handlers.Asset.HandleSaveTextAsset)
	apiGroup.GET("/assets", handlers.Asset.HandleReadAsset)
	apiGroup.GET("/assets/list", handlers.Asset.HandleListAssets)

	// Conditional delete based on config
	if handlers.allowAssetDeletion {
		apiGroup.DELETE("/assets", handlers.Asset.HandleDeleteAsset)
	}
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo, cfg *config.AppConfig) {
	// Use custom error handler
	e.HTTPErrorHandler = ErrorHandler
	exposeDetails = strings.EqualFold(cfg.Advanced.LogLevel, "debug")

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging if disabled in config
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/api/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
		LogLevel:          0,
	}))

	// Operations check the request context before writing.
	if cfg.Server.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		}))
	}

	// Body limit middleware
	if cfg.Server.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}
}
