// handlers_document.go - Scene, prefab and material handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DocumentHandlerImpl implements the DocumentHandler interface
type DocumentHandlerImpl struct {
	service Authoring
}

// NewDocumentHandler creates a new document handler instance
func NewDocumentHandler(service Authoring) DocumentHandler {
	return &DocumentHandlerImpl{service: service}
}

// HandleCreateScene writes a scene. Without gameObjects the scene gets the
// default camera and light.
func (h *DocumentHandlerImpl) HandleCreateScene(c echo.Context) error {
	var req createSceneRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Path == "" {
		return NewValidationError("path")
	}

	ctx := c.Request().Context()
	if req.GameObjects == nil {
		rec, err := h.service.CreateScene(ctx, req.Path)
		if err != nil {
			return FromError(err)
		}
		return respond(c, http.StatusCreated, rec)
	}

	rec, err := h.service.CreateDetailedScene(ctx, req.Path, req.GameObjects)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleAddObject appends one object to an existing scene
func (h *DocumentHandlerImpl) HandleAddObject(c echo.Context) error {
	var req addObjectRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	rec, err := h.service.AddObjectToScene(c.Request().Context(), req.ScenePath, req.GameObject)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, rec)
}

// HandleCreatePrefab writes a prefab with a single root object
func (h *DocumentHandlerImpl) HandleCreatePrefab(c echo.Context) error {
	var req createPrefabRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	rec, err := h.service.CreatePrefab(c.Request().Context(), req.Path, req.GameObject)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleCreateMaterial writes a material
func (h *DocumentHandlerImpl) HandleCreateMaterial(c echo.Context) error {
	var req createMaterialRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	rec, err := h.service.CreateMaterial(c.Request().Context(), req.Path, req.Material)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleVerifyDocument reports structural problems of a stored document
func (h *DocumentHandlerImpl) HandleVerifyDocument(c echo.Context) error {
	path, err := requireQuery(c, "path")
	if err != nil {
		return err
	}

	report, err := h.service.VerifyDocument(c.Request().Context(), path)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"path":   path,
		"valid":  report.Valid(),
		"report": report,
	})
}

// Request types

type createSceneRequest struct {
	Path        string `json:"path"`
	GameObjects any    `json:"gameObjects"`
}

type addObjectRequest struct {
	ScenePath  string `json:"scenePath"`
	GameObject any    `json:"gameObject"`
}

func (r *addObjectRequest) validate() error {
	if r.ScenePath == "" {
		return NewValidationError("scenePath")
	}
	if r.GameObject == nil {
		return NewValidationError("gameObject")
	}
	return nil
}

type createPrefabRequest struct {
	Path       string `json:"path"`
	GameObject any    `json:"gameObject"`
}

func (r *createPrefabRequest) validate() error {
	if r.Path == "" {
		return NewValidationError("path")
	}
	if r.GameObject == nil {
		return NewValidationError("gameObject")
	}
	return nil
}

type createMaterialRequest struct {
	Path     string `json:"path"`
	Material any    `json:"material"`
}

func (r *createMaterialRequest) validate() error {
	if r.Path == "" {
		return NewValidationError("path")
	}
	if r.Material == nil {
		return NewValidationError("material")
	}
	return nil
}
