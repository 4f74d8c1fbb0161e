// handlers_project.go - Project scaffolding and package handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProjectHandlerImpl implements the ProjectHandler interface
type ProjectHandlerImpl struct {
	service Authoring
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(service Authoring) ProjectHandler {
	return &ProjectHandlerImpl{service: service}
}

// HandleScaffoldProject creates a project skeleton
func (h *ProjectHandlerImpl) HandleScaffoldProject(c echo.Context) error {
	var req scaffoldProjectRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	path, err := h.service.ScaffoldProject(c.Request().Context(), req.Name, req.Root, req.Version)
	if err != nil {
		return FromError(err)
	}

	info, err := h.service.GetProjectInfo(c.Request().Context(), path)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, info)
}

// HandleGetProjectInfo summarizes an existing project
func (h *ProjectHandlerImpl) HandleGetProjectInfo(c echo.Context) error {
	path, err := requireQuery(c, "path")
	if err != nil {
		return err
	}

	info, err := h.service.GetProjectInfo(c.Request().Context(), path)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, info)
}

// HandleAddPackages merges packages into the project manifest
func (h *ProjectHandlerImpl) HandleAddPackages(c echo.Context) error {
	var req addPackagesRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	deps, err := h.service.AddPackages(c.Request().Context(), req.ProjectPath, req.Packages)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"projectPath":  req.ProjectPath,
		"dependencies": deps,
	})
}

// Request types

type scaffoldProjectRequest struct {
	Name    string `json:"name"`
	Root    string `json:"root"`
	Version string `json:"version"`
}

type addPackagesRequest struct {
	ProjectPath string            `json:"projectPath"`
	Packages    map[string]string `json:"packages"`
}

func (r *addPackagesRequest) validate() error {
	if r.ProjectPath == "" {
		return NewValidationError("projectPath")
	}
	if len(r.Packages) == 0 {
		return NewValidationError("packages")
	}
	return nil
}
