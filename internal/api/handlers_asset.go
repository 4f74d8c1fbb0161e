// handlers_asset.go - Script and asset file handlers
package api

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unity-forge/backend/internal/authoring"
)

// DefaultMaxAssetSize caps decoded binary uploads when no limit is configured.
const DefaultMaxAssetSize int64 = 64 << 20

var errAssetTooLarge = errors.New("decoded asset exceeds size limit")

// AssetHandlerImpl implements the AssetHandler interface
type AssetHandlerImpl struct {
	service Authoring
	maxSize int64
}

// NewAssetHandler creates a new asset handler instance
func NewAssetHandler(service Authoring, maxSize int64) AssetHandler {
	if maxSize <= 0 {
		maxSize = DefaultMaxAssetSize
	}
	return &AssetHandlerImpl{service: service, maxSize: maxSize}
}

// HandleCreateScript writes a C# script and reports the advisory syntax check
func (h *AssetHandlerImpl) HandleCreateScript(c echo.Context) error {
	var req createScriptRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Path == "" {
		return NewValidationError("path")
	}

	rec, err := h.service.CreateScript(c.Request().Context(), req.Path, req.ClassName, req.Content)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleCheckScript runs the syntax check without writing anything
func (h *AssetHandlerImpl) HandleCheckScript(c echo.Context) error {
	var req checkScriptRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	return respond(c, http.StatusOK, authoring.ValidateScriptSyntax(req.Content))
}

// HandleCreateAsset writes text content to an explicit path
func (h *AssetHandlerImpl) HandleCreateAsset(c echo.Context) error {
	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Path == "" {
		return NewValidationError("path")
	}

	rec, err := h.service.CreateGenericAsset(c.Request().Context(), req.Path, req.Content)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleSaveBinaryAsset accepts base64 content and stores it under Assets
func (h *AssetHandlerImpl) HandleSaveBinaryAsset(c echo.Context) error {
	var req saveBinaryAssetRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return NewBadRequestError("invalid base64 data", err)
	}
	if decoded, err = decodeContent(decoded, req.Encoding, h.maxSize); err != nil {
		if errors.Is(err, errAssetTooLarge) {
			return NewPayloadTooLargeError(h.maxSize)
		}
		return NewBadRequestError("invalid encoded data", err)
	}

	rec, err := h.service.SaveBinaryAsset(c.Request().Context(), req.ProjectPath, req.Name, decoded)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleSaveTextAsset stores text under Assets, routed by extension
func (h *AssetHandlerImpl) HandleSaveTextAsset(c echo.Context) error {
	var req saveTextAssetRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	rec, err := h.service.SaveTextAsset(c.Request().Context(), req.ProjectPath, req.Name, req.Content)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusCreated, rec)
}

// HandleReadAsset returns the text of an asset
func (h *AssetHandlerImpl) HandleReadAsset(c echo.Context) error {
	path, err := requireQuery(c, "path")
	if err != nil {
		return err
	}

	content, err := h.service.ReadAsset(c.Request().Context(), path)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"path":    path,
		"content": content,
	})
}

// HandleDeleteAsset removes an asset and its sidecar
func (h *AssetHandlerImpl) HandleDeleteAsset(c echo.Context) error {
	path, err := requireQuery(c, "path")
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteAsset(c.Request().Context(), path)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"path":    path,
		"deleted": deleted,
	})
}

// HandleListAssets lists files below a directory, excluding sidecars.
// Clients sending Accept: application/msgpack get MessagePack.
func (h *AssetHandlerImpl) HandleListAssets(c echo.Context) error {
	dir, err := requireQuery(c, "dir")
	if err != nil {
		return err
	}
	pattern := c.QueryParam("pattern")
	if pattern == "" {
		pattern = "*"
	}

	files, err := h.service.ListAssets(c.Request().Context(), dir, pattern)
	if err != nil {
		return FromError(err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"dir":   dir,
		"files": files,
		"count": len(files),
	})
}

// Request types

type createScriptRequest struct {
	Path      string `json:"path"`
	ClassName string `json:"className"`
	Content   string `json:"content"`
}

type checkScriptRequest struct {
	Content string `json:"content"`
}

type createAssetRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type saveBinaryAssetRequest struct {
	ProjectPath string `json:"projectPath"`
	Name        string `json:"name"`
	Data        string `json:"data"`     // Base64-encoded file content
	Encoding    string `json:"encoding"` // "" or "gzip"
}

func (r *saveBinaryAssetRequest) validate() error {
	if r.ProjectPath == "" {
		return NewValidationError("projectPath")
	}
	if r.Name == "" {
		return NewValidationError("name")
	}
	if r.Data == "" {
		return NewValidationError("data")
	}
	return nil
}

// decodeContent undoes the transfer encoding of an uploaded payload. The
// decoded size is capped at max bytes.
func decodeContent(data []byte, encoding string, max int64) ([]byte, error) {
	switch encoding {
	case "", "identity":
		if int64(len(data)) > max {
			return nil, errAssetTooLarge
		}
		return data, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		out, err := io.ReadAll(io.LimitReader(zr, max+1))
		if err != nil {
			return nil, err
		}
		if int64(len(out)) > max {
			return nil, errAssetTooLarge
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

type saveTextAssetRequest struct {
	ProjectPath string `json:"projectPath"`
	Name        string `json:"name"`
	Content     string `json:"content"`
}

func (r *saveTextAssetRequest) validate() error {
	if r.ProjectPath == "" {
		return NewValidationError("projectPath")
	}
	if r.Name == "" {
		return NewValidationError("name")
	}
	return nil
}
