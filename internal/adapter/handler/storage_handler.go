package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/errors"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

const linkExpiry = time.Hour

// StorageInspector reports the state of the storage backend
type StorageInspector interface {
	Info(ctx context.Context) (map[string]interface{}, error)
}

// StorageLinker hands out temporary download links. Only object storage
// backends implement it.
type StorageLinker interface {
	FileURL(ctx context.Context, folder entities.Folder, filename string, expiry time.Duration) (string, error)
}

// Storage handles storage inspection endpoints
type Storage struct {
	inspector StorageInspector
	linker    StorageLinker
	logger    *zap.Logger
}

// NewStorageHandler creates a storage handler. backend may implement
// StorageInspector, StorageLinker, both or neither.
func NewStorageHandler(backend interface{}, logger *zap.Logger) *Storage {
	h := &Storage{logger: logger}
	h.inspector, _ = backend.(StorageInspector)
	h.linker, _ = backend.(StorageLinker)
	return h
}

// Info returns information about the storage backend
// @Summary      Storage backend info
// @Description  Reports which backend stores the output folders and whether it is reachable
// @Tags         Storage
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Backend info"
// @Failure      500  {object}  map[string]interface{}  "Backend unavailable"
// @Router       /storage/info [get]
func (h *Storage) Info(c echo.Context) error {
	if h.inspector == nil {
		return HandleSuccess(h.logger, c, map[string]interface{}{"backend": "none"})
	}
	info, err := h.inspector.Info(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("info", err))
	}
	return HandleSuccess(h.logger, c, info)
}

// FileURL returns a temporary download link for a stored file
// @Summary      Download link for a stored file
// @Description  Generates a presigned URL valid for one hour. Only available with object storage.
// @Tags         Storage
// @Produce      json
// @Param        folder    path      string                  true  "recordings, transcripts, notes or official-orders"
// @Param        filename  path      string                  true  "File name"
// @Success      200       {object}  map[string]interface{}  "Download link"
// @Failure      400       {object}  map[string]interface{}  "Unknown folder"
// @Failure      404       {object}  map[string]interface{}  "Links not supported by this backend"
// @Router       /documents/{folder}/{filename}/url [get]
func (h *Storage) FileURL(c echo.Context) error {
	folder := entities.Folder(c.Param("folder"))
	if !folder.Valid() {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("unknown folder").WithDetail("folder", string(folder)))
	}
	if h.linker == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("download link"))
	}

	filename := c.Param("filename")
	url, err := h.linker.FileURL(c.Request().Context(), folder, filename, linkExpiry)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to generate file URL",
				zap.String("folder", string(folder)),
				zap.String("filename", filename),
				zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"folder":     folder,
		"filename":   filename,
		"url":        url,
		"expires_at": time.Now().Add(linkExpiry).UTC(),
	})
}
