package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/file"
	"github.com/talentbook/talentbook-backend/internal/pkg/request"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
)

type Handler struct {
	service file.Service
}

func NewHandler(service file.Service) *Handler {
	return &Handler{service: service}
}

func serveStream(c *gin.Context, stream io.ReadCloser, contentType string, size int64) {
	defer stream.Close()
	c.Header("Content-Type", contentType)
	if size > 0 {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

// GET /v1/files/:id
func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	stream, f, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveStream(c, stream, f.ContentType, f.Size)
}

// GET /v1/files/:id/thumbnail
func (h *Handler) DownloadThumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Thumbnails are always re-encoded as JPEG.
	serveStream(c, stream, "image/jpeg", 0)
}

// DELETE /v1/files/:id
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "File deleted successfully", nil)
}
