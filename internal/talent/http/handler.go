package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/authz"
	"github.com/talentbook/talentbook-backend/internal/file"
	"github.com/talentbook/talentbook-backend/internal/pkg/request"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
	"github.com/talentbook/talentbook-backend/internal/talent"
)

const maxAvatarSizeBytes = 5 << 20 // 5 MiB

type Handler struct {
	service talent.Service
	files   file.Service
}

func NewHandler(service talent.Service, files file.Service) *Handler {
	return &Handler{service: service, files: files}
}

// POST /v1/talents
func (h *Handler) Create(c *gin.Context) {
	var body CreateTalentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	t, err := h.service.Create(c.Request.Context(), talent.CreateRequest{
		UserID: auth.GetUserID(c),
		Skill:  body.Skill,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Talent created successfully", NewTalentResponse(t))
}

// GET /v1/talents
func (h *Handler) List(c *gin.Context) {
	talents, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Talents retrieved successfully", toTalentResponses(talents))
}

// GET /v1/talents/search?q=
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "query parameter q is required",
		})
		return
	}

	talents, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Talents retrieved successfully", toTalentResponses(talents))
}

func toTalentResponses(talents []*talent.Talent) []TalentResponse {
	items := make([]TalentResponse, len(talents))
	for i, t := range talents {
		items[i] = NewTalentResponse(t)
	}
	return items
}

// GET /v1/talents/:id
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Talent retrieved successfully", NewTalentResponse(t))
}

// PATCH /v1/talents/:id
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	var body UpdateTalentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	// Admins may edit any profile; talents only their own.
	requesterID := auth.GetUserID(c)
	if auth.GetUserRole(c) == authz.RoleAdmin {
		requesterID = ""
	}

	t, err := h.service.Update(c.Request.Context(), id, requesterID, talent.UpdateRequest{
		Skill:    body.Skill,
		IsActive: body.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Talent updated successfully", NewTalentResponse(t))
}

// DELETE /v1/talents/:id
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

	response.OK(c, http.StatusOK, "Talent deleted successfully", nil)
}

// POST /v1/talents/:id/avatar
func (h *Handler) UploadAvatar(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid id",
		})
		return
	}
	id := uri.ID

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if auth.GetUserRole(c) != authz.RoleAdmin && t.UserID != auth.GetUserID(c) {
		response.Error(c, talent.ErrNotOwner)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "file field is required",
		})
		return
	}

	f, err := h.files.Upload(c.Request.Context(), file.UploadInput{
		FileHeader:   fileHeader,
		UserID:       t.UserID,
		MaxSizeBytes: maxAvatarSizeBytes,
		ImagesOnly:   true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.SetAvatar(c.Request.Context(), id, f.ID); err != nil {
		response.Error(c, err)
		return
	}

	t, err = h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Avatar uploaded successfully", NewTalentResponse(t))
}
