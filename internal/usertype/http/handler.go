package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/pkg/request"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
	"github.com/talentbook/talentbook-backend/internal/usertype"
)

type Handler struct {
	service usertype.Service
}

func NewHandler(service usertype.Service) *Handler {
	return &Handler{service: service}
}

// POST /v1/user-types
func (h *Handler) Create(c *gin.Context) {
	var body CreateUserTypeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	ut, err := h.service.Create(c.Request.Context(), usertype.CreateRequest{Type: body.Type})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "User type created successfully", NewUserTypeResponse(ut))
}

// GET /v1/user-types
func (h *Handler) List(c *gin.Context) {
	types, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]UserTypeResponse, len(types))
	for i, ut := range types {
		items[i] = NewUserTypeResponse(ut)
	}

	response.OK(c, http.StatusOK, "User types retrieved successfully", items)
}

// GET /v1/user-types/:id
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

	ut, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User type retrieved successfully", NewUserTypeResponse(ut))
}

// PUT /v1/user-types/:id
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

	var body UpdateUserTypeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	ut, err := h.service.Update(c.Request.Context(), id, usertype.UpdateRequest{Type: body.Type})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User type updated successfully", NewUserTypeResponse(ut))
}

// DELETE /v1/user-types/:id
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

	response.OK(c, http.StatusOK, "User type deleted successfully", nil)
}
