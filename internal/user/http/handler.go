package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/authz"
	"github.com/talentbook/talentbook-backend/internal/pkg/request"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
	"github.com/talentbook/talentbook-backend/internal/user"
)

type Handler struct {
	service user.Service
}

func NewHandler(service user.Service) *Handler {
	return &Handler{service: service}
}

// requireSelfOrAdmin aborts unless the target id belongs to the caller or the
// caller is an admin.
func requireSelfOrAdmin(c *gin.Context, id string) bool {
	if auth.GetUserRole(c) == authz.RoleAdmin || auth.GetUserID(c) == id {
		return true
	}
	c.JSON(http.StatusForbidden, response.Envelope{
		Success: false,
		Message: "cannot access another user's account",
	})
	return false
}

// GET /v1/users
func (h *Handler) List(c *gin.Context) {
	// Listing all accounts is an admin-only view.
	if auth.GetUserRole(c) != authz.RoleAdmin {
		c.JSON(http.StatusForbidden, response.Envelope{
			Success: false,
			Message: "only admins can list users",
		})
		return
	}

	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}

	response.OK(c, http.StatusOK, "Users retrieved successfully", items)
}

// GET /v1/users/:id
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
	if !requireSelfOrAdmin(c, id) {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User retrieved successfully", NewUserResponse(u))
}

// PATCH /v1/users/:id
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
	if !requireSelfOrAdmin(c, id) {
		return
	}

	var body UpdateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	// Only admins may change roles.
	if body.Role != nil && auth.GetUserRole(c) != authz.RoleAdmin {
		c.JSON(http.StatusForbidden, response.Envelope{
			Success: false,
			Message: "only admins can change user roles",
		})
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, user.UpdateRequest{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      body.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User updated successfully", NewUserResponse(u))
}

// DELETE /v1/users/:id
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
	if !requireSelfOrAdmin(c, id) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User deleted successfully", nil)
}
