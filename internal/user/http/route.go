package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/authz"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, policy authz.Policy, authMiddleware gin.HandlerFunc) {
	group := g.Group("/users")
	group.Use(authMiddleware)

	read := authz.RequirePermission(policy, authz.ResourceUsers, authz.ActionRead)
	update := authz.RequirePermission(policy, authz.ResourceUsers, authz.ActionUpdate)
	del := authz.RequirePermission(policy, authz.ResourceUsers, authz.ActionDelete)

	group.GET("", read, h.List)
	group.GET("/:id", read, h.Get)
	group.PATCH("/:id", update, h.Update)
	group.DELETE("/:id", del, h.Delete)
}
