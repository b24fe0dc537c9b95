package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/authz"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, policy authz.Policy, authMiddleware gin.HandlerFunc) {
	group := g.Group("/user-types")
	group.Use(authMiddleware)

	read := authz.RequirePermission(policy, authz.ResourceUserTypes, authz.ActionRead)
	create := authz.RequirePermission(policy, authz.ResourceUserTypes, authz.ActionCreate)
	update := authz.RequirePermission(policy, authz.ResourceUserTypes, authz.ActionUpdate)
	del := authz.RequirePermission(policy, authz.ResourceUserTypes, authz.ActionDelete)

	group.GET("", read, h.List)
	group.GET("/:id", read, h.Get)
	group.POST("", create, h.Create)
	group.PUT("/:id", update, h.Update)
	group.DELETE("/:id", del, h.Delete)
}
