package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/authz"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, policy authz.Policy, authMiddleware gin.HandlerFunc) {
	group := g.Group("/talents")
	group.Use(authMiddleware)

	read := authz.RequirePermission(policy, authz.ResourceTalents, authz.ActionRead)
	create := authz.RequirePermission(policy, authz.ResourceTalents, authz.ActionCreate)
	update := authz.RequirePermission(policy, authz.ResourceTalents, authz.ActionUpdate)
	del := authz.RequirePermission(policy, authz.ResourceTalents, authz.ActionDelete)

	group.GET("", read, h.List)
	group.GET("/search", read, h.Search)
	group.GET("/:id", read, h.Get)
	group.POST("", create, h.Create)
	group.PATCH("/:id", update, h.Update)
	group.DELETE("/:id", del, h.Delete)
	group.POST("/:id/avatar", update, h.UploadAvatar)
}
