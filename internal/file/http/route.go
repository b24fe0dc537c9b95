package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/authz"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, policy authz.Policy, authMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	// Downloads are public so avatar URLs work in browsers without a token.
	group.GET("/:id", h.Download)
	group.GET("/:id/thumbnail", h.DownloadThumbnail)

	del := authz.RequirePermission(policy, authz.ResourceFiles, authz.ActionDelete)
	group.DELETE("/:id", authMiddleware, del, h.Delete)
}
