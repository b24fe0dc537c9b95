package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/authz"
)

// RegisterRoutes wires booking endpoints. Each route declares the resource
// and action it needs explicitly instead of deriving them from the path.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, policy authz.Policy, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)

	read := authz.RequirePermission(policy, authz.ResourceBookings, authz.ActionRead)
	create := authz.RequirePermission(policy, authz.ResourceBookings, authz.ActionCreate)
	update := authz.RequirePermission(policy, authz.ResourceBookings, authz.ActionUpdate)

	group.GET("/talent/:talentId", read, h.ListByTalent)
	group.GET("/:id", read, h.Get)
	group.POST("/request", create, h.Request)
	group.PUT("/:id/respond", update, h.Respond)
	group.PUT("/:id/reschedule", update, h.Reschedule)
	group.PUT("/:id/cancel", update, h.Cancel)
}
