package authz

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
)

// RequirePermission ensures the authenticated user's role may perform the
// action on the declared resource. It MUST be used after auth.AuthRequired.
func RequirePermission(policy Policy, resource string, action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Message: "unauthorized",
			})
			return
		}

		if !policy.Allows(resource, role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Envelope{
				Success: false,
				Message: "role " + role + " cannot " + strings.ToLower(string(action)) + " " + resource,
			})
			return
		}

		c.Next()
	}
}
