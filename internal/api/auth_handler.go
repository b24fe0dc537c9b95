package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
	"github.com/talentbook/talentbook-backend/internal/user"
	userHttp "github.com/talentbook/talentbook-backend/internal/user/http"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	u, err := h.userService.Register(c.Request.Context(), user.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully", userHttp.NewUserResponse(u))
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.RoleType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Envelope{
			Success: false,
			Message: "failed to generate token",
		})
		return
	}

	response.OK(c, http.StatusOK, "Login successful", LoginData{
		AccessToken: token,
		User:        userHttp.NewUserResponse(u),
	})
}

// GET /v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response.Envelope{
			Success: false,
			Message: "unauthorized",
		})
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User retrieved successfully", userHttp.NewUserResponse(u))
}
