package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/authz"
	"github.com/talentbook/talentbook-backend/internal/booking"
	bookingHttp "github.com/talentbook/talentbook-backend/internal/booking/http"
	"github.com/talentbook/talentbook-backend/internal/file"
	fileHttp "github.com/talentbook/talentbook-backend/internal/file/http"
	"github.com/talentbook/talentbook-backend/internal/talent"
	talentHttp "github.com/talentbook/talentbook-backend/internal/talent/http"
	"github.com/talentbook/talentbook-backend/internal/user"
	userHttp "github.com/talentbook/talentbook-backend/internal/user/http"
	"github.com/talentbook/talentbook-backend/internal/usertype"
	usertypeHttp "github.com/talentbook/talentbook-backend/internal/usertype/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService     user.Service
	UserTypeService usertype.Service
	TalentService   talent.Service
	BookingService  booking.Service
	FileService     file.Service

	Policy     authz.Policy
	JWTManager *auth.JWTManager
	Logger     *zap.Logger
}

// NewRouter initializes the HTTP router engine: global middleware (logging,
// recovery, CORS) plus the /v1 route tree for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	userHandler := userHttp.NewHandler(cfg.UserService)
	usertypeHandler := usertypeHttp.NewHandler(cfg.UserTypeService)
	talentHandler := talentHttp.NewHandler(cfg.TalentService, cfg.FileService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		userHttp.RegisterRoutes(v1, userHandler, cfg.Policy, authMiddleware)
		usertypeHttp.RegisterRoutes(v1, usertypeHandler, cfg.Policy, authMiddleware)
		talentHttp.RegisterRoutes(v1, talentHandler, cfg.Policy, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, cfg.Policy, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, cfg.Policy, authMiddleware)
	}

	return r
}
