package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentbook/talentbook-backend/internal/api"
	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/authz"
	"github.com/talentbook/talentbook-backend/internal/booking"
	"github.com/talentbook/talentbook-backend/internal/file"
	"github.com/talentbook/talentbook-backend/internal/pkg/storage"
	"github.com/talentbook/talentbook-backend/internal/talent"
	"github.com/talentbook/talentbook-backend/internal/user"
	"github.com/talentbook/talentbook-backend/internal/usertype"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// UserType module
	userTypeRepo := usertype.NewPgxRepository(cfg.DBPool)
	userTypeService := usertype.NewService(userTypeRepo)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, userTypeService, passwordHasher)

	// Talent module
	talentRepo := talent.NewPgxRepository(cfg.DBPool)
	talentService := talent.NewService(talentRepo)

	// File module
	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, localStorage)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, talentService)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		UserTypeService: userTypeService,
		TalentService:   talentService,
		BookingService:  bookingService,
		FileService:     fileService,
		Policy:          authz.DefaultPolicy(),
		JWTManager:      jwtManager,
		Logger:          cfg.Logger,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
