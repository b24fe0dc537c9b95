package user

import (
	"net/http"
	"time"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
	ErrUnknownRole        = apperror.New(http.StatusBadRequest, "unknown user type")
)

// User represents an account in the system. RoleType is the user type name
// joined from the role catalog.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	UserTypeID   string
	RoleType     string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
