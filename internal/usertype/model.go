package usertype

import (
	"net/http"
	"time"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "user type not found")
	ErrTypeRequired = apperror.New(http.StatusBadRequest, "type is required")
	ErrTypeTaken    = apperror.New(http.StatusConflict, "user type already exists")
)

// UserType is an entry in the role catalog (admin, customer, talent).
type UserType struct {
	ID        string
	Type      string
	CreatedAt time.Time
}
