package talent

import (
	"net/http"
	"time"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "talent not found")
	ErrSkillRequired = apperror.New(http.StatusBadRequest, "skill is required")
	ErrUserRequired  = apperror.New(http.StatusBadRequest, "user id is required")
	ErrNotOwner      = apperror.New(http.StatusForbidden, "talent profile belongs to another user")
)

// Talent is a bookable service-provider profile. FirstName/LastName are
// display data joined from the owning user.
type Talent struct {
	ID           string
	UserID       string
	Skill        string
	IsActive     bool
	AvatarFileID *string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
