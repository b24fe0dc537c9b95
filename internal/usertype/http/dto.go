package http

import (
	"time"

	"github.com/talentbook/talentbook-backend/internal/usertype"
)

type UserTypeResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserTypeResponse(ut *usertype.UserType) UserTypeResponse {
	return UserTypeResponse{
		ID:        ut.ID,
		Type:      ut.Type,
		CreatedAt: ut.CreatedAt,
	}
}

type CreateUserTypeBody struct {
	Type string `json:"type" binding:"required"`
}

type UpdateUserTypeBody struct {
	Type *string `json:"type"`
}
