package http

import (
	"time"

	"github.com/talentbook/talentbook-backend/internal/file"
	"github.com/talentbook/talentbook-backend/internal/talent"
)

type TalentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Skill     string    `json:"talent"`
	IsActive  bool      `json:"is_active"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTalentResponse(t *talent.Talent) TalentResponse {
	resp := TalentResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Skill:     t.Skill,
		IsActive:  t.IsActive,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.AvatarFileID != nil {
		url := file.URL(*t.AvatarFileID)
		resp.AvatarURL = &url
	}
	return resp
}

type CreateTalentBody struct {
	Skill string `json:"talent" binding:"required"`
}

type UpdateTalentBody struct {
	Skill    *string `json:"talent"`
	IsActive *bool   `json:"is_active"`
}
