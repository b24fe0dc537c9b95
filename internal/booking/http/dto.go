package http

import (
	"time"

	"github.com/talentbook/talentbook-backend/internal/booking"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TalentID  string    `json:"talent_id"`
	Talent    TalentTag `json:"talent"`
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TalentTag is the display data joined onto booking responses.
type TalentTag struct {
	Skill     string `json:"talent"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		UserID:   b.UserID,
		TalentID: b.TalentID,
		Talent: TalentTag{
			Skill:     b.TalentSkill,
			FirstName: b.TalentFirstName,
			LastName:  b.TalentLastName,
		},
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type RequestBookingBody struct {
	TalentID  string    `json:"talent_id" binding:"required,uuid"`
	StartTime time.Time `json:"start" binding:"required"`
	EndTime   time.Time `json:"end" binding:"required"`
}

type RespondBookingBody struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

type RescheduleBookingBody struct {
	StartTime time.Time `json:"start" binding:"required"`
	EndTime   time.Time `json:"end" binding:"required"`
}
