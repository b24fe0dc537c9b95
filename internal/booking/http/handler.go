package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/auth"
	"github.com/talentbook/talentbook-backend/internal/booking"
	"github.com/talentbook/talentbook-backend/internal/pkg/request"
	"github.com/talentbook/talentbook-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// GET /v1/bookings/talent/:talentId
func (h *Handler) ListByTalent(c *gin.Context) {
	var uri request.ByTalentIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid talent id",
		})
		return
	}

	bookings, err := h.service.ListByTalent(c.Request.Context(), uri.TalentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	response.OK(c, http.StatusOK, "Bookings retrieved successfully", items)
}

// GET /v1/bookings/:id
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid booking id",
		})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Booking retrieved successfully", NewBookingResponse(b))
}

// POST /v1/bookings/request
func (h *Handler) Request(c *gin.Context) {
	var body RequestBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response.Envelope{
			Success: false,
			Message: "unauthorized",
		})
		return
	}

	b, err := h.service.Request(c.Request.Context(), booking.RequestInput{
		UserID:    userID,
		TalentID:  body.TalentID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Booking created successfully", NewBookingResponse(b))
}

// PUT /v1/bookings/:id/respond
func (h *Handler) Respond(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid booking id",
		})
		return
	}

	var body RespondBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "action must be accept or reject",
		})
		return
	}

	b, err := h.service.Respond(c.Request.Context(), uri.ID, booking.Action(body.Action))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Booking "+body.Action+"ed successfully", NewBookingResponse(b))
}

// PUT /v1/bookings/:id/reschedule
func (h *Handler) Reschedule(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid booking id",
		})
		return
	}

	var body RescheduleBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), uri.ID, body.StartTime, body.EndTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Booking rescheduled successfully", NewBookingResponse(b))
}

// PUT /v1/bookings/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "invalid booking id",
		})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Booking canceled successfully", NewBookingResponse(b))
}
