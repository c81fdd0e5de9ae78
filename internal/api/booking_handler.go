package api

import (
	"errors"
	"net/http"
	"time"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// BookingHandler exposes the booking lifecycle over HTTP. It resolves
// the authenticated user to their client/trainer profile before calling
// into the booking service, so the service only ever sees a verified
// domain.Actor.
type BookingHandler struct {
	bookingService service.BookingService
	clientService  service.ClientService
	trainerService service.TrainerService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	bookingService service.BookingService,
	clientService service.ClientService,
	trainerService service.TrainerService,
) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		clientService:  clientService,
		trainerService: trainerService,
	}
}

// --- Request/Response Structs ---

type TimeSlotRequest struct {
	Date      string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string `json:"startTime" binding:"required"` // "15:04:05"
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateBookingRequest struct {
	ClientID        string          `json:"clientId" binding:"required"`
	TrainerID       string          `json:"trainerId" binding:"required"`
	TimeSlot        TimeSlotRequest `json:"timeSlot" binding:"required"`
	DurationMinutes int             `json:"durationMinutes" binding:"required"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type TimeSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BookingResponse struct {
	ID                 string               `json:"id"`
	ClientID           string               `json:"clientId"`
	TrainerID          string               `json:"trainerId"`
	TimeSlot           TimeSlotResponse     `json:"timeSlot"`
	Status             domain.BookingStatus `json:"status"`
	DurationMinutes    int                  `json:"durationMinutes"`
	CreatedAt          time.Time            `json:"createdAt"`
	ConfirmedAt        *time.Time           `json:"confirmedAt,omitempty"`
	CancellationReason string               `json:"cancellationReason,omitempty"`
}

// MapBookingToResponse converts a booking into its API shape.
func MapBookingToResponse(b *domain.BookingSession) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		ClientID:  b.ClientID,
		TrainerID: b.TrainerID,
		TimeSlot: TimeSlotResponse{
			Date:      b.TimeSlot.Date.Format(dateLayout),
			StartTime: b.TimeSlot.StartTime.Format(timeLayout),
			EndTime:   b.TimeSlot.EndTime.Format(timeLayout),
		},
		Status:             b.Status,
		DurationMinutes:    b.DurationMinutes.Minutes(),
		CreatedAt:          b.CreatedAt,
		ConfirmedAt:        b.ConfirmedAt,
		CancellationReason: b.CancellationReason,
	}
}

func mapBookingsToResponse(bookings []domain.BookingSession) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, MapBookingToResponse(&bookings[i]))
	}
	return responses
}

// parseTimeSlot converts the wire representation into the TimeSlot
// value object, reporting malformed fields as validation failures.
func parseTimeSlot(req TimeSlotRequest) (domain.TimeSlot, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.TimeSlot{}, domain.NewValidationError("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	start, err := parseClock(req.StartTime)
	if err != nil {
		return domain.TimeSlot{}, domain.NewValidationError("invalid start time %q, expected HH:MM[:SS]", req.StartTime)
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return domain.TimeSlot{}, domain.NewValidationError("invalid end time %q, expected HH:MM[:SS]", req.EndTime)
	}
	return domain.NewTimeSlot(date, start, end)
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		t, err = time.Parse("15:04", value)
	}
	return t, err
}

// resolveActor maps the authenticated user to the party identifier
// bookings reference. Clients and trainers act through their profile id;
// admins act through their user id (they hold no transition rights).
func (h *BookingHandler) resolveActor(c *gin.Context) (domain.Actor, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return domain.Actor{}, false
	}
	role, err := getUserRoleFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user role from token")
		return domain.Actor{}, false
	}

	switch role {
	case domain.RoleClient:
		client, err := h.clientService.GetClientByUserID(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, http.StatusForbidden, "No client profile found for this account; create one first")
			return domain.Actor{}, false
		}
		return domain.Actor{ID: client.ID, Role: role}, true
	case domain.RoleTrainer:
		trainer, err := h.trainerService.GetTrainerByUserID(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, http.StatusForbidden, "No trainer profile found for this account; create one first")
			return domain.Actor{}, false
		}
		return domain.Actor{ID: trainer.ID, Role: role}, true
	default:
		return domain.Actor{ID: userID, Role: role}, true
	}
}

// respondBookingError translates the booking core's typed errors into
// HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.DoubleBookingError
		stateErr      *domain.StateTransitionError
		authErr       *domain.AuthorizationError
		busyErr       *domain.ResourceBusyError
	)

	switch {
	case errors.As(err, &validationErr):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFoundErr):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &conflictErr):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &stateErr):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &authErr):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &busyErr):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrBookingForOtherClient):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// --- Handler Methods ---

// CreateBooking godoc
// @Summary Create a new booking
// @Description Books a trainer's time slot for a client. Fails when the slot overlaps an existing PENDING or CONFIRMED booking of the same trainer.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body CreateBookingRequest true "Booking details"
// @Success 201 {object} BookingResponse "Booking created in PENDING"
// @Failure 400 {object} gin.H "Invalid time slot or duration"
// @Failure 404 {object} gin.H "Unknown client or trainer"
// @Failure 409 {object} gin.H "Time slot conflict"
// @Failure 503 {object} gin.H "Trainer calendar busy, retry"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	slot, err := parseTimeSlot(req.TimeSlot)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	duration, err := domain.NewSessionDuration(req.DurationMinutes)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req.ClientID, req.TrainerID, slot, duration, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapBookingToResponse(booking))
}

// ConfirmBooking handles POST /bookings/:id/confirm (trainer only).
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmBooking(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapBookingToResponse(booking))
}

// RejectBooking handles POST /bookings/:id/reject (trainer only, reason required).
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var req RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.RejectBooking(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapBookingToResponse(booking))
}

// CancelBooking handles POST /bookings/:id/cancel (either referenced party).
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}

	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapBookingToResponse(booking))
}

// CompleteBooking handles POST /bookings/:id/complete (trainer only).
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CompleteBooking(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapBookingToResponse(booking))
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapBookingToResponse(booking))
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBookingsToResponse(bookings))
}

// ListBookingsByClient handles GET /bookings/client/:clientId.
func (h *BookingHandler) ListBookingsByClient(c *gin.Context) {
	bookings, err := h.bookingService.ListBookingsByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBookingsToResponse(bookings))
}

// ListBookingsByTrainer handles GET /bookings/trainer/:trainerId.
func (h *BookingHandler) ListBookingsByTrainer(c *gin.Context) {
	bookings, err := h.bookingService.ListBookingsByTrainer(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBookingsToResponse(bookings))
}
