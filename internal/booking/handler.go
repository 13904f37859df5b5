package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/412299-Rodriguez/club-appointments/internal/api"
	"github.com/412299-Rodriguez/club-appointments/internal/auth"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Book godoc
// @Summary      Book a session
// @Description  Creates a booking for the given training session after local gating.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Session to book"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Book(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	created, err := h.svc.Book(c.Request.Context(), token, req.TrainingSessionID, time.Now())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Cancel godoc
// @Summary      Cancel booking
// @Description  Cancels one of the caller's bookings. Refused locally inside the 2-hour window.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Failure      502        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	cancelled, err := h.svc.Cancel(c.Request.Context(), token, bookingID, time.Now())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancelled)
}

// ListMy godoc
// @Summary      My bookings
// @Description  Returns the caller's bookings partitioned into upcoming and past.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Categorized
// @Failure      502  {object}  api.ErrorResponse
// @Router       /bookings/my [get]
func (h *Handler) ListMy(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	categorized, err := h.svc.MyBookings(c.Request.Context(), token, time.Now())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, categorized)
}

// MyStats godoc
// @Summary      My booking stats
// @Description  Returns the caller's profile counters.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      502  {object}  api.ErrorResponse
// @Router       /bookings/my/stats [get]
func (h *Handler) MyStats(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	stats, err := h.svc.MyStats(c.Request.Context(), token, time.Now())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondBookingError maps gate refusals onto stable statuses and
// passes backend rejections through unchanged.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotActive), errors.Is(err, ErrSessionStarted):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSessionFull), errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrNotCancellable):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrCancellationWindow):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	default:
		api.RespondBackendError(c, err)
	}
}
