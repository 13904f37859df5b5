package session

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/412299-Rodriguez/club-appointments/internal/api"
	"github.com/412299-Rodriguez/club-appointments/internal/auth"
	"github.com/412299-Rodriguez/club-appointments/internal/logger"
)

// BookedLookup resolves which sessions the caller already holds a
// confirmed booking for. Implemented by the booking service; declared
// here so the catalog package stays free of a booking import.
type BookedLookup interface {
	BookedSessionIDs(ctx context.Context, token string) (map[int64]bool, error)
}

type Handler struct {
	svc    Service
	booked BookedLookup
}

func NewHandler(svc Service, booked BookedLookup) *Handler {
	return &Handler{
		svc:    svc,
		booked: booked,
	}
}

// ListUpcoming godoc
// @Summary      List upcoming sessions
// @Description  Returns the open session catalog, optionally filtered by free text, decorated with availability and booking state.
// @Tags         sessions
// @Produce      json
// @Param        search  query     string  false  "Free-text filter over name, description, trainer and location"
// @Success      200     {array}   View
// @Failure      502     {object}  api.ErrorResponse
// @Router       /sessions [get]
func (h *Handler) ListUpcoming(c *gin.Context) {
	query := c.Query("search")

	var booked map[int64]bool
	token, authenticated := auth.Token(c)
	if authenticated {
		ids, err := h.booked.BookedSessionIDs(c.Request.Context(), token)
		if err != nil {
			// Button state only; the catalog still renders.
			logger.Error("Failed to load caller's booked sessions", "error", err)
		} else {
			booked = ids
		}
	}

	views, err := h.svc.ListUpcoming(c.Request.Context(), token, query, booked)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Create godoc
// @Summary      Create session
// @Description  Forwards a staff create-session request to the backend. Staff only.
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSessionRequest  true  "Session to create"
// @Success      201      {object}  Session
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /staff/sessions [post]
func (h *Handler) Create(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), token, req)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CancelSession godoc
// @Summary      Cancel session
// @Description  Forwards a staff cancel-session request to the backend. Staff only.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  Session
// @Failure      400        {object}  api.ErrorResponse
// @Failure      502        {object}  api.ErrorResponse
// @Router       /staff/sessions/{sessionID}/cancel [post]
func (h *Handler) CancelSession(c *gin.Context) {
	token, ok := auth.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	sessionID, err := strconv.ParseInt(c.Param("sessionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	cancelled, err := h.svc.CancelSession(c.Request.Context(), token, sessionID)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancelled)
}
