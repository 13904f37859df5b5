package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/412299-Rodriguez/club-appointments/internal/auth"
	"github.com/412299-Rodriguez/club-appointments/internal/backend"
	"github.com/412299-Rodriguez/club-appointments/internal/user"
)

const testSecret = "test-secret"

type MockCatalogService struct{ mock.Mock }

func (m *MockCatalogService) ListUpcoming(ctx context.Context, token, query string, booked map[int64]bool) ([]View, error) {
	args := m.Called(ctx, token, query, booked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]View), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, token string, req CreateSessionRequest) (*Session, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockCatalogService) CancelSession(ctx context.Context, token string, id int64) (*Session, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

type MockBookedLookup struct{ mock.Mock }

func (m *MockBookedLookup) BookedSessionIDs(ctx context.Context, token string) (map[int64]bool, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func setupCatalogRouter(t *testing.T, svc Service, booked BookedLookup) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(svc, booked)
	router := gin.New()
	router.GET("/sessions", auth.OptionalMiddleware(testSecret), handler.ListUpcoming)

	staff := router.Group("/staff")
	staff.Use(auth.Middleware(testSecret), auth.RequireRole(user.RoleAdmin))
	{
		staff.POST("/sessions", handler.Create)
		staff.POST("/sessions/:sessionID/cancel", handler.CancelSession)
	}
	return router
}

func tokenWithRoles(t *testing.T, roles []string) string {
	t.Helper()
	token, err := auth.GenerateToken(3, "someone@club.test", roles, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHandler_ListUpcoming_Anonymous(t *testing.T) {
	svc := new(MockCatalogService)
	lookup := new(MockBookedLookup)
	svc.On("ListUpcoming", mock.Anything, "", "", map[int64]bool(nil)).
		Return([]View{{Session: Session{ID: 1, Name: "Morning Yoga"}, AvailableSpots: 2}}, nil)
	router := setupCatalogRouter(t, svc, lookup)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Morning Yoga", got[0].Name)

	lookup.AssertNotCalled(t, "BookedSessionIDs", mock.Anything, mock.Anything)
	svc.AssertExpectations(t)
}

func TestHandler_ListUpcoming_AuthenticatedDecorates(t *testing.T) {
	svc := new(MockCatalogService)
	lookup := new(MockBookedLookup)
	token := tokenWithRoles(t, []string{"ROLE_MEMBER"})

	lookup.On("BookedSessionIDs", mock.Anything, token).Return(map[int64]bool{1: true}, nil)
	svc.On("ListUpcoming", mock.Anything, token, "yoga", map[int64]bool{1: true}).
		Return([]View{{Session: Session{ID: 1}, AlreadyBooked: true}}, nil)
	router := setupCatalogRouter(t, svc, lookup)

	req := httptest.NewRequest(http.MethodGet, "/sessions?search=yoga", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
	lookup.AssertExpectations(t)
}

func TestHandler_ListUpcoming_BookedLookupFailureDegrades(t *testing.T) {
	svc := new(MockCatalogService)
	lookup := new(MockBookedLookup)
	token := tokenWithRoles(t, []string{"ROLE_MEMBER"})

	lookup.On("BookedSessionIDs", mock.Anything, token).Return(nil, errors.New("backend down"))
	svc.On("ListUpcoming", mock.Anything, token, "", map[int64]bool(nil)).
		Return([]View{{Session: Session{ID: 1}}}, nil)
	router := setupCatalogRouter(t, svc, lookup)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The catalog still renders without booking decoration.
	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_ListUpcoming_InvalidTokenRejected(t *testing.T) {
	svc := new(MockCatalogService)
	router := setupCatalogRouter(t, svc, new(MockBookedLookup))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ListUpcoming", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ListUpcoming_BackendError(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListUpcoming", mock.Anything, "", "", map[int64]bool(nil)).
		Return(nil, &backend.APIError{StatusCode: http.StatusServiceUnavailable, Message: "maintenance"})
	router := setupCatalogRouter(t, svc, new(MockBookedLookup))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "maintenance")
}

func TestHandler_Create(t *testing.T) {
	validBody := `{"name":"Evening Yoga","trainerId":2,"date":"2026-04-01","startTime":"19:00:00","endTime":"20:00:00","location":"Studio A","maxParticipants":12}`

	tests := []struct {
		name       string
		roles      []string
		body       string
		setupMocks func(*MockCatalogService)
		wantStatus int
	}{
		{
			name:  "created",
			roles: []string{"ROLE_ADMIN"},
			body:  validBody,
			setupMocks: func(s *MockCatalogService) {
				s.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(&Session{ID: 9, Name: "Evening Yoga"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "member forbidden",
			roles:      []string{"ROLE_MEMBER"},
			body:       validBody,
			setupMocks: func(s *MockCatalogService) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing required fields",
			roles:      []string{"ROLE_ADMIN"},
			body:       `{"name":"Evening Yoga"}`,
			setupMocks: func(s *MockCatalogService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "backend validation passes through",
			roles: []string{"ROLE_ADMIN"},
			body:  validBody,
			setupMocks: func(s *MockCatalogService) {
				s.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, &backend.APIError{StatusCode: http.StatusBadRequest, Message: "End time must be after start time"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			tt.setupMocks(svc)
			router := setupCatalogRouter(t, svc, new(MockBookedLookup))

			req := httptest.NewRequest(http.MethodPost, "/staff/sessions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+tokenWithRoles(t, tt.roles))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_CancelSession(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("CancelSession", mock.Anything, mock.Anything, int64(3)).
		Return(&Session{ID: 3, Status: StatusCancelled}, nil)
	router := setupCatalogRouter(t, svc, new(MockBookedLookup))

	req := httptest.NewRequest(http.MethodPost, "/staff/sessions/3/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithRoles(t, []string{"ROLE_ADMIN"}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_CancelSession_InvalidID(t *testing.T) {
	svc := new(MockCatalogService)
	router := setupCatalogRouter(t, svc, new(MockBookedLookup))

	req := httptest.NewRequest(http.MethodPost, "/staff/sessions/three/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithRoles(t, []string{"ROLE_ADMIN"}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CancelSession", mock.Anything, mock.Anything, mock.Anything)
}
