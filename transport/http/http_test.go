package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/permissions"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	tracer := otelMocks.NewOtel()

	routes := router.New(router.DomainHandlers{
		Auth:    auth.New(nil, tracer),
		Room:    room.New(nil, tracer),
		Booking: booking.New(nil, tracer),
		User:    user.New(nil, tracer),
	})

	return transport.New(
		cfg,
		routes,
		middleware.NewAppMiddleware(tracer, cfg, nil),
		middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(gomock.NewController(t)), tracer, permissions.Get(), cfg),
		nil,
		tracer,
	)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_ProtectedRouteNeedsToken(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
