package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/transport/http/router"
)

func newMux() *chi.Mux {
	tracer := otelMocks.NewOtel()

	r := router.New(router.DomainHandlers{
		Auth:    auth.New(nil, tracer),
		Room:    room.New(nil, tracer),
		Booking: booking.New(nil, tracer),
		User:    user.New(nil, tracer),
	})

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func TestSetupRoutes_RegistersDomainRoutes(t *testing.T) {
	mux := newMux()

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/v1/auth/login"},
		{http.MethodGet, "/v1/rooms/{id}"},
		{http.MethodPost, "/v1/bookings/"},
		{http.MethodPut, "/v1/bookings/{id}/cancel"},
		{http.MethodGet, "/v1/users/me"},
	} {
		assert.True(t, mux.Match(chi.NewRouteContext(), route.method, route.path), "%s %s", route.method, route.path)
	}
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	mux := newMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/rooms", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}

func TestSetupRoutes_WrongMethod(t *testing.T) {
	mux := newMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
