package router

import (
	"net/http"

	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// APIVersionPrefix is the mount point of every domain router.
const APIVersionPrefix = "/v1"

// DomainHandler mounts one domain's routes onto the versioned router.
type DomainHandler interface {
	Router(r chi.Router)
}

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Booking booking.Handler
	User    user.Handler
}

func (d *DomainHandlers) all() []DomainHandler {
	return []DomainHandler{&d.Auth, &d.Room, &d.Booking, &d.User}
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the domain routers under APIVersionPrefix and answers
// unknown routes and methods with the JSON error envelope.
func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound("route not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.MethodNotAllowed("method not allowed"))
	})

	router.Route(APIVersionPrefix, func(versioned chi.Router) {
		for _, handler := range r.DomainHandlers.all() {
			handler.Router(versioned)
		}
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
