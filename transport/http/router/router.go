package router

import (
	"github.com/go-chi/chi/v5"

	"royalpalace/internal/handlers/auth"
	"royalpalace/internal/handlers/booking"
	"royalpalace/internal/handlers/contact"
	"royalpalace/internal/handlers/room"
	"royalpalace/internal/handlers/roomtype"
	"royalpalace/internal/handlers/user"
	"royalpalace/transport/http/middleware"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Booking  booking.Handler
	Contact  contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
