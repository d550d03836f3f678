package router

import (
	"hoteladmin/internal/handlers/auth"
	"hoteladmin/internal/handlers/hotel"
	"hoteladmin/internal/handlers/rateadjustment"
	"hoteladmin/internal/handlers/roomtype"
	"hoteladmin/internal/handlers/user"
	"hoteladmin/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	Hotel          hotel.Handler
	RoomType       roomtype.Handler
	RateAdjustment rateadjustment.Handler
	User           user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. Which routes skip
// authentication and which roles may call the rest is decided by
// the embedded permissions file.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.RateAdjustment.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
