package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubhub/club-service/internal/api/http/handlers"
	"github.com/clubhub/club-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Clubs       *handlers.ClubsHandler
	Roles       *handlers.RolesHandler
	Permissions *handlers.PermissionsHandler
	Members     *handlers.MembersHandler
	Sponsors    *handlers.SponsorsHandler
	Payments    *handlers.PaymentsHandler
	Activities  *handlers.ActivitiesHandler
	Properties  *handlers.PropertiesHandler
	Gate        *auth.Gate
}

// RegisterRoutes wires HTTP routes. Auth endpoints are open; every resource
// route demands its own resource.action permission from the token snapshot.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Get("/profile", cfg.Gate.Authenticate(), cfg.Auth.Profile)

	registerResource(app, "/users", "users", resourceHandlers{
		List:   cfg.Users.List,
		Get:    cfg.Users.Get,
		Create: cfg.Users.Create,
		Update: cfg.Users.Update,
		Delete: cfg.Users.Delete,
	}, cfg.Gate)

	registerResource(app, "/clubs", "clubs", resourceHandlers{
		List:   cfg.Clubs.List,
		Get:    cfg.Clubs.Get,
		Create: cfg.Clubs.Create,
		Update: cfg.Clubs.Update,
		Delete: cfg.Clubs.Delete,
	}, cfg.Gate)

	registerResource(app, "/roles", "roles", resourceHandlers{
		List:   cfg.Roles.List,
		Get:    cfg.Roles.Get,
		Create: cfg.Roles.Create,
		Update: cfg.Roles.Update,
		Delete: cfg.Roles.Delete,
	}, cfg.Gate)
	app.Put("/roles/:id/permissions", cfg.Gate.Require("roles.update"), cfg.Roles.ReplacePermissions)

	registerResource(app, "/permissions", "permissions", resourceHandlers{
		List:   cfg.Permissions.List,
		Get:    cfg.Permissions.Get,
		Create: cfg.Permissions.Create,
		Update: cfg.Permissions.Update,
		Delete: cfg.Permissions.Delete,
	}, cfg.Gate)

	registerResource(app, "/members", "members", resourceHandlers{
		List:   cfg.Members.List,
		Get:    cfg.Members.Get,
		Create: cfg.Members.Create,
		Update: cfg.Members.Update,
		Delete: cfg.Members.Delete,
	}, cfg.Gate)

	registerResource(app, "/sponsors", "sponsors", resourceHandlers{
		List:   cfg.Sponsors.List,
		Get:    cfg.Sponsors.Get,
		Create: cfg.Sponsors.Create,
		Update: cfg.Sponsors.Update,
		Delete: cfg.Sponsors.Delete,
	}, cfg.Gate)

	registerResource(app, "/payments", "payments", resourceHandlers{
		List:   cfg.Payments.List,
		Get:    cfg.Payments.Get,
		Create: cfg.Payments.Create,
		Update: cfg.Payments.Update,
		Delete: cfg.Payments.Delete,
	}, cfg.Gate)

	registerResource(app, "/activities", "activities", resourceHandlers{
		List:   cfg.Activities.List,
		Get:    cfg.Activities.Get,
		Create: cfg.Activities.Create,
		Update: cfg.Activities.Update,
		Delete: cfg.Activities.Delete,
	}, cfg.Gate)

	registerResource(app, "/properties", "properties", resourceHandlers{
		List:   cfg.Properties.List,
		Get:    cfg.Properties.Get,
		Create: cfg.Properties.Create,
		Update: cfg.Properties.Update,
		Delete: cfg.Properties.Delete,
	}, cfg.Gate)
}

type resourceHandlers struct {
	List   fiber.Handler
	Get    fiber.Handler
	Create fiber.Handler
	Update fiber.Handler
	Delete fiber.Handler
}

func registerResource(app *fiber.App, prefix, resource string, h resourceHandlers, gate *auth.Gate) {
	group := app.Group(prefix)
	group.Get("/", gate.Require(resource+".read"), h.List)
	group.Get("/:id", gate.Require(resource+".read"), h.Get)
	group.Post("/", gate.Require(resource+".create"), h.Create)
	group.Patch("/:id", gate.Require(resource+".update"), h.Update)
	group.Delete("/:id", gate.Require(resource+".delete"), h.Delete)
}
