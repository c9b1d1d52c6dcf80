package routes

import (
	"farmconnect/internal/delivery/http/handler"
	"farmconnect/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	auth      *handler.AuthHandler
	labour    *handler.LabourHandler
	matches   *handler.MatchHandler
	equipment *handler.EquipmentHandler
	ads       *handler.AdsHandler
	health    *handler.HealthHandler
	wsHandler *ws.Handler
	authMw    fiber.Handler
}

func NewRegistry(
	auth *handler.AuthHandler,
	labour *handler.LabourHandler,
	matches *handler.MatchHandler,
	equipment *handler.EquipmentHandler,
	ads *handler.AdsHandler,
	health *handler.HealthHandler,
	wsHandler *ws.Handler,
	authMw fiber.Handler,
) *Registry {
	return &Registry{
		auth:      auth,
		labour:    labour,
		matches:   matches,
		equipment: equipment,
		ads:       ads,
		health:    health,
		wsHandler: wsHandler,
		authMw:    authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.wsHandler == nil {
		return
	}

	app.Get("/ws/matches", r.wsHandler.HandleMatchesWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	r.auth.RegisterRoutes(api.Group("/auth"))

	labour := api.Group("/labour", r.authMw)
	r.labour.RegisterRoutes(labour)
	r.matches.RegisterRoutes(labour)

	r.equipment.RegisterRoutes(api.Group("/equipment"), r.authMw)
	r.ads.RegisterRoutes(api.Group("/ads"), r.authMw)
}
