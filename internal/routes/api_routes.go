package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SupremeBender/ajac-website/internal/api"
	"github.com/SupremeBender/ajac-website/internal/config"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	sessionSecret := config.SessionSecret()
	flights := deps.Services.Flights
	missions := deps.Services.Missions
	identity := deps.Services.Identity
	catalog := deps.Services.Catalog
	airspace := deps.Services.Airspace

	r.Route("/api/v1", func(v1 chi.Router) {
		// all routes must be authenticated
		v1.Use(middleware.AuthMiddleware(sessionSecret, deps.Repo.Keys))

		v1.Post("/auth/session", api.SessionHandler(identity, deps.Repo.Users, sessionSecret))
		v1.Get("/auth/me", api.MeHandler())

		// Read endpoints
		v1.Get("/campaigns", api.ListCampaignsHandler(deps.Repo.Campaigns))
		v1.Get("/campaigns/{campaign_id}/squadrons", api.GetSquadronsHandler(catalog))
		v1.Get("/airspace/areas", api.OperationsAreasHandler(airspace))
		v1.Get("/airspace/procedures", api.ProceduresHandler(airspace))
		v1.Get("/missions", api.ListMissionsHandler(missions))
		v1.Get("/missions/{mission_id}", api.GetMissionHandler(missions))
		v1.Get("/missions/{mission_id}/slots", api.ListSlotsHandler(missions))
		v1.Get("/missions/{mission_id}/correlation", api.CorrelationExportHandler(missions))
		v1.Get("/missions/{mission_id}/squadrons/{squadron_id}/aircraft", api.AvailableAircraftHandler(catalog, missions))

		// Signup operations, open to any authenticated member
		v1.Post("/missions/{mission_id}/flights", api.CreateFlightHandler(flights, identity))
		v1.Post("/missions/{mission_id}/flights/join", api.JoinFlightHandler(flights, identity))
		v1.Post("/missions/{mission_id}/flights/{flight_id}/leave", api.LeaveFlightHandler(flights))
		v1.Post("/missions/{mission_id}/slots/claim", api.ClaimSlotHandler(flights, identity))

		// Mission-maker group
		v1.Group(func(maker chi.Router) {
			maker.Use(middleware.RequireRole(constants.RoleMissionMaker))

			maker.Post("/missions", api.CreateMissionHandler(missions))
			maker.Post("/missions/{mission_id}/open", api.OpenMissionHandler(missions))
			maker.Post("/missions/{mission_id}/lock", api.LockMissionHandler(missions))
			maker.Put("/missions/{mission_id}/slots", api.SetSlotsHandler(missions))
			maker.Delete("/missions/{mission_id}", api.DeleteMissionHandler(missions))
		})
	})
}
