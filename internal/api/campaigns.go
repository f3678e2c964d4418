package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/services"
)

// ListCampaignsHandler handles GET /api/v1/campaigns
func ListCampaignsHandler(repo *repositories.CampaignRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		campaigns, err := repo.ListCampaigns(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list campaigns")
			return
		}
		common.RespondSuccess(w, initTime, "Campaigns", campaigns)
	}
}

// GetSquadronsHandler handles GET /api/v1/campaigns/{campaign_id}/squadrons
func GetSquadronsHandler(catalog *services.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		squadrons, err := catalog.Squadrons(r.Context(), chi.URLParam(r, "campaign_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load squadrons", statusForKind(constants.KindOf(err)))
			return
		}
		common.RespondSuccess(w, initTime, "Squadrons", squadrons)
	}
}

// AvailableAircraftHandler handles
// GET /api/v1/missions/{mission_id}/squadrons/{squadron_id}/aircraft?departure=ENBO
func AvailableAircraftHandler(catalog *services.CatalogService, missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.GetMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load mission", statusForKind(constants.KindOf(err)))
			return
		}
		campaign, err := catalog.Campaign(r.Context(), mission.CampaignID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load campaign", statusForKind(constants.KindOf(err)))
			return
		}
		sq, err := catalog.Squadron(r.Context(), campaign.ID, chi.URLParam(r, "squadron_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load squadron", statusForKind(constants.KindOf(err)))
			return
		}

		aircraft := catalog.AvailableAircraft(sq, mission, campaign, r.URL.Query().Get("departure"))
		common.RespondSuccess(w, initTime, "Available aircraft", aircraft)
	}
}

// OperationsAreasHandler handles GET /api/v1/airspace/areas
func OperationsAreasHandler(airspace *services.AirspaceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		areas, err := airspace.OperationsAreas()
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load operations areas")
			return
		}
		common.RespondSuccess(w, initTime, "Operations areas", areas)
	}
}

// ProceduresHandler handles GET /api/v1/airspace/procedures?base=ENBO&runway=07
func ProceduresHandler(airspace *services.AirspaceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		base := r.URL.Query().Get("base")
		runway := r.URL.Query().Get("runway")

		departures, err := airspace.IFRDepartures(base, runway)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load procedures")
			return
		}
		recoveries, err := airspace.IFRRecoveries(base, runway)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load procedures")
			return
		}
		common.RespondSuccess(w, initTime, "Procedures", map[string][]string{
			"departures": departures,
			"recoveries": recoveries,
		})
	}
}
