package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/requests"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/responses"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
	"github.com/SupremeBender/ajac-website/internal/services"
)

// CreateMissionHandler handles POST /api/v1/missions
func CreateMissionHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req requests.CreateMissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.CampaignID == "" {
			common.RespondError(w, initTime, nil, "campaign_id is required", http.StatusBadRequest)
			return
		}

		mission, err := missionSvc.CreateMission(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create mission", statusForKind(constants.KindOf(err)))
			return
		}

		common.RespondSuccess(w, initTime, "Mission created", mission, http.StatusCreated)
	}
}

// ListMissionsHandler handles GET /api/v1/missions
func ListMissionsHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summaries, err := missionSvc.ListMissions(r.Context(), r.URL.Query().Get("campaign_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list missions")
			return
		}
		common.RespondSuccess(w, initTime, "Missions", summaries)
	}
}

// GetMissionHandler handles GET /api/v1/missions/{mission_id}
func GetMissionHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.GetMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load mission", statusForKind(constants.KindOf(err)))
			return
		}
		common.RespondSuccess(w, initTime, "Mission", mission)
	}
}

// OpenMissionHandler handles POST /api/v1/missions/{mission_id}/open
func OpenMissionHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.OpenMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to open mission", statusForKind(constants.KindOf(err)))
			return
		}
		common.RespondSuccess(w, initTime, "Mission opened", mission)
	}
}

// LockMissionHandler handles POST /api/v1/missions/{mission_id}/lock
// The response carries the LotATC correlation export generated at lock time.
func LockMissionHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.LockMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to lock mission", statusForKind(constants.KindOf(err)))
			return
		}

		common.RespondSuccess(w, initTime, "Mission locked", map[string]any{
			"mission":     mission,
			"correlation": missionSvc.CorrelationExport(mission),
		})
	}
}

// CorrelationExportHandler handles GET /api/v1/missions/{mission_id}/correlation
func CorrelationExportHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.GetMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load mission", statusForKind(constants.KindOf(err)))
			return
		}
		common.RespondSuccess(w, initTime, "Correlation export", missionSvc.CorrelationExport(mission))
	}
}

// SetSlotsHandler handles PUT /api/v1/missions/{mission_id}/slots
func SetSlotsHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var slots []entities.CuratedSlot
		if err := json.NewDecoder(r.Body).Decode(&slots); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		mission, err := missionSvc.SetCuratedSlots(r.Context(), chi.URLParam(r, "mission_id"), slots)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to set slots", statusForKind(constants.KindOf(err)))
			return
		}
		common.RespondSuccess(w, initTime, "Slots updated", mission.CuratedSlots)
	}
}

// ListSlotsHandler handles GET /api/v1/missions/{mission_id}/slots
func ListSlotsHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := missionSvc.GetMission(r.Context(), chi.URLParam(r, "mission_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load mission", statusForKind(constants.KindOf(err)))
			return
		}

		views := make([]responses.SlotView, 0, len(mission.CuratedSlots))
		for i, slot := range mission.CuratedSlots {
			views = append(views, responses.SlotView{Index: i, Slot: slot})
		}
		for _, f := range mission.Flights {
			if f.ClaimedFromSlot == nil {
				continue
			}
			views = append(views, responses.SlotView{
				Index:    *f.ClaimedFromSlot,
				Slot:     mission.OriginalSlots[f.ID],
				Claimed:  true,
				FlightID: f.ID,
			})
		}
		common.RespondSuccess(w, initTime, "Slots", views)
	}
}

// DeleteMissionHandler handles DELETE /api/v1/missions/{mission_id}
func DeleteMissionHandler(missionSvc *services.MissionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := missionSvc.DeleteMission(r.Context(), chi.URLParam(r, "mission_id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete mission")
			return
		}
		common.RespondSuccess(w, initTime, "Mission deleted", nil)
	}
}

