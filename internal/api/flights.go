package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SupremeBender/ajac-website/internal/auth"
	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/requests"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/responses"
	"github.com/SupremeBender/ajac-website/internal/services"
)

// callerIdentity resolves the acting user from claims, falling back to the
// identity service when the auth path carried no display name.
func callerIdentity(r *http.Request, identity *services.IdentityService) (string, string) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		return "", ""
	}
	name := claims.DisplayName()
	if name == "" && identity != nil {
		name, _ = identity.Resolve(r.Context(), claims.UserID())
	}
	return claims.UserID(), name
}

// respondFlightErr writes the structured failure envelope for an operation.
func respondFlightErr(w http.ResponseWriter, initTime time.Time, err error) {
	kind := constants.KindOf(err)
	result := responses.FlightResult{
		Success:   false,
		ErrorKind: string(kind),
		Message:   err.Error(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForKind(kind))
	_ = json.NewEncoder(w).Encode(responses.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      err.Error(),
		ResponseTime: common.GetResponseTime(initTime),
		Data:         result,
	})
}

// CreateFlightHandler handles POST /api/v1/missions/{mission_id}/flights
func CreateFlightHandler(flightSvc *services.FlightService, identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		missionID := chi.URLParam(r, "mission_id")

		var req requests.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID, displayName := callerIdentity(r, identity)
		flight, err := flightSvc.CreateFlight(r.Context(), missionID, userID, displayName, &req)
		if err != nil {
			respondFlightErr(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Flight created", responses.FlightResult{
			Success: true,
			Flight:  flight,
		}, http.StatusCreated)
	}
}

// JoinFlightHandler handles POST /api/v1/missions/{mission_id}/flights/join
func JoinFlightHandler(flightSvc *services.FlightService, identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		missionID := chi.URLParam(r, "mission_id")

		var req requests.JoinFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID, displayName := callerIdentity(r, identity)
		flight, err := flightSvc.JoinFlight(r.Context(), missionID, userID, displayName, &req)
		if err != nil {
			respondFlightErr(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgJoinedFlight, responses.FlightResult{
			Success: true,
			Flight:  flight,
		})
	}
}

// LeaveFlightHandler handles POST /api/v1/missions/{mission_id}/flights/{flight_id}/leave
func LeaveFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		missionID := chi.URLParam(r, "mission_id")
		flightID := chi.URLParam(r, "flight_id")

		claims := auth.GetUserClaims(r.Context())
		message, err := flightSvc.LeaveFlight(r.Context(), missionID, flightID, claims.UserID())
		if err != nil {
			respondFlightErr(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, message, responses.FlightResult{Success: true, Message: message})
	}
}

// ClaimSlotHandler handles POST /api/v1/missions/{mission_id}/slots/claim
func ClaimSlotHandler(flightSvc *services.FlightService, identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		missionID := chi.URLParam(r, "mission_id")

		var req requests.ClaimSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID, displayName := callerIdentity(r, identity)
		flight, err := flightSvc.ClaimSlot(r.Context(), missionID, userID, displayName, &req)
		if err != nil {
			respondFlightErr(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Slot claimed", responses.FlightResult{
			Success: true,
			Flight:  flight,
		}, http.StatusCreated)
	}
}
