package api

import (
	"net/http"

	"github.com/SupremeBender/ajac-website/internal/constants"
)

// statusForKind maps operation error kinds to HTTP status codes. The bot
// and the web client key off the kind in the payload; the status code is
// for generic HTTP tooling.
func statusForKind(kind constants.ErrorKind) int {
	switch kind {
	case constants.ErrNotFound:
		return http.StatusNotFound
	case constants.ErrMissingFields, constants.ErrMissingAircraft,
		constants.ErrInvalidSlot, constants.ErrInvalidSlotIndex,
		constants.ErrUnknownSquadron, constants.ErrNotMember:
		return http.StatusBadRequest
	case constants.ErrAircraftNotEligible, constants.ErrSquadronNotEligible:
		return http.StatusForbidden
	case constants.ErrMissionLocked, constants.ErrConflict, constants.ErrSlotTaken,
		constants.ErrAlreadyMember, constants.ErrAircraftInUse,
		constants.ErrResourceExhausted:
		return http.StatusConflict
	case constants.ErrNoRouteAvailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
