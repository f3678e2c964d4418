package constants

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every recoverable failure of a flight operation.
// Handlers map kinds to HTTP status codes; the bot relays the message as-is.
type ErrorKind string

const (
	ErrNotFound            ErrorKind = "not_found"
	ErrMissionLocked       ErrorKind = "mission_locked"
	ErrUnknownSquadron     ErrorKind = "unknown_squadron"
	ErrMissingFields       ErrorKind = "missing_fields"
	ErrMissingAircraft     ErrorKind = "missing_aircraft"
	ErrAircraftInUse       ErrorKind = "aircraft_in_use"
	ErrAircraftNotEligible ErrorKind = "aircraft_not_eligible"
	ErrNoRouteAvailable    ErrorKind = "no_route_available"
	ErrResourceExhausted   ErrorKind = "resource_exhausted"
	ErrInvalidSlot         ErrorKind = "invalid_slot"
	ErrSlotTaken           ErrorKind = "slot_taken"
	ErrAlreadyMember       ErrorKind = "already_member"
	ErrNotMember           ErrorKind = "not_member"
	ErrInvalidSlotIndex    ErrorKind = "invalid_slot_index"
	ErrSquadronNotEligible ErrorKind = "squadron_not_eligible"
	ErrConflict            ErrorKind = "conflict"
	ErrInternal            ErrorKind = "internal"
)

// OpError is the structured failure returned by the allocation and membership
// engines. The message is suitable for direct display.
type OpError struct {
	Kind    ErrorKind
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// OpErrorf builds an OpError with a formatted message.
func OpErrorf(kind ErrorKind, format string, args ...interface{}) *OpError {
	return &OpError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, or ErrInternal for plain errors.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return ErrInternal
}
