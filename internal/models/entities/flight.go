package entities

import (
	"fmt"
	"sort"
	"time"

	"github.com/SupremeBender/ajac-website/internal/constants"
)

// BaseAssignment describes one end of a flight plan: the airbase, the
// departure/recovery procedure flown there and the runway it applies to.
type BaseAssignment struct {
	Base      string `json:"base"`
	Procedure string `json:"procedure,omitempty"`
	Runway    string `json:"runway,omitempty"`
}

// Flight is a formation of up to four aircraft sharing a callsign, flight
// number and reserved resource block inside one mission.
type Flight struct {
	ID           string `json:"flight_id"`
	MissionID    string `json:"mission_id"`
	Squadron     string `json:"squadron"`
	Callsign     string `json:"callsign"`
	FlightNumber int    `json:"flight_number"`
	AircraftType string `json:"aircraft_type,omitempty"`

	Departure BaseAssignment `json:"departure"`
	Recovery  BaseAssignment `json:"recovery"`

	OperationsArea string `json:"operations_area"`
	MissionType    string `json:"mission_type,omitempty"`
	Remarks        string `json:"remarks,omitempty"`
	Route          string `json:"route,omitempty"`

	// TransponderCodes is the reserved block of four contiguous codes, one
	// per possible slot.
	TransponderCodes []string `json:"transponder_codes"`
	TacanChannel     string   `json:"tacan_channel,omitempty"`
	IntraflightFreq  string   `json:"intraflight_freq,omitempty"`

	// Pilots is keyed by slot position "1".."4". Slot "1" is the lead and is
	// occupied for as long as the flight exists.
	Pilots map[string]*Pilot `json:"pilots"`

	Status string `json:"status"`
	Side   string `json:"side"`

	// ClaimedFromSlot records the curated-slot index this flight was created
	// from, so the slot can be restored if the flight dissolves.
	ClaimedFromSlot *int `json:"claimed_from_slot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Pilot is one occupied slot of a flight.
type Pilot struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"username"`
	Slot        string    `json:"position"`
	Callsign    string    `json:"callsign"`
	Transponder string    `json:"transponder,omitempty"`
	Aircraft    string    `json:"aircraft"`
	CrossBase   bool      `json:"is_cross_base,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// TacticalCallsign is the flight's full radio callsign, e.g. "VIPER 0".
func (f *Flight) TacticalCallsign() string {
	return fmt.Sprintf("%s %d", f.Callsign, f.FlightNumber)
}

// PilotCallsign derives the per-slot callsign, e.g. "VIPER01" for slot "1".
func (f *Flight) PilotCallsign(slot string) string {
	return fmt.Sprintf("%s%d%s", f.Callsign, f.FlightNumber, slot)
}

// TransponderForSlot returns the code sliced from the reserved block for the
// given slot position, or "" when the block does not cover it.
func (f *Flight) TransponderForSlot(slot string) string {
	idx := int(slot[0] - '1')
	if idx < 0 || idx >= len(f.TransponderCodes) {
		return ""
	}
	return f.TransponderCodes[idx]
}

// OccupiedSlots returns the occupied slot positions in ascending order.
func (f *Flight) OccupiedSlots() []string {
	slots := make([]string, 0, len(f.Pilots))
	for s := range f.Pilots {
		slots = append(slots, s)
	}
	sort.Strings(slots)
	return slots
}

// Lead returns the slot-"1" pilot, or nil for an empty flight.
func (f *Flight) Lead() *Pilot {
	return f.Pilots[constants.SlotLead]
}

// PilotOf returns the pilot record and slot held by the user, if any.
func (f *Flight) PilotOf(userID string) (*Pilot, string) {
	for slot, p := range f.Pilots {
		if p.UserID == userID {
			return p, slot
		}
	}
	return nil, ""
}
