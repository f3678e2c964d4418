package responses

import "github.com/SupremeBender/ajac-website/internal/models/entities"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// FlightResult carries the outcome of a flight mutation back to the
// caller, including the machine-readable error kind on failure.
type FlightResult struct {
	Success   bool             `json:"success"`
	ErrorKind string           `json:"error_kind,omitempty"`
	Message   string           `json:"message,omitempty"`
	Flight    *entities.Flight `json:"flight,omitempty"`
	Mission   *MissionSummary  `json:"mission,omitempty"`
}

// MissionSummary is the list-view projection of a mission document.
type MissionSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CampaignID  string `json:"campaign_id"`
	Status      string `json:"status"`
	StartTime   string `json:"start_time,omitempty"`
	FlightCount int    `json:"flight_count"`
	PilotCount  int    `json:"pilot_count"`
}

// SlotView is a curated slot decorated with its claim state for display.
type SlotView struct {
	Index    int                  `json:"index"`
	Slot     entities.CuratedSlot `json:"slot"`
	Claimed  bool                 `json:"claimed"`
	FlightID string               `json:"flight_id,omitempty"`
}

// CorrelationEntry is one aircraft in the LotATC transponder export.
type CorrelationEntry struct {
	Mode3    string `json:"mode3"`
	Callsign string `json:"callsign"`
	Pilot    string `json:"pilot,omitempty"`
	Type     string `json:"type,omitempty"`
}
