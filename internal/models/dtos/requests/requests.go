package requests

// CreateFlightRequest is the form-origin flight creation payload.
type CreateFlightRequest struct {
	Squadron       string `json:"squadron"`
	Aircraft       string `json:"aircraft"`
	MissionType    string `json:"mission_type"`
	Departure      string `json:"departure"`
	DepartureProc  string `json:"departure_procedure,omitempty"`
	Recovery       string `json:"recovery"`
	RecoveryProc   string `json:"recovery_procedure,omitempty"`
	OperationsArea string `json:"operations_area"`
	Remarks        string `json:"remarks,omitempty"`
}

// JoinFlightRequest adds the caller to an existing flight as a wingman.
type JoinFlightRequest struct {
	FlightID string `json:"flight_id"`
	Slot     int    `json:"slot"`
	Aircraft string `json:"aircraft"`
}

// ClaimSlotRequest converts a curated slot into a real flight.
type ClaimSlotRequest struct {
	SlotIndex int    `json:"slot_index"`
	Squadron  string `json:"squadron"`
	Aircraft  string `json:"aircraft"`
}

// CreateMissionRequest seeds a new mission document under a campaign.
type CreateMissionRequest struct {
	CampaignID       string `json:"campaign_id"`
	Type             string `json:"type"` // EX or OP
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
}
