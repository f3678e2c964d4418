package entities

import "time"

// Campaign is the relational record behind a series of missions. Stored via
// GORM; the ID doubles as the campaign shorthand used in mission IDs
// (e.g. "PP15").
type Campaign struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Shorthand string `json:"shorthand"`
	// Type is "EX" for exercises or "OP" for operations; it feeds the mission
	// ID format.
	Type    string `json:"type"`
	Theatre string `json:"theatre,omitempty"`
	Status  string `json:"status"`

	// PersistentAircraftLocation restricts flight creation to airframes
	// currently based at the requested departure base.
	PersistentAircraftLocation bool `json:"persistent_ac_location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Campaign) TableName() string { return "campaigns" }

// SquadronRecord is the stored form of a campaign squadron: callsign bank and
// aircraft inventory are JSON-encoded columns, decoded by the campaign
// repository into a Squadron.
type SquadronRecord struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	CampaignID   string `gorm:"index:idx_campaign_squadron,unique"`
	SquadronID   string `gorm:"index:idx_campaign_squadron,unique"`
	Name         string
	AircraftType string
	CallsignsRaw string `gorm:"column:callsigns;type:text"`
	AircraftRaw  string `gorm:"column:aircraft;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SquadronRecord) TableName() string { return "campaign_squadrons" }

// Squadron is the catalog view of a squadron the core consumes: identity,
// callsign bank and airframe inventory. Read-only per campaign.
type Squadron struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	AircraftType string              `json:"aircraft_type"`
	Callsigns    []string            `json:"callsigns"`
	Aircraft     map[string]Airframe `json:"aircraft"`
}

// Airframe is one inventory item of a squadron.
type Airframe struct {
	Tail          string `json:"tail"`
	Type          string `json:"type"`
	Squadron      string `json:"squadron"`
	Location      string `json:"location"`
	State         int    `json:"state"`
	Qualification string `json:"qualification,omitempty"`
}

// HasAircraft reports whether the tail belongs to the squadron's inventory.
func (s *Squadron) HasAircraft(tail string) bool {
	_, ok := s.Aircraft[tail]
	return ok
}
