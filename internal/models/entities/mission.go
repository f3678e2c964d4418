package entities

import (
	"time"

	"github.com/SupremeBender/ajac-website/internal/constants"
)

// Mission is the aggregate root for everything flight-signup related. The
// whole struct is persisted as one document; every mutation goes through a
// load-mutate-save cycle guarded by the mission lock and the document version.
type Mission struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	CampaignID       string `json:"campaign_id"`
	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
	TimeReal         string `json:"time_real,omitempty"`
	TimeInGame       string `json:"time_ingame,omitempty"`
	Status           string `json:"status"`

	Flights map[string]*Flight `json:"flights"`

	// CuratedSlots is the mission-authored slot list still open for claiming.
	// Order is claim-priority significant.
	CuratedSlots []CuratedSlot `json:"curated_slots,omitempty"`

	// OriginalSlots preserves a snapshot of each claimed slot, keyed by the
	// claiming flight's ID, so it can be restored verbatim when that flight
	// dissolves. Slot indexes shift as slots are claimed, so the index is
	// only kept on the flight for positional restore.
	OriginalSlots map[string]CuratedSlot `json:"original_slots,omitempty"`

	Resources ResourceLedger `json:"resources"`

	CreatedAt time.Time `json:"created_at"`

	// Version is the document store's optimistic-concurrency token. Not part
	// of the document body.
	Version int `json:"-"`
}

// NewMission returns an empty mission in the planned state.
func NewMission(id, name, campaignID string) *Mission {
	return &Mission{
		ID:         id,
		Name:       name,
		CampaignID: campaignID,
		Status:     constants.MissionStatusPlanned,
		Flights:    make(map[string]*Flight),
		Resources:  NewResourceLedger(),
		CreatedAt:  time.Now().UTC(),
	}
}

// IsOpen reports whether the mission accepts flight operations.
func (m *Mission) IsOpen() bool {
	return m.Status == constants.MissionStatusOpen
}

// IsLocked reports whether the mission is frozen.
func (m *Mission) IsLocked() bool {
	return m.Status == constants.MissionStatusLocked
}

// AircraftInUse reports whether the given tail number is assigned to any
// pilot in any flight of this mission.
func (m *Mission) AircraftInUse(tail string) bool {
	if tail == "" {
		return false
	}
	for _, f := range m.Flights {
		for _, p := range f.Pilots {
			if p.Aircraft == tail {
				return true
			}
		}
	}
	return false
}

// FlightOfUser returns the flight and slot the user currently occupies, if
// any.
func (m *Mission) FlightOfUser(userID string) (*Flight, string) {
	for _, f := range m.Flights {
		for slot, p := range f.Pilots {
			if p.UserID == userID {
				return f, slot
			}
		}
	}
	return nil, ""
}

// CuratedSlot is a mission-authored flight template awaiting a claimant.
type CuratedSlot struct {
	// Label is the fixed callsign for the flight; blank when the claiming
	// squadron's own callsign bank should be used.
	Label             string   `json:"label,omitempty"`
	EligibleSquadrons []string `json:"eligible_squadrons"`
	Role              string   `json:"role,omitempty"`
	Seats             int      `json:"seats"`
	Description       string   `json:"description,omitempty"`

	// UseSquadronCallsigns selects a callsign from the claiming squadron's
	// bank instead of using the label verbatim.
	UseSquadronCallsigns bool `json:"use_squadron_callsigns,omitempty"`
}

// EligibleFor reports whether the squadron may claim this slot. An empty
// eligibility list means any squadron.
func (s *CuratedSlot) EligibleFor(squadronID string) bool {
	if len(s.EligibleSquadrons) == 0 {
		return true
	}
	for _, sq := range s.EligibleSquadrons {
		if sq == squadronID {
			return true
		}
	}
	return false
}
