package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"
)

// Mission lifecycle states. A mission only accepts flight operations while
// open; locking freezes the document for export.
const (
	MissionStatusPlanned = "planned"
	MissionStatusOpen    = "open"
	MissionStatusLocked  = "locked"
)

const (
	FlightStatusActive = "active"
	FlightStatusLocked = "locked"
)

const (
	SideBlue = "blue"
	SideRed  = "red"
)

// Slot positions within a flight. Slot "1" is always the flight lead.
const (
	SlotLead = "1"
	MaxSlots = 4
)

// Flight numbers run 0..8 per squadron per mission, which bounds a squadron
// at nine flights in one mission.
const MaxFlightNumber = 8

// Roles recognised by the ops site. Role IDs come from the identity provider;
// these names are the canonical display values.
const (
	RoleMissionMaker = "MISSION MAKER"
	RoleAdmin        = "ADMIN"
	RoleBlueTeam     = "BLUFOR"
	RoleRedTeam      = "REDFOR"
)
