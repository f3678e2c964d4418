package constants

const (
	MsgMissionNotFound   = "Mission not found"
	MsgFlightNotFound    = "Flight not found"
	MsgMissionLocked     = "Mission is locked and cannot be modified"
	MsgMissionNotOpen    = "Mission is not open for signup"
	MsgAircraftRequired  = "Aircraft must be selected"
	MsgInvalidPosition   = "Invalid position selected"
	MsgNotInFlight       = "You are not in this flight"
	MsgAlreadyInFlight   = "You are already in this flight"
	MsgFlightDeleted     = "Flight deleted - no pilots remaining"
	MsgLeftFlight        = "Successfully left flight"
	MsgJoinedFlight      = "Successfully joined flight"
)
