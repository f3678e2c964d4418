package entities

// ResourceLedger is the per-mission record of every identifier already issued
// to a flight. It lives inside the mission document so that allocations and
// the flights they belong to are always persisted as one unit.
//
// Callsigns and flight numbers are scoped per squadron; transponder blocks,
// TACAN channels and frequencies are mission-wide. Entries are never released
// when a flight dissolves: restored curated slots reclaim their template, but
// the identifiers stay burned for the rest of the mission to avoid confusing
// rapid reuse.
type ResourceLedger struct {
	Callsigns         map[string][]string `json:"callsigns"`
	FlightNumbers     map[string][]int    `json:"flight_numbers"`
	TransponderBlocks []string            `json:"transponder_blocks"`
	TacanChannels     []string            `json:"tacan_channels"`
	Frequencies       []string            `json:"frequencies"`
}

// NewResourceLedger returns an empty ledger.
func NewResourceLedger() ResourceLedger {
	return ResourceLedger{
		Callsigns:     make(map[string][]string),
		FlightNumbers: make(map[string][]int),
	}
}

// Clone returns a deep copy. Allocation bundles work on a clone and only
// write it back to the mission once every member has succeeded.
func (l ResourceLedger) Clone() ResourceLedger {
	out := ResourceLedger{
		Callsigns:         make(map[string][]string, len(l.Callsigns)),
		FlightNumbers:     make(map[string][]int, len(l.FlightNumbers)),
		TransponderBlocks: append([]string(nil), l.TransponderBlocks...),
		TacanChannels:     append([]string(nil), l.TacanChannels...),
		Frequencies:       append([]string(nil), l.Frequencies...),
	}
	for sq, cs := range l.Callsigns {
		out.Callsigns[sq] = append([]string(nil), cs...)
	}
	for sq, nums := range l.FlightNumbers {
		out.FlightNumbers[sq] = append([]int(nil), nums...)
	}
	return out
}

// CallsignUsed reports whether the squadron has already been issued the
// callsign in this mission.
func (l *ResourceLedger) CallsignUsed(squadron, callsign string) bool {
	for _, c := range l.Callsigns[squadron] {
		if c == callsign {
			return true
		}
	}
	return false
}

// FlightNumberUsed reports whether the squadron has already been issued the
// flight number in this mission.
func (l *ResourceLedger) FlightNumberUsed(squadron string, number int) bool {
	for _, n := range l.FlightNumbers[squadron] {
		if n == number {
			return true
		}
	}
	return false
}

// MarkCallsignPair records a callsign + flight-number pair for a squadron.
func (l *ResourceLedger) MarkCallsignPair(squadron, callsign string, number int) {
	l.Callsigns[squadron] = append(l.Callsigns[squadron], callsign)
	l.FlightNumbers[squadron] = append(l.FlightNumbers[squadron], number)
}

// TransponderBlockUsed reports whether a block starting at the given code has
// been issued to any flight in the mission.
func (l *ResourceLedger) TransponderBlockUsed(blockStart string) bool {
	for _, b := range l.TransponderBlocks {
		if b == blockStart {
			return true
		}
	}
	return false
}

// TacanUsed reports whether the channel has been issued in the mission.
func (l *ResourceLedger) TacanUsed(channel string) bool {
	for _, c := range l.TacanChannels {
		if c == channel {
			return true
		}
	}
	return false
}

// FrequencyUsed reports whether the frequency has been issued in the mission.
func (l *ResourceLedger) FrequencyUsed(freq string) bool {
	for _, f := range l.Frequencies {
		if f == freq {
			return true
		}
	}
	return false
}
