package resources

import (
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// BundleInput carries everything a full flight allocation needs: the
// squadron's callsign bank and the mission-wide banks for the other pools.
type BundleInput struct {
	Squadron            string
	CallsignBank        []string
	MissionType         string
	TransponderPrefixes map[string]string
	TacanBank           []string
	FrequencyBank       []string
	ReservedFrequencies []string
}

// Allocation is the result of a successful bundle allocation.
type Allocation struct {
	Callsign         string
	FlightNumber     int
	TransponderCodes []string
	TacanChannel     string
	IntraflightFreq  string
}

// AllocateBundle performs the four allocations a new flight needs as one
// unit. It works on a clone of the ledger: if any pool fails, the original
// ledger is returned untouched and no resource is consumed. On success the
// returned ledger carries all four reservations and must replace the
// mission's ledger in the same save that adds the flight.
func AllocateBundle(ledger entities.ResourceLedger, in BundleInput) (Allocation, entities.ResourceLedger, error) {
	work := ledger.Clone()

	callsign, number, err := AllocCallsignPair(&work, in.Squadron, in.CallsignBank)
	if err != nil {
		return Allocation{}, ledger, err
	}

	codes, err := AllocTransponderBlock(&work, in.TransponderPrefixes, in.MissionType, number)
	if err != nil {
		return Allocation{}, ledger, err
	}

	tacan, err := AllocTacan(&work, in.TacanBank)
	if err != nil {
		return Allocation{}, ledger, err
	}

	freq, err := AllocFrequency(&work, in.FrequencyBank, in.ReservedFrequencies)
	if err != nil {
		return Allocation{}, ledger, err
	}

	return Allocation{
		Callsign:         callsign,
		FlightNumber:     number,
		TransponderCodes: codes,
		TacanChannel:     tacan,
		IntraflightFreq:  freq,
	}, work, nil
}
