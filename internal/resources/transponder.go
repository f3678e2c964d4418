package resources

import (
	"fmt"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// DefaultTransponderPrefix is used for mission types without a configured
// two-character transponder prefix.
const DefaultTransponderPrefix = "00"

// TransponderBlock derives the four contiguous codes reserved for a flight:
// the mission type's two-character prefix followed by the flight number's
// slot offsets (flightNumber*4 .. +3), each formatted as two octal digits.
// Flight number 8 tops out at offset 35 octal, so the octal field never
// overflows two digits.
func TransponderBlock(prefixes map[string]string, missionType string, flightNumber int) []string {
	prefix, ok := prefixes[missionType]
	if !ok || prefix == "" {
		prefix = DefaultTransponderPrefix
	}
	start := flightNumber * 4
	codes := make([]string, 0, constants.MaxSlots)
	for i := 0; i < constants.MaxSlots; i++ {
		codes = append(codes, fmt.Sprintf("%s%02o", prefix, start+i))
	}
	return codes
}

// AllocTransponderBlock derives the block for (missionType, flightNumber) and
// records its start code in the ledger. Block derivation is deterministic, so
// two squadrons sharing a mission type and flight number would derive the
// same codes; the ledger check turns that silent collision into a hard
// allocation failure.
func AllocTransponderBlock(ledger *entities.ResourceLedger, prefixes map[string]string, missionType string, flightNumber int) ([]string, error) {
	codes := TransponderBlock(prefixes, missionType, flightNumber)
	if ledger.TransponderBlockUsed(codes[0]) {
		return nil, constants.OpErrorf(constants.ErrResourceExhausted,
			"Transponder block %s already issued in this mission", codes[0])
	}
	ledger.TransponderBlocks = append(ledger.TransponderBlocks, codes[0])
	return codes, nil
}
