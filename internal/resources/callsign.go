// Package resources implements the per-mission resource pools: callsign and
// flight-number pairs, transponder blocks, TACAN channels and intraflight
// frequencies. All functions are pure over a ResourceLedger value — they take
// the ledger, pick a value, and record it, with no I/O. The caller owns
// persisting the ledger together with the flight that consumed it.
package resources

import (
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// AllocCallsignPair issues a (callsign, flight number) pair for the squadron.
//
// Flight numbers 0..8 are hard-unique per squadron per mission. Callsigns are
// preferred fresh: the search walks flight numbers in the outer loop and the
// bank in order in the inner loop looking for a pair where both parts are
// unused. When the bank is saturated it falls back to reusing a call-word
// with a fresh number — the pair stays unique because the number is fresh, so
// a one-word bank still covers all nine flights. Exhaustion means all nine
// numbers are burned.
//
// Scoping is per squadron: two squadrons may hold the same flight number or
// callsign word without colliding, since the tactical callsign always carries
// the squadron's own call-word.
func AllocCallsignPair(ledger *entities.ResourceLedger, squadron string, bank []string) (string, int, error) {
	if len(bank) == 0 {
		// A squadron without a bank flies under its own identifier.
		bank = []string{squadron}
	}

	number := -1
	for n := 0; n <= constants.MaxFlightNumber; n++ {
		if !ledger.FlightNumberUsed(squadron, n) {
			number = n
			break
		}
	}
	if number < 0 {
		return "", 0, constants.OpErrorf(constants.ErrResourceExhausted,
			"No available callsign/number pairs for squadron %s", squadron)
	}

	for _, callsign := range bank {
		if !ledger.CallsignUsed(squadron, callsign) {
			ledger.MarkCallsignPair(squadron, callsign, number)
			return callsign, number, nil
		}
	}

	// Bank saturated: reuse the first call-word under the fresh number.
	callsign := bank[0]
	ledger.MarkCallsignPair(squadron, callsign, number)
	return callsign, number, nil
}
