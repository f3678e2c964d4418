package resources

import (
	"fmt"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// DefaultTacanBank enumerates every valid air-to-air TACAN channel: 1..126 in
// the X band, then 1..126 in the Y band.
func DefaultTacanBank() []string {
	bank := make([]string, 0, 252)
	for _, band := range []string{"X", "Y"} {
		for ch := 1; ch <= 126; ch++ {
			bank = append(bank, fmt.Sprintf("%d%s", ch, band))
		}
	}
	return bank
}

// AllocTacan picks the first candidate channel not yet issued in the mission
// and records it. Exhaustion is a hard failure; no structurally-valid extra
// channel is invented.
func AllocTacan(ledger *entities.ResourceLedger, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultTacanBank()
	}
	for _, ch := range candidates {
		if !ledger.TacanUsed(ch) {
			ledger.TacanChannels = append(ledger.TacanChannels, ch)
			return ch, nil
		}
	}
	return "", constants.OpErrorf(constants.ErrResourceExhausted,
		"No TACAN channels available in this mission")
}
