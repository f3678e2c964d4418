package resources

import (
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// AllocFrequency picks the first configured intraflight frequency that is
// neither issued in the mission nor reserved (guard, common tactical nets)
// and records it. The configured list is the whole pool; exhaustion fails.
func AllocFrequency(ledger *entities.ResourceLedger, candidates, reserved []string) (string, error) {
	for _, freq := range candidates {
		if ledger.FrequencyUsed(freq) {
			continue
		}
		if contains(reserved, freq) {
			continue
		}
		ledger.Frequencies = append(ledger.Frequencies, freq)
		return freq, nil
	}
	return "", constants.OpErrorf(constants.ErrResourceExhausted,
		"No intraflight frequencies available in this mission")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
