package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/resources"
)

// ResourceBanks holds the theatre-wide pools flights allocate from.
type ResourceBanks struct {
	// Intraflight is the pool of intraflight frequencies.
	Intraflight []string `json:"intraflight"`

	// Reserved frequencies are never handed out (guard, ATC, tankers).
	Reserved []string `json:"reserved"`

	// TacanChannels overrides the built-in channel bank when non-empty.
	TacanChannels []string `json:"tacan_channels"`

	// TransponderPrefixes maps mission type to the two-digit block prefix.
	TransponderPrefixes map[string]string `json:"transponder_prefixes"`
}

// BanksService loads and caches the resource bank configuration.
type BanksService struct {
	cache      common.CacheInterface
	configPath string
}

func NewBanksService(cache common.CacheInterface, configPath string) *BanksService {
	return &BanksService{cache: cache, configPath: configPath}
}

// Banks returns the configured pools, falling back to the built-in TACAN
// bank when none is configured.
func (s *BanksService) Banks() (*ResourceBanks, error) {
	val, err := s.cache.GetOrSet("resource_banks", 5*time.Minute, func() (any, error) {
		data, err := os.ReadFile(s.configPath)
		if err != nil {
			return nil, fmt.Errorf("read resource banks: %w", err)
		}
		var banks ResourceBanks
		if err := json.Unmarshal(data, &banks); err != nil {
			return nil, fmt.Errorf("parse resource banks: %w", err)
		}
		if len(banks.TacanChannels) == 0 {
			banks.TacanChannels = resources.DefaultTacanBank()
		}
		return &banks, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*ResourceBanks), nil
}
