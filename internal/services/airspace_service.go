package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
)

// HoldingPoint anchors an operations area. Transitions are keyed by airbase:
// inbound legs run base to point, outbound legs point to base.
type HoldingPoint struct {
	Area        string                    `json:"area"`
	Transitions map[string]TransitionPair `json:"transitions"`
}

type TransitionPair struct {
	Inbound  []string `json:"inbound"`
	Outbound []string `json:"outbound"`
}

// AirspaceConfig is the theatre definition: holding points per operations
// area plus the published departure and recovery procedures per base.
type AirspaceConfig struct {
	HoldingPoints map[string]HoldingPoint        `json:"holding_points"`
	VFRDepartures map[string]map[string]string   `json:"vfr_departures"`
	IFRDepartures map[string]map[string][]string `json:"ifr_departures"`
	IFRRecoveries map[string]map[string][]string `json:"ifr_recoveries"`
}

// AirspaceService generates routes through theatre airspace and answers
// procedure lookups for the signup form.
type AirspaceService struct {
	cache      common.CacheInterface
	configPath string
}

func NewAirspaceService(cache common.CacheInterface, configPath string) *AirspaceService {
	return &AirspaceService{cache: cache, configPath: configPath}
}

func (s *AirspaceService) config() (*AirspaceConfig, error) {
	val, err := s.cache.GetOrSet("airspace_config", 5*time.Minute, func() (any, error) {
		data, err := os.ReadFile(s.configPath)
		if err != nil {
			return nil, fmt.Errorf("read airspace config: %w", err)
		}
		var cfg AirspaceConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse airspace config: %w", err)
		}
		return &cfg, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*AirspaceConfig), nil
}

// OperationsAreas lists the areas a flight can be tasked into.
func (s *AirspaceService) OperationsAreas() ([]string, error) {
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var areas []string
	for _, hp := range cfg.HoldingPoints {
		if !seen[hp.Area] {
			seen[hp.Area] = true
			areas = append(areas, hp.Area)
		}
	}
	return areas, nil
}

// BuildRoute assembles the full route string:
// DEP_BASE DEP_PROC [inbound legs] HOLDING_POINT [outbound legs] REC_PROC REC_BASE
func (s *AirspaceService) BuildRoute(depBase, depProc, area, recProc, recBase string) (string, error) {
	cfg, err := s.config()
	if err != nil {
		return "", err
	}

	pointName, point := s.holdingPointFor(cfg, area)
	if pointName == "" {
		return "", constants.OpErrorf(constants.ErrNoRouteAvailable, "no holding point serves area %s", area)
	}

	parts := []string{depBase, depProc}

	if tr, ok := point.Transitions[depBase]; ok {
		parts = append(parts, tr.Inbound...)
	}

	parts = append(parts, pointName)

	if tr, ok := point.Transitions[recBase]; ok {
		parts = append(parts, tr.Outbound...)
	}

	parts = append(parts, recProc, recBase)

	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToUpper(strings.Join(kept, " ")), nil
}

func (s *AirspaceService) holdingPointFor(cfg *AirspaceConfig, area string) (string, HoldingPoint) {
	for name, hp := range cfg.HoldingPoints {
		if strings.EqualFold(hp.Area, area) {
			return name, hp
		}
	}
	return "", HoldingPoint{}
}

// IFRDepartures lists the published departures for a base and runway.
func (s *AirspaceService) IFRDepartures(base, runway string) ([]string, error) {
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	return cfg.IFRDepartures[base][runway], nil
}

// IFRRecoveries lists the published recoveries for a base and runway.
func (s *AirspaceService) IFRRecoveries(base, runway string) ([]string, error) {
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	return cfg.IFRRecoveries[base][runway], nil
}
