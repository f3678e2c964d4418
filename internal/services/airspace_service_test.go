package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
)

const airspaceFixture = `{
	"holding_points": {
		"SORIA": {
			"area": "POLAR WEST",
			"transitions": {
				"ENBO": {"inbound": ["GILJA"], "outbound": ["TRANA"]},
				"ENDU": {"inbound": [], "outbound": ["VAGAN"]}
			}
		},
		"MOVAS": {
			"area": "POLAR EAST",
			"transitions": {}
		}
	},
	"ifr_departures": {"ENBO": {"07": ["BODO1A", "BODO2B"]}},
	"ifr_recoveries": {"ENDU": {"28": ["EVENES1"]}}
}`

func setupAirspace(t *testing.T) *AirspaceService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "airspace.json")
	if err := os.WriteFile(path, []byte(airspaceFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewAirspaceService(common.NewCacheService(60, 120), path)
}

func TestBuildRoute_FullSegments(t *testing.T) {
	svc := setupAirspace(t)

	route, err := svc.BuildRoute("ENBO", "BODO1A", "POLAR WEST", "EVENES1", "ENDU")
	if err != nil {
		t.Fatalf("BuildRoute failed: %v", err)
	}
	want := "ENBO BODO1A GILJA SORIA VAGAN EVENES1 ENDU"
	if route != want {
		t.Errorf("Expected %q, got %q", want, route)
	}
}

func TestBuildRoute_NoTransitionsStillRoutes(t *testing.T) {
	svc := setupAirspace(t)

	route, err := svc.BuildRoute("ENBO", "BODO1A", "POLAR EAST", "EVENES1", "ENDU")
	if err != nil {
		t.Fatalf("BuildRoute failed: %v", err)
	}
	want := "ENBO BODO1A MOVAS EVENES1 ENDU"
	if route != want {
		t.Errorf("Expected %q, got %q", want, route)
	}
}

func TestBuildRoute_UnknownArea(t *testing.T) {
	svc := setupAirspace(t)

	_, err := svc.BuildRoute("ENBO", "BODO1A", "NOWHERE", "EVENES1", "ENDU")
	if err == nil {
		t.Fatal("Expected error for unknown area")
	}
	if constants.KindOf(err) != constants.ErrNoRouteAvailable {
		t.Errorf("Expected no_route_available, got %s", constants.KindOf(err))
	}
}

func TestOperationsAreas(t *testing.T) {
	svc := setupAirspace(t)

	areas, err := svc.OperationsAreas()
	if err != nil {
		t.Fatal(err)
	}
	if len(areas) != 2 {
		t.Errorf("Expected 2 areas, got %v", areas)
	}
}

func TestIFRDepartures(t *testing.T) {
	svc := setupAirspace(t)

	deps, err := svc.IFRDepartures("ENBO", "07")
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 2 || deps[0] != "BODO1A" {
		t.Errorf("Unexpected departures: %v", deps)
	}
	none, err := svc.IFRDepartures("ENGM", "01")
	if err != nil || len(none) != 0 {
		t.Errorf("Expected empty for unknown base, got %v (%v)", none, err)
	}
}
