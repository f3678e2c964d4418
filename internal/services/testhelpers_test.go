package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// memMissionStore is an in-memory MissionStore with the same versioning
// behavior as the jsonb repository. Documents are deep-copied through JSON
// so mutations only land on Save.
type memMissionStore struct {
	mu       sync.Mutex
	docs     map[string][]byte
	versions map[string]int

	// saveHook runs before each save, for conflict injection.
	saveHook func(m *entities.Mission)
}

func newMemMissionStore() *memMissionStore {
	return &memMissionStore{
		docs:     make(map[string][]byte),
		versions: make(map[string]int),
	}
}

func (s *memMissionStore) Create(_ context.Context, m *entities.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	s.docs[m.ID] = doc
	s.versions[m.ID] = 1
	m.Version = 1
	return nil
}

func (s *memMissionStore) Get(_ context.Context, id string) (*entities.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, constants.OpErrorf(constants.ErrNotFound, "%s", constants.MsgMissionNotFound)
	}
	var m entities.Mission
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	if m.Flights == nil {
		m.Flights = make(map[string]*entities.Flight)
	}
	m.Version = s.versions[id]
	return &m, nil
}

func (s *memMissionStore) Save(_ context.Context, m *entities.Mission) error {
	if s.saveHook != nil {
		s.saveHook(m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[m.ID] != m.Version {
		return repositories.ErrVersionConflict
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	s.docs[m.ID] = doc
	s.versions[m.ID]++
	m.Version++
	return nil
}

func (s *memMissionStore) List(ctx context.Context) ([]*entities.Mission, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var out []*entities.Mission
	for _, id := range ids {
		m, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *memMissionStore) ListByCampaign(ctx context.Context, campaignID string) ([]*entities.Mission, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entities.Mission
	for _, m := range all {
		if m.CampaignID == campaignID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memMissionStore) NextSequence(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := 0
	for id := range s.docs {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if seq, err := strconv.Atoi(strings.TrimPrefix(id, prefix)); err == nil && seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

func (s *memMissionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	delete(s.versions, id)
	return nil
}

// fixture wires a full service stack against sqlite and temp config files.
type fixture struct {
	store    *memMissionStore
	catalog  *CatalogService
	airspace *AirspaceService
	banks    *BanksService
	flights  *FlightService
	missions *MissionService
	campaign *entities.Campaign
}

const testAirspaceConfig = `{
	"holding_points": {
		"SORIA": {
			"area": "POLAR WEST",
			"transitions": {
				"ENBO": {"inbound": ["GILJA"], "outbound": ["TRANA"]}
			}
		}
	}
}`

const testBanksConfig = `{
	"intraflight": ["140.25", "140.50", "140.75", "141.00", "141.25", "141.50", "141.75", "142.00", "142.25", "142.50"],
	"reserved": ["243.000"],
	"transponder_prefixes": {"CAP": "64", "STRIKE": "65"}
}`

func newFixture(t *testing.T, persistentLocation bool) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Campaign{}, &entities.SquadronRecord{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	campaignRepo := repositories.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := &entities.Campaign{
		ID:                         "PP15",
		Name:                       "Polar Plunge 15",
		Shorthand:                  "PP15",
		Type:                       "EX",
		Status:                     "active",
		PersistentAircraftLocation: persistentLocation,
	}
	if err := campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		t.Fatal(err)
	}

	squadron := &entities.Squadron{
		ID:           "331",
		Name:         "331 SQN",
		AircraftType: "F-16C",
		Callsigns:    []string{"VIPER", "COBRA"},
		Aircraft: map[string]entities.Airframe{
			"658": {Tail: "658", Type: "F-16C", Squadron: "331", Location: "ENBO", State: 1},
			"660": {Tail: "660", Type: "F-16C", Squadron: "331", Location: "ENBO", State: 1},
			"667": {Tail: "667", Type: "F-16C", Squadron: "331", Location: "ENDU", State: 1},
		},
	}
	if err := campaignRepo.SaveSquadron(ctx, "PP15", squadron); err != nil {
		t.Fatal(err)
	}
	other := &entities.Squadron{
		ID:           "338",
		Name:         "338 SQN",
		AircraftType: "F-16C",
		Callsigns:    []string{"FURY"},
		Aircraft: map[string]entities.Airframe{
			"686": {Tail: "686", Type: "F-16C", Squadron: "338", Location: "ENBO", State: 1},
		},
	}
	if err := campaignRepo.SaveSquadron(ctx, "PP15", other); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	airspacePath := filepath.Join(dir, "airspace.json")
	if err := os.WriteFile(airspacePath, []byte(testAirspaceConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	banksPath := filepath.Join(dir, "banks.json")
	if err := os.WriteFile(banksPath, []byte(testBanksConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := common.NewCacheService(60, 120)
	catalog := NewCatalogService(campaignRepo, cache)
	airspace := NewAirspaceService(cache, airspacePath)
	banks := NewBanksService(cache, banksPath)
	store := newMemMissionStore()
	locker := common.NewLocalMissionLocker()

	return &fixture{
		store:    store,
		catalog:  catalog,
		airspace: airspace,
		banks:    banks,
		flights:  NewFlightService(store, locker, catalog, airspace, banks, nil),
		missions: NewMissionService(store, locker, catalog, nil),
		campaign: campaign,
	}
}

// openMission seeds an open mission document directly in the store.
func (f *fixture) openMission(t *testing.T, id string) *entities.Mission {
	t.Helper()
	m := entities.NewMission(id, "PP15 | EX01", "PP15")
	m.Status = constants.MissionStatusOpen
	if err := f.store.Create(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	return m
}
