package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/requests"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/responses"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// MissionService owns the mission lifecycle: creation, slot authoring,
// opening, locking and the exports produced at lock time.
type MissionService struct {
	mutator missionMutator
	store   MissionStore
	catalog *CatalogService
}

func NewMissionService(store MissionStore, locker common.MissionLocker, catalog *CatalogService, m *metrics.MetricsRegistry) *MissionService {
	return &MissionService{
		mutator: missionMutator{store: store, locker: locker, metrics: m},
		store:   store,
		catalog: catalog,
	}
}

// CreateMission mints the next mission ID under the campaign and persists an
// empty document. IDs look like PP15EX01; display names like "PP15 | EX01".
func (s *MissionService) CreateMission(ctx context.Context, req *requests.CreateMissionRequest) (*entities.Mission, error) {
	campaign, err := s.catalog.Campaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	missionType := strings.ToUpper(req.Type)
	if missionType == "" {
		missionType = campaign.Type
	}
	if missionType != "EX" && missionType != "OP" {
		return nil, constants.OpErrorf(constants.ErrMissingFields, "mission type must be EX or OP, got %q", req.Type)
	}

	prefix := campaign.ID + missionType
	seq, err := s.store.NextSequence(ctx, prefix)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%s%02d", prefix, seq)
	name := fmt.Sprintf("%s | %s%02d", campaign.ID, missionType, seq)

	mission := entities.NewMission(id, name, campaign.ID)
	mission.ShortDescription = req.ShortDescription
	mission.Description = req.LongDescription
	mission.TimeReal = req.StartTime
	mission.TimeInGame = req.EndTime

	if err := s.store.Create(ctx, mission); err != nil {
		return nil, err
	}

	logging.Info("Mission created", "mission_id", id, "campaign_id", campaign.ID)
	return mission, nil
}

// GetMission loads one mission document.
func (s *MissionService) GetMission(ctx context.Context, id string) (*entities.Mission, error) {
	return s.store.Get(ctx, id)
}

// ListMissions summarizes all missions, optionally filtered by campaign.
func (s *MissionService) ListMissions(ctx context.Context, campaignID string) ([]responses.MissionSummary, error) {
	var (
		missions []*entities.Mission
		err      error
	)
	if campaignID != "" {
		missions, err = s.store.ListByCampaign(ctx, campaignID)
	} else {
		missions, err = s.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.MissionSummary, 0, len(missions))
	for _, m := range missions {
		pilots := 0
		for _, f := range m.Flights {
			pilots += len(f.Pilots)
		}
		summaries = append(summaries, responses.MissionSummary{
			ID:          m.ID,
			Name:        m.Name,
			CampaignID:  m.CampaignID,
			Status:      m.Status,
			StartTime:   m.TimeReal,
			FlightCount: len(m.Flights),
			PilotCount:  pilots,
		})
	}
	return summaries, nil
}

// OpenMission moves a planned mission into the open state.
func (s *MissionService) OpenMission(ctx context.Context, id string) (*entities.Mission, error) {
	return s.mutator.mutate(ctx, id, func(m *entities.Mission) error {
		if m.IsLocked() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionLocked)
		}
		m.Status = constants.MissionStatusOpen
		return nil
	})
}

// LockMission freezes the mission and its flights. Under the campaign's
// persistent-location rule the squadron inventories are updated so each
// airframe now lives at its flight's recovery base.
func (s *MissionService) LockMission(ctx context.Context, id string) (*entities.Mission, error) {
	mission, err := s.mutator.mutate(ctx, id, func(m *entities.Mission) error {
		if m.IsLocked() {
			return nil
		}
		m.Status = constants.MissionStatusLocked
		for _, f := range m.Flights {
			f.Status = constants.FlightStatusLocked
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	campaign, err := s.catalog.Campaign(ctx, mission.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.PersistentAircraftLocation {
		if err := s.catalog.UpdateAircraftLocations(ctx, campaign.ID, mission); err != nil {
			logging.Error("Failed to update aircraft locations on lock", "mission_id", id, "error", err)
		}
	}

	logging.Info("Mission locked", "mission_id", id)
	return mission, nil
}

// SetCuratedSlots replaces the mission's open slot list. Only allowed while
// the mission is not locked.
func (s *MissionService) SetCuratedSlots(ctx context.Context, id string, slots []entities.CuratedSlot) (*entities.Mission, error) {
	return s.mutator.mutate(ctx, id, func(m *entities.Mission) error {
		if m.IsLocked() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionLocked)
		}
		m.CuratedSlots = slots
		return nil
	})
}

// DeleteMission removes a mission document entirely.
func (s *MissionService) DeleteMission(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// CorrelationExport renders the mission's transponder assignments in the
// shape LotATC consumes for its correlation file: one entry per occupied
// seat, mode-3 code mapped to the seat callsign.
func (s *MissionService) CorrelationExport(mission *entities.Mission) []responses.CorrelationEntry {
	var entries []responses.CorrelationEntry
	for _, f := range mission.Flights {
		for _, slot := range f.OccupiedSlots() {
			p := f.Pilots[slot]
			code := p.Transponder
			if code == "" {
				code = f.TransponderForSlot(slot)
			}
			entries = append(entries, responses.CorrelationEntry{
				Mode3:    code,
				Callsign: f.PilotCallsign(slot),
				Pilot:    p.DisplayName,
				Type:     f.AircraftType,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Mode3 < entries[j].Mode3 })
	return entries
}
