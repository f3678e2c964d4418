package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

const catalogCacheTTL = 2 * time.Minute

// CatalogService serves the per-campaign squadron catalog: callsign banks,
// aircraft inventories and eligibility checks. Reads are cached and
// deduplicated; the catalog is read-only during a mission.
type CatalogService struct {
	repo  *repositories.CampaignRepository
	cache common.CacheInterface
	group singleflight.Group
}

func NewCatalogService(repo *repositories.CampaignRepository, cache common.CacheInterface) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// Campaign returns the campaign record, cached.
func (s *CatalogService) Campaign(ctx context.Context, id string) (*entities.Campaign, error) {
	key := "campaign:" + id
	val, err, _ := s.group.Do(key, func() (any, error) {
		return s.cache.GetOrSet(key, catalogCacheTTL, func() (any, error) {
			return s.repo.GetCampaign(ctx, id)
		})
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Campaign), nil
}

// Squadrons returns the campaign's full squadron roster, cached.
func (s *CatalogService) Squadrons(ctx context.Context, campaignID string) (map[string]*entities.Squadron, error) {
	key := "squadrons:" + campaignID
	val, err, _ := s.group.Do(key, func() (any, error) {
		return s.cache.GetOrSet(key, catalogCacheTTL, func() (any, error) {
			return s.repo.GetSquadrons(ctx, campaignID)
		})
	})
	if err != nil {
		return nil, err
	}
	return val.(map[string]*entities.Squadron), nil
}

// Squadron resolves one squadron of a campaign.
func (s *CatalogService) Squadron(ctx context.Context, campaignID, squadronID string) (*entities.Squadron, error) {
	squadrons, err := s.Squadrons(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	sq, ok := squadrons[squadronID]
	if !ok {
		return nil, constants.OpErrorf(constants.ErrUnknownSquadron, "squadron %s is not part of campaign %s", squadronID, campaignID)
	}
	return sq, nil
}

// Invalidate drops the cached catalog for a campaign after an admin edit.
func (s *CatalogService) Invalidate(campaignID string) {
	s.cache.Delete("campaign:" + campaignID)
	s.cache.Delete("squadrons:" + campaignID)
}

// AvailableAircraft lists the squadron's airframes still assignable in the
// mission, sorted by tail. With the campaign's persistent-location rule on,
// only airframes based at the departure base are offered.
func (s *CatalogService) AvailableAircraft(sq *entities.Squadron, mission *entities.Mission, campaign *entities.Campaign, departureBase string) []entities.Airframe {
	var out []entities.Airframe
	for _, af := range sq.Aircraft {
		if mission.AircraftInUse(af.Tail) {
			continue
		}
		if campaign.PersistentAircraftLocation && departureBase != "" && af.Location != departureBase {
			continue
		}
		out = append(out, af)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tail < out[j].Tail })
	return out
}

// ValidateAircraft checks that the tail may be assigned in the mission by a
// member of the squadron flying from the departure base.
func (s *CatalogService) ValidateAircraft(sq *entities.Squadron, mission *entities.Mission, campaign *entities.Campaign, tail, departureBase string) error {
	if tail == "" {
		return constants.OpErrorf(constants.ErrMissingAircraft, "%s", constants.MsgAircraftRequired)
	}
	af, ok := sq.Aircraft[tail]
	if !ok {
		return constants.OpErrorf(constants.ErrAircraftNotEligible, "aircraft %s does not belong to squadron %s", tail, sq.ID)
	}
	if mission.AircraftInUse(tail) {
		return constants.OpErrorf(constants.ErrAircraftInUse, "aircraft %s is already assigned in this mission", tail)
	}
	if campaign.PersistentAircraftLocation && departureBase != "" && af.Location != departureBase {
		return constants.OpErrorf(constants.ErrAircraftNotEligible,
			"aircraft %s is based at %s, not %s", tail, af.Location, departureBase)
	}
	return nil
}

// UpdateAircraftLocations moves every assigned airframe to its flight's
// recovery base. Called when a mission locks under the persistent-location
// rule so the next mission starts from where aircraft actually ended up.
func (s *CatalogService) UpdateAircraftLocations(ctx context.Context, campaignID string, mission *entities.Mission) error {
	squadrons, err := s.Squadrons(ctx, campaignID)
	if err != nil {
		return err
	}

	touched := make(map[string]bool)
	for _, f := range mission.Flights {
		sq, ok := squadrons[f.Squadron]
		if !ok {
			continue
		}
		for _, p := range f.Pilots {
			af, ok := sq.Aircraft[p.Aircraft]
			if !ok || f.Recovery.Base == "" || af.Location == f.Recovery.Base {
				continue
			}
			af.Location = f.Recovery.Base
			sq.Aircraft[p.Aircraft] = af
			touched[f.Squadron] = true
		}
	}

	for id := range touched {
		if err := s.repo.SaveSquadron(ctx, campaignID, squadrons[id]); err != nil {
			return fmt.Errorf("persist squadron %s: %w", id, err)
		}
	}
	if len(touched) > 0 {
		s.Invalidate(campaignID)
	}
	return nil
}
