package services

import (
	"context"
	"errors"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

const saveAttempts = 3

// missionMutator runs a load-mutate-save cycle on one mission document.
// The per-mission lease keeps concurrent writers out; the document version
// catches anything that slips past it, in which case the mutation is retried
// against a fresh load.
type missionMutator struct {
	store   MissionStore
	locker  common.MissionLocker
	metrics *metrics.MetricsRegistry
}

func (mm *missionMutator) mutate(ctx context.Context, missionID string, fn func(*entities.Mission) error) (*entities.Mission, error) {
	token, err := mm.locker.Acquire(ctx, missionID)
	if err != nil {
		if errors.Is(err, common.ErrLockHeld) {
			return nil, constants.OpErrorf(constants.ErrConflict, "mission %s is busy, try again", missionID)
		}
		return nil, err
	}
	defer mm.locker.Release(ctx, missionID, token)

	for attempt := 0; attempt < saveAttempts; attempt++ {
		mission, err := mm.store.Get(ctx, missionID)
		if err != nil {
			return nil, err
		}

		if err := fn(mission); err != nil {
			return nil, err
		}

		err = mm.store.Save(ctx, mission)
		if err == nil {
			return mission, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			return nil, err
		}
		logging.Warn("Mission save lost version race, retrying",
			"mission_id", missionID,
			"attempt", attempt+1,
		)
	}
	return nil, constants.OpErrorf(constants.ErrConflict, "mission %s changed concurrently, try again", missionID)
}
