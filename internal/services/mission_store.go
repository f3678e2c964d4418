package services

import (
	"context"

	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// MissionStore is the persistence contract for mission documents. The
// production implementation is the jsonb-backed MissionRepository.
type MissionStore interface {
	Create(ctx context.Context, m *entities.Mission) error
	Get(ctx context.Context, id string) (*entities.Mission, error)
	Save(ctx context.Context, m *entities.Mission) error
	List(ctx context.Context) ([]*entities.Mission, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*entities.Mission, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
	Delete(ctx context.Context, id string) error
}
