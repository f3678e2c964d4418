package workers

import (
	"context"
	"time"

	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/services"
)

// CatalogWarmer keeps the squadron catalog of every active campaign warm so
// signup requests never pay the cold-load cost.
type CatalogWarmer struct {
	catalog   *services.CatalogService
	campaigns *repositories.CampaignRepository
	interval  time.Duration
}

func NewCatalogWarmer(catalog *services.CatalogService, campaigns *repositories.CampaignRepository) *CatalogWarmer {
	return &CatalogWarmer{
		catalog:   catalog,
		campaigns: campaigns,
		interval:  90 * time.Second,
	}
}

func (w *CatalogWarmer) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CatalogWarmer) warm(ctx context.Context) {
	campaigns, err := w.campaigns.ListCampaigns(ctx)
	if err != nil {
		logging.Warn("Catalog warmer failed to list campaigns", "error", err)
		return
	}
	for _, c := range campaigns {
		if c.Status != "active" {
			continue
		}
		if _, err := w.catalog.Squadrons(ctx, c.ID); err != nil {
			logging.Warn("Catalog warmer failed to load squadrons", "campaign_id", c.ID, "error", err)
		}
	}
}
