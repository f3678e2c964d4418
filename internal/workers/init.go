package workers

import (
	"context"

	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/services"
)

type WorkersContainer struct {
	CatalogWarmer *CatalogWarmer
}

func InitWorkers(catalog *services.CatalogService, campaigns *repositories.CampaignRepository) *WorkersContainer {
	warmer := NewCatalogWarmer(catalog, campaigns)

	go warmer.Start(context.Background())

	return &WorkersContainer{
		CatalogWarmer: warmer,
	}
}
