package api

import (
	"github.com/redis/go-redis/v9"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/config"
	"github.com/SupremeBender/ajac-website/internal/db"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/providers"
	"github.com/SupremeBender/ajac-website/internal/services"
)

type Repositories struct {
	Missions  *repositories.MissionRepository
	Campaigns *repositories.CampaignRepository
	Users     *repositories.UserRepository
	Keys      *repositories.KeysRepo
}

type Services struct {
	Cache    *common.CacheService
	Catalog  *services.CatalogService
	Airspace *services.AirspaceService
	Banks    *services.BanksService
	Missions *services.MissionService
	Flights  *services.FlightService
	Identity *services.IdentityService
	Locker   common.MissionLocker
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Redis    *redis.Client
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Missions:  repositories.NewMissionRepository(db.DB, metricsReg),
		Campaigns: repositories.NewCampaignRepository(db.PgDB),
		Users:     repositories.NewUserRepository(db.PgDB),
		Keys:      repositories.NewApiKeysRepo(db.DB),
	}

	redisClient := common.NewRedisClient()
	cacheSvc := common.NewCacheService(120, 600)

	var locker common.MissionLocker = common.NewRedisMissionLocker(redisClient)
	if config.GetBool("USE_LOCAL_LOCKER", false) {
		locker = common.NewLocalMissionLocker()
	}

	catalogSvc := services.NewCatalogService(repos.Campaigns, cacheSvc)
	airspaceSvc := services.NewAirspaceService(cacheSvc, config.Get("AIRSPACE_CONFIG", "config/airspace.json"))
	banksSvc := services.NewBanksService(cacheSvc, config.Get("RESOURCE_BANKS_CONFIG", "config/resource_banks.json"))

	rolesProvider := providers.NewHTTPRolesProvider(
		config.Get("ROLESD_URL", "http://localhost:8091"),
		config.Get("ROLESD_API_KEY", ""),
	)
	identitySvc := services.NewIdentityService(rolesProvider, common.NewRolesStore(redisClient), metricsReg)

	svcs := &Services{
		Cache:    cacheSvc,
		Catalog:  catalogSvc,
		Airspace: airspaceSvc,
		Banks:    banksSvc,
		Missions: services.NewMissionService(repos.Missions, locker, catalogSvc, metricsReg),
		Flights:  services.NewFlightService(repos.Missions, locker, catalogSvc, airspaceSvc, banksSvc, metricsReg),
		Identity: identitySvc,
		Locker:   locker,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Redis:    redisClient,
	}, nil
}
