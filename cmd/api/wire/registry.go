//go:build wireinject
// +build wireinject

package wire

import (
	assethttpapi "predial-server/internal/assets/httpapi"
	assetpersistence "predial-server/internal/assets/persistence"
	assetusecases "predial-server/internal/assets/usecases"
	cataloghttpapi "predial-server/internal/catalog/httpapi"
	catalogpersistence "predial-server/internal/catalog/persistence"
	catalogusecases "predial-server/internal/catalog/usecases"
	"predial-server/internal/maintenance/adapters"
	maintpersistence "predial-server/internal/maintenance/persistence"
	maintusecases "predial-server/internal/maintenance/usecases"

	"github.com/google/wire"
)

var CatalogServiceSet = wire.NewSet(
	catalogpersistence.NewAssetTypeRepository,
	wire.Bind(new(catalogusecases.AssetTypeRepository), new(*catalogpersistence.SimpleAssetTypeRepository)),
	catalogpersistence.NewRequirementRepository,
	wire.Bind(new(catalogusecases.RequirementRepository), new(*catalogpersistence.SimpleRequirementRepository)),
	catalogusecases.NewCatalogService,
	wire.Bind(new(catalogusecases.CatalogService), new(*catalogusecases.SimpleCatalogService)),
)

func InitializeCatalogService() (catalogusecases.CatalogService, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CatalogServiceSet,
	)
	return nil, nil
}

func InitializeCatalogController() (*cataloghttpapi.CatalogController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CatalogServiceSet,
		cataloghttpapi.NewCatalogController,
	)
	return nil, nil
}

func InitializeAssetController() (*assethttpapi.AssetController, error) {
	wire.Build(
		CondominiumServiceSet,
		CatalogServiceSet,
		assetpersistence.NewAssetRepository,
		wire.Bind(new(assetusecases.AssetRepository), new(*assetpersistence.SimpleAssetRepository)),
		maintpersistence.NewPlanRepository,
		wire.Bind(new(maintusecases.PlanRepository), new(*maintpersistence.SimplePlanRepository)),
		adapters.NewAssetProvider,
		wire.Bind(new(maintusecases.AssetProvider), new(*adapters.AssetProviderAdapter)),
		adapters.NewCatalogProvider,
		wire.Bind(new(maintusecases.CatalogProvider), new(*adapters.CatalogProviderAdapter)),
		maintusecases.NewPlanService,
		wire.Bind(new(assetusecases.PlanGenerator), new(*maintusecases.SimplePlanService)),
		assetusecases.NewAssetService,
		wire.Bind(new(assetusecases.AssetService), new(*assetusecases.SimpleAssetService)),
		assethttpapi.NewAssetController,
	)
	return nil, nil
}
