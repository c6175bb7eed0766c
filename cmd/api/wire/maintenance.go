//go:build wireinject
// +build wireinject

package wire

import (
	assetpersistence "predial-server/internal/assets/persistence"
	assetusecases "predial-server/internal/assets/usecases"
	"predial-server/internal/infra/async"
	"predial-server/internal/maintenance/adapters"
	mainthttpapi "predial-server/internal/maintenance/httpapi"
	maintpersistence "predial-server/internal/maintenance/persistence"
	maintusecases "predial-server/internal/maintenance/usecases"
	sharedpersistence "predial-server/internal/shared_kernel/persistence"
	sharedusecases "predial-server/internal/shared_kernel/usecases"

	"github.com/google/wire"
)

var PlanServiceSet = wire.NewSet(
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
	wire.Bind(new(maintusecases.PlanService), new(*maintusecases.SimplePlanService)),
)

func InitializePlanController() (*mainthttpapi.PlanController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		PlanServiceSet,
		mainthttpapi.NewPlanController,
	)
	return nil, nil
}

func InitializeWorkOrderController(broker async.InternalBroker) (*mainthttpapi.WorkOrderController, error) {
	wire.Build(
		CondominiumServiceSet,
		PlanServiceSet,
		maintpersistence.NewWorkOrderRepository,
		wire.Bind(new(maintusecases.WorkOrderRepository), new(*maintpersistence.SimpleWorkOrderRepository)),
		sharedpersistence.NewUserRepository,
		wire.Bind(new(sharedusecases.UserRepository), new(*sharedpersistence.SimpleUserRepository)),
		sharedusecases.NewUserService,
		wire.Bind(new(sharedusecases.UserService), new(*sharedusecases.SimpleUserService)),
		adapters.NewUserResolver,
		wire.Bind(new(maintusecases.UserResolver), new(*adapters.UserResolverAdapter)),
		maintusecases.NewWorkOrderService,
		wire.Bind(new(maintusecases.WorkOrderService), new(*maintusecases.SimpleWorkOrderService)),
		mainthttpapi.NewWorkOrderController,
	)
	return nil, nil
}

func InitializeDashboardController() (*mainthttpapi.DashboardController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideCache,
		maintpersistence.NewPlanRepository,
		wire.Bind(new(maintusecases.PlanRepository), new(*maintpersistence.SimplePlanRepository)),
		maintusecases.NewDashboardService,
		wire.Bind(new(maintusecases.DashboardService), new(*maintusecases.SimpleDashboardService)),
		mainthttpapi.NewDashboardController,
	)
	return nil, nil
}

func InitializeWorkOrderEventsController(broker async.InternalBroker) (*mainthttpapi.WorkOrderEventsController, error) {
	wire.Build(
		mainthttpapi.NewWorkOrderEventsController,
	)
	return nil, nil
}

func InitializeDueSoonWorker() (*maintusecases.DueSoonWorker, error) {
	wire.Build(
		CondominiumServiceSet,
		provideNotificationClient,
		provideAlertingSchedule,
		maintpersistence.NewPlanRepository,
		wire.Bind(new(maintusecases.PlanRepository), new(*maintpersistence.SimplePlanRepository)),
		maintusecases.NewDueSoonWorker,
	)
	return nil, nil
}
