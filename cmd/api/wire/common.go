//go:build wireinject
// +build wireinject

package wire

import (
	sharedhttpapi "predial-server/internal/shared_kernel/httpapi"
	sharedpersistence "predial-server/internal/shared_kernel/persistence"
	sharedusecases "predial-server/internal/shared_kernel/usecases"

	"github.com/google/wire"
)

var CondominiumServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePublisherFactory,
	sharedpersistence.NewCondominiumRepository,
	wire.Bind(new(sharedusecases.CondominiumRepository), new(*sharedpersistence.SimpleCondominiumRepository)),
	sharedusecases.NewCondominiumService,
	wire.Bind(new(sharedusecases.CondominiumService), new(*sharedusecases.SimpleCondominiumService)),
)

func InitializeCondominiumController() (*sharedhttpapi.CondominiumController, error) {
	wire.Build(
		CondominiumServiceSet,
		sharedhttpapi.NewCondominiumController,
	)
	return nil, nil
}

func InitializeUserController() (*sharedhttpapi.UserController, error) {
	wire.Build(
		CondominiumServiceSet,
		sharedpersistence.NewUserRepository,
		wire.Bind(new(sharedusecases.UserRepository), new(*sharedpersistence.SimpleUserRepository)),
		sharedusecases.NewUserService,
		wire.Bind(new(sharedusecases.UserService), new(*sharedusecases.SimpleUserService)),
		sharedhttpapi.NewUserController,
	)
	return nil, nil
}

func InitializeSupplierController() (*sharedhttpapi.SupplierController, error) {
	wire.Build(
		CondominiumServiceSet,
		sharedpersistence.NewSupplierRepository,
		wire.Bind(new(sharedusecases.SupplierRepository), new(*sharedpersistence.SimpleSupplierRepository)),
		sharedusecases.NewSupplierService,
		wire.Bind(new(sharedusecases.SupplierService), new(*sharedusecases.SimpleSupplierService)),
		sharedhttpapi.NewSupplierController,
	)
	return nil, nil
}
