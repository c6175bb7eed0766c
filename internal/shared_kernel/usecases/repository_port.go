package usecases

import (
	"context"
	"errors"

	"predial-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/shared_kernel/usecases/repository_port_mock.go -package=usecases -mock_names=CondominiumRepository=MockCondominiumRepository,UserRepository=MockUserRepository,SupplierRepository=MockSupplierRepository

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDuplicated     = errors.New("user already exists")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrSupplierDuplicated = errors.New("supplier already exists")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type CondominiumRepository interface {
	Create(ctx context.Context, condominium domain.Condominium) error
	GetByID(ctx context.Context, id domain.ID) (domain.Condominium, error)
	GetByName(ctx context.Context, name string) (domain.Condominium, error)
	Update(ctx context.Context, condominium domain.Condominium) error
	FindAll(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Condominium, int, error)
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id domain.ID) (domain.User, error)
	GetByEmail(ctx context.Context, condominiumID domain.ID, email string) (domain.User, error)
	FindByCondominium(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.User, int, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier domain.Supplier) error
	GetByID(ctx context.Context, id domain.ID) (domain.Supplier, error)
	FindByCondominium(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.Supplier, int, error)
}
