package infra

import (
	"context"
	"fmt"
	"reflect"

	infraregistration "github.com/amirasaad/onboarding/infra/repository/registration"
	"github.com/amirasaad/onboarding/pkg/repository"
	"github.com/amirasaad/onboarding/pkg/repository/registration"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one value.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*registration.Repository)(nil)): func(db *gorm.DB) any {
				return infraregistration.New(db)
			},
		},
	}
}

// Do runs fn in a transaction with a UoW bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for repoType, bound to the
// active transaction, or to the plain connection outside Do.
func (u *UoW) GetRepository(repoType any) (any, error) {
	constructor, ok := u.repoRegistry[reflect.TypeOf(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	db := u.tx
	if db == nil {
		db = u.db
	}
	return constructor(db), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
