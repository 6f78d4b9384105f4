package repository

import (
	"context"
)

// UnitOfWork scopes repository access to a single transaction.
//
// Do runs fn inside a transaction; a non-nil error from fn rolls it back.
// GetRepository returns the repository identified by a typed nil interface
// pointer, bound to the current transaction:
//
//	repoAny, err := uow.GetRepository((*registration.Repository)(nil))
//	repo := repoAny.(registration.Repository)
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	GetRepository(repoType any) (any, error)
}
