package registration

import (
	"context"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// Repository persists account requests keyed by their request id.
type Repository interface {
	// Save inserts rec, or overwrites the stored row with the same request id.
	// CreatedAt and UpdatedAt on rec are refreshed from the stored row.
	Save(ctx context.Context, rec *registration.AccountRequest) error

	// GetByRequestID returns the request or an error wrapping domain.ErrNotFound.
	GetByRequestID(ctx context.Context, requestID string) (*registration.AccountRequest, error)

	// ExistsByRequestID reports whether a request with the id is stored.
	ExistsByRequestID(ctx context.Context, requestID string) (bool, error)
}
