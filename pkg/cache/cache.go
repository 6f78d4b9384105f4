package cache

import (
	"context"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// RequestCache is a read-through cache for submitted account requests.
// Get reports a miss with ok == false and a nil error.
type RequestCache interface {
	Get(ctx context.Context, requestID string) (req *registration.AccountRequest, ok bool, err error)
	Set(ctx context.Context, req *registration.AccountRequest, ttl time.Duration) error
	Delete(ctx context.Context, requestID string) error
}
