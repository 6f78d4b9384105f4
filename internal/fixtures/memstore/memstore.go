// Package memstore is an in-memory UnitOfWork for tests.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/repository"
	registrationrepo "github.com/amirasaad/onboarding/pkg/repository/registration"
)

// Store keeps account requests in a map. Do runs fn under a single lock, so
// transactions are serialized but not rolled back.
type Store struct {
	mu      sync.Mutex
	records map[string]registration.AccountRequest
	now     func() time.Time
	saves   int
}

func New() *Store {
	return &Store{records: make(map[string]registration.AccountRequest), now: time.Now}
}

func (s *Store) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(txView{s})
}

func (s *Store) GetRepository(repoType any) (any, error) {
	return txView{s}.GetRepository(repoType)
}

// Saves returns how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Put seeds a record without going through a transaction.
func (s *Store) Put(rec registration.AccountRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.RequestID] = rec
}

// txView is the store as seen from inside Do; the lock is already held.
type txView struct{ s *Store }

func (v txView) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(v)
}

func (v txView) GetRepository(repoType any) (any, error) {
	if _, ok := repoType.(*registrationrepo.Repository); ok {
		return repo(v), nil
	}
	return nil, fmt.Errorf("unsupported repository type: %T", repoType)
}

type repo txView

func (r repo) Save(_ context.Context, rec *registration.AccountRequest) error {
	now := r.s.now()
	if prev, ok := r.s.records[rec.RequestID]; ok {
		rec.CreatedAt = prev.CreatedAt
	} else {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	r.s.records[rec.RequestID] = *rec
	r.s.saves++
	return nil
}

func (r repo) GetByRequestID(_ context.Context, requestID string) (*registration.AccountRequest, error) {
	rec, ok := r.s.records[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, requestID)
	}
	return &rec, nil
}

func (r repo) ExistsByRequestID(_ context.Context, requestID string) (bool, error) {
	_, ok := r.s.records[requestID]
	return ok, nil
}

var (
	_ repository.UnitOfWork       = (*Store)(nil)
	_ registrationrepo.Repository = repo{}
)
