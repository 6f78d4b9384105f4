// Package registration implements the account request lifecycle: saving and
// updating drafts, submitting them, and registering in one step.
package registration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/onboarding/pkg/cache"
	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/eventbus"
	"github.com/amirasaad/onboarding/pkg/metrics"
	"github.com/amirasaad/onboarding/pkg/repository"
	registrationrepo "github.com/amirasaad/onboarding/pkg/repository/registration"
	"github.com/amirasaad/onboarding/pkg/storage"
	"golang.org/x/sync/singleflight"
)

// MaxIDAttempts bounds request id regeneration on collision.
const MaxIDAttempts = 5

// ErrIDSpaceExhausted is returned when every generated id was already taken.
var ErrIDSpaceExhausted = &domain.Error{
	Kind:    domain.ErrAlreadyExists,
	Message: "Could not allocate a unique request id",
}

// IDGenerator produces request ids from a date of birth.
type IDGenerator interface {
	Generate(dob time.Time) string
}

// Service drives AccountRequest through DRAFT and SUBMITTED.
type Service struct {
	uow      repository.UnitOfWork
	files    storage.FileStore
	ids      IDGenerator
	bus      eventbus.Bus
	cache    cache.RequestCache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	group    singleflight.Group
}

// Option configures optional collaborators.
type Option func(*Service)

// WithEventBus publishes lifecycle events on bus.
func WithEventBus(bus eventbus.Bus) Option {
	return func(s *Service) { s.bus = bus }
}

// WithCache caches submitted requests for ttl.
func WithCache(c cache.RequestCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(
	uow repository.UnitOfWork,
	files storage.FileStore,
	ids IDGenerator,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		files:  files,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AccountTypes lists the supported account types in declaration order.
func (s *Service) AccountTypes() []registration.AccountType {
	return registration.AccountTypes()
}

// CreateFullRegistration stores the document and persists a SUBMITTED
// request in one step. The document is mandatory.
func (s *Service) CreateFullRegistration(
	ctx context.Context,
	d registration.Details,
	doc *registration.Upload,
) (req *registration.AccountRequest, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation(metrics.OpRegister, start, err) }()

	if err = registration.ValidateDocument(doc); err != nil {
		return nil, err
	}
	req = registration.New(d, registration.StatusDraft)
	if err = s.create(ctx, req, doc, true); err != nil {
		return nil, err
	}
	s.logger.Info("account request registered", "request_id", req.RequestID)
	s.emit(ctx, events.NewSubmitted(req, false, s.now()))
	s.remember(ctx, req)
	return req, nil
}

// SaveDraft persists a new DRAFT. A non-empty document is validated and
// stored; an empty one is ignored.
func (s *Service) SaveDraft(
	ctx context.Context,
	d registration.Details,
	doc *registration.Upload,
) (req *registration.AccountRequest, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation(metrics.OpSaveDraft, start, err) }()

	if !doc.Empty() {
		if err = registration.ValidateDocument(doc); err != nil {
			return nil, err
		}
	} else {
		doc = nil
	}
	req = registration.New(d, registration.StatusDraft)
	if err = s.create(ctx, req, doc, false); err != nil {
		return nil, err
	}
	s.logger.Info("draft saved", "request_id", req.RequestID, "has_document", req.HasDocument())
	s.emit(ctx, events.NewDraftSaved(req, s.now()))
	return req, nil
}

// UpdateDraft overwrites an existing draft. A new non-empty document
// replaces the attached metadata; the previous file stays on disk.
func (s *Service) UpdateDraft(
	ctx context.Context,
	requestID string,
	d registration.Details,
	doc *registration.Upload,
) (req *registration.AccountRequest, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation(metrics.OpUpdateDraft, start, err) }()

	var stored string
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := registrationRepo(uow)
		if err != nil {
			return err
		}
		req, err = s.load(ctx, repo, requestID)
		if err != nil {
			return err
		}
		if err := req.EnsureDraft(); err != nil {
			return err
		}
		req.Apply(d)
		if stored, err = s.attach(ctx, req, doc); err != nil {
			return err
		}
		return repo.Save(ctx, req)
	})
	if err != nil {
		s.discard(ctx, stored)
		return nil, err
	}
	s.logger.Info("draft updated", "request_id", req.RequestID)
	s.emit(ctx, events.NewDraftUpdated(req, s.now()))
	return req, nil
}

// SubmitOrRegister registers a new request or finalizes a draft, depending
// on intent. A draft may only be submitted if it already carries a document
// or doc supplies one.
func (s *Service) SubmitOrRegister(
	ctx context.Context,
	intent Intent,
	d registration.Details,
	doc *registration.Upload,
) (*registration.AccountRequest, error) {
	requestID, draft := intent.RequestID()
	if !draft {
		return s.CreateFullRegistration(ctx, d, doc)
	}
	return s.submitDraft(ctx, requestID, d, doc)
}

func (s *Service) submitDraft(
	ctx context.Context,
	requestID string,
	d registration.Details,
	doc *registration.Upload,
) (req *registration.AccountRequest, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation(metrics.OpSubmitDraft, start, err) }()

	var stored string
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := registrationRepo(uow)
		if err != nil {
			return err
		}
		req, err = s.load(ctx, repo, requestID)
		if err != nil {
			return err
		}
		if req.IsSubmitted() {
			return registration.ErrAlreadySubmitted
		}
		if !req.HasDocument() && doc.Empty() {
			return registration.ErrDocumentRequiredForSubmission
		}
		req.Apply(d)
		if stored, err = s.attach(ctx, req, doc); err != nil {
			return err
		}
		if err := req.Submit(); err != nil {
			return err
		}
		return repo.Save(ctx, req)
	})
	if err != nil {
		s.discard(ctx, stored)
		return nil, err
	}
	s.logger.Info("draft submitted", "request_id", req.RequestID)
	s.emit(ctx, events.NewSubmitted(req, true, s.now()))
	s.remember(ctx, req)
	return req, nil
}

// GetByRequestID returns the stored request. Submitted requests are served
// from the cache when one is configured.
func (s *Service) GetByRequestID(ctx context.Context, requestID string) (req *registration.AccountRequest, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation(metrics.OpGet, start, err) }()

	if s.cache != nil {
		cached, ok, cerr := s.cache.Get(ctx, requestID)
		if cerr != nil {
			s.logger.Warn("request cache read failed", "request_id", requestID, "error", cerr)
		}
		s.metrics.ObserveCache(ok)
		if ok {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(requestID, func() (any, error) {
		// The load is shared by every waiting caller, so the first caller
		// cancelling must not fail the others.
		loadCtx := context.WithoutCancel(ctx)
		var found *registration.AccountRequest
		err := s.uow.Do(loadCtx, func(uow repository.UnitOfWork) error {
			repo, err := registrationRepo(uow)
			if err != nil {
				return err
			}
			found, err = s.load(loadCtx, repo, requestID)
			return err
		})
		if err != nil {
			return nil, err
		}
		s.remember(loadCtx, found)
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*registration.AccountRequest).Clone(), nil
}

// OpenDocument streams the identity document attached to a request.
// The caller closes the reader.
func (s *Service) OpenDocument(ctx context.Context, requestID string) (io.ReadCloser, *registration.IDDocument, error) {
	req, err := s.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if !req.HasDocument() {
		return nil, nil, domain.NotFoundf("No ID document for request: %s", requestID)
	}
	rc, err := s.files.Load(ctx, req.IDDocument.Locator)
	if err != nil {
		return nil, nil, err
	}
	doc := *req.IDDocument
	return rc, &doc, nil
}

// create assigns a fresh request id, stores doc, and persists req. With
// submit set the request is persisted as SUBMITTED.
func (s *Service) create(ctx context.Context, req *registration.AccountRequest, doc *registration.Upload, submit bool) error {
	var stored string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := registrationRepo(uow)
		if err != nil {
			return err
		}
		if req.RequestID, err = s.newRequestID(ctx, repo, req.DateOfBirth); err != nil {
			return err
		}
		if stored, err = s.attach(ctx, req, doc); err != nil {
			return err
		}
		if submit {
			if err := req.Submit(); err != nil {
				return err
			}
		}
		return repo.Save(ctx, req)
	})
	if err != nil {
		s.discard(ctx, stored)
		req.RequestID = ""
	}
	return err
}

func (s *Service) newRequestID(ctx context.Context, repo registrationrepo.Repository, dob time.Time) (string, error) {
	for attempt := 1; attempt <= MaxIDAttempts; attempt++ {
		id := s.ids.Generate(dob)
		exists, err := repo.ExistsByRequestID(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
		s.logger.Warn("request id collision", "request_id", id, "attempt", attempt)
	}
	return "", ErrIDSpaceExhausted
}

// attach stores a non-empty doc and attaches its metadata to req. It
// returns the new locator so a failed transaction can remove the file.
func (s *Service) attach(ctx context.Context, req *registration.AccountRequest, doc *registration.Upload) (string, error) {
	if doc.Empty() {
		return "", nil
	}
	if err := registration.ValidateDocument(doc); err != nil {
		return "", err
	}
	locator, err := s.files.Store(ctx, doc.Content, doc.OriginalName, registration.DocumentCategory)
	if err != nil {
		return "", err
	}
	req.AttachDocument(registration.IDDocument{
		Locator:      locator,
		OriginalName: doc.OriginalName,
		MimeType:     doc.ContentType,
		SizeBytes:    doc.Size,
	})
	s.metrics.ObserveDocument(doc.Size)
	return locator, nil
}

func (s *Service) load(ctx context.Context, repo registrationrepo.Repository, requestID string) (*registration.AccountRequest, error) {
	req, err := repo.GetByRequestID(ctx, requestID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFoundf("Account request not found with id: %s", requestID)
	}
	return req, err
}

func (s *Service) discard(ctx context.Context, locator string) {
	if locator != "" {
		s.files.Delete(ctx, locator)
	}
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Error("failed to emit event", "type", event.Type(), "error", err)
	}
}

// remember caches req when it is SUBMITTED.
func (s *Service) remember(ctx context.Context, req *registration.AccountRequest) {
	if s.cache == nil || !req.IsSubmitted() {
		return
	}
	if err := s.cache.Set(ctx, req, s.cacheTTL); err != nil {
		s.logger.Warn("request cache write failed", "request_id", req.RequestID, "error", err)
	}
}

func registrationRepo(uow repository.UnitOfWork) (registrationrepo.Repository, error) {
	repoAny, err := uow.GetRepository((*registrationrepo.Repository)(nil))
	if err != nil {
		return nil, err
	}
	repo, ok := repoAny.(registrationrepo.Repository)
	if !ok {
		return nil, fmt.Errorf("unexpected repository type")
	}
	return repo, nil
}
