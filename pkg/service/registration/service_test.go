package registration_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	infracache "github.com/amirasaad/onboarding/infra/cache"
	infraeventbus "github.com/amirasaad/onboarding/infra/eventbus"
	infrastorage "github.com/amirasaad/onboarding/infra/storage"
	"github.com/amirasaad/onboarding/internal/fixtures/memstore"
	"github.com/amirasaad/onboarding/internal/fixtures/mocks"
	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/metrics"
	"github.com/amirasaad/onboarding/pkg/repository"
	"github.com/amirasaad/onboarding/pkg/requestid"
	svc "github.com/amirasaad/onboarding/pkg/service/registration"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var requestIDPattern = regexp.MustCompile(`^[A-Z2-9]{4}-0885$`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func haripriya() registration.Details {
	return registration.Details{
		Name:        "Haripriya",
		DateOfBirth: time.Date(1985, 8, 20, 0, 0, 0, 0, time.UTC),
		Address: registration.Address{
			StreetName:  "Keizersgracht",
			HouseNumber: "45B",
			PostCode:    "1015 AB",
			City:        "Amsterdam",
		},
	}
}

func upload(name, contentType, body string) *registration.Upload {
	return &registration.Upload{
		Content:      strings.NewReader(body),
		OriginalName: name,
		ContentType:  contentType,
		Size:         int64(len(body)),
	}
}

// sequence hands out ids in order and repeats the last one.
type sequence struct {
	mu  sync.Mutex
	ids []string
}

func (s *sequence) Generate(time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[0]
	if len(s.ids) > 1 {
		s.ids = s.ids[1:]
	}
	return id
}

type fixture struct {
	svc   *svc.Service
	db    *memstore.Store
	files *infrastorage.LocalStore
	bus   *infraeventbus.MemoryEventBus
	m     *metrics.Metrics
}

func newFixture(t *testing.T, opts ...svc.Option) fixture {
	t.Helper()
	files, err := infrastorage.NewLocalStore(t.TempDir(), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = files.Close() })

	f := fixture{
		db:    memstore.New(),
		files: files,
		bus:   infraeventbus.NewWithMemory(discardLogger()),
		m:     metrics.New(),
	}
	opts = append([]svc.Option{svc.WithEventBus(f.bus), svc.WithMetrics(f.m)}, opts...)
	f.svc = svc.New(f.db, files, requestid.NewDefault(), discardLogger(), opts...)
	return f
}

func eventTypes(bus *infraeventbus.MemoryEventBus) []string {
	var out []string
	for _, e := range bus.Published() {
		out = append(out, e.Type())
	}
	return out
}

func TestDraftThenSubmit_ReusesDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.SaveDraft(ctx, haripriya(), upload("passport.jpg", "image/jpeg", "jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, registration.StatusDraft, draft.Status)
	assert.Regexp(t, requestIDPattern, draft.RequestID)
	require.True(t, draft.HasDocument())
	assert.Equal(t, "passport.jpg", draft.IDDocument.OriginalName)
	assert.True(t, f.files.Exists(ctx, draft.IDDocument.Locator))

	details := haripriya()
	details.AccountType = registration.AccountTypeSavings
	submitted, err := f.svc.SubmitOrRegister(ctx, svc.ExistingDraft(draft.RequestID), details, nil)
	require.NoError(t, err)
	assert.Equal(t, registration.StatusSubmitted, submitted.Status)
	assert.Equal(t, draft.RequestID, submitted.RequestID)
	assert.Equal(t, draft.IDDocument.Locator, submitted.IDDocument.Locator)
	assert.Equal(t, registration.AccountTypeSavings, submitted.AccountType)

	assert.Equal(t, []string{
		events.EventTypeDraftSaved.String(),
		events.EventTypeSubmitted.String(),
	}, eventTypes(f.bus))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.Operations.WithLabelValues(metrics.OpSubmitDraft, metrics.OutcomeSuccess)))
}

func TestSubmitDraft_WithoutDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.SaveDraft(ctx, haripriya(), nil)
	require.NoError(t, err)
	assert.False(t, draft.HasDocument())

	_, err = f.svc.SubmitOrRegister(ctx, svc.IntentFromRequestID(draft.RequestID), haripriya(), &registration.Upload{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "ID document is mandatory for submission", err.Error())

	got, err := f.svc.GetByRequestID(ctx, draft.RequestID)
	require.NoError(t, err)
	assert.Equal(t, registration.StatusDraft, got.Status)
}

func TestSubmitted_IsTerminal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	req, err := f.svc.CreateFullRegistration(ctx, haripriya(), upload("id.pdf", "application/pdf", "%PDF"))
	require.NoError(t, err)
	assert.Equal(t, registration.StatusSubmitted, req.Status)

	_, err = f.svc.UpdateDraft(ctx, req.RequestID, haripriya(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, "Cannot update a submitted request", err.Error())

	_, err = f.svc.SubmitOrRegister(ctx, svc.ExistingDraft(req.RequestID), haripriya(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, "Request has already been submitted", err.Error())
}

func TestCreateFullRegistration_DocumentRules(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateFullRegistration(ctx, haripriya(), nil)
	assert.ErrorIs(t, err, registration.ErrIDDocumentMandatory)

	_, err = f.svc.SubmitOrRegister(ctx, svc.IntentFromRequestID("  "), haripriya(), upload("notes.txt", "text/plain", "hi"))
	assert.ErrorIs(t, err, registration.ErrUnsupportedDocumentType)
	assert.Zero(t, f.db.Saves())
}

func TestSaveDraft_RejectsUnsupportedDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.svc.SaveDraft(context.Background(), haripriya(), upload("a.exe", "application/octet-stream", "MZ"))
	assert.ErrorIs(t, err, registration.ErrUnsupportedDocumentType)
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetByRequestID(ctx, "ZZZZ-0101")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Account request not found with id: ZZZZ-0101", err.Error())

	_, err = f.svc.UpdateDraft(ctx, "ZZZZ-0101", haripriya(), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.SubmitOrRegister(ctx, svc.ExistingDraft("ZZZZ-0101"), haripriya(), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateDraft_ReplacesDocumentAndKeepsOptionalFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first := haripriya()
	salary := decimal.RequireFromString("4200.00")
	first.MonthlySalary = &salary
	first.Email = "haripriya@example.com"
	draft, err := f.svc.SaveDraft(ctx, first, upload("old.png", "image/png", "old"))
	require.NoError(t, err)
	oldLocator := draft.IDDocument.Locator

	second := haripriya()
	second.Name = "Haripriya R"
	updated, err := f.svc.UpdateDraft(ctx, draft.RequestID, second, upload("new.png", "image/png", "new!"))
	require.NoError(t, err)

	assert.Equal(t, draft.RequestID, updated.RequestID)
	assert.Equal(t, registration.StatusDraft, updated.Status)
	assert.Equal(t, "Haripriya R", updated.Name)
	assert.Equal(t, "haripriya@example.com", updated.Email)
	require.NotNil(t, updated.MonthlySalary)
	assert.True(t, updated.MonthlySalary.Equal(salary))
	assert.Equal(t, "new.png", updated.IDDocument.OriginalName)
	assert.Equal(t, int64(4), updated.IDDocument.SizeBytes)
	assert.NotEqual(t, oldLocator, updated.IDDocument.Locator)
	assert.True(t, f.files.Exists(ctx, oldLocator))
	assert.Contains(t, eventTypes(f.bus), events.EventTypeDraftUpdated.String())
}

func TestRequestIDCollision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("regenerates", func(t *testing.T) {
		db := memstore.New()
		db.Put(registration.AccountRequest{RequestID: "AAAA-0885", Status: registration.StatusDraft})
		files, err := infrastorage.NewLocalStore(t.TempDir(), discardLogger())
		require.NoError(t, err)
		s := svc.New(db, files, &sequence{ids: []string{"AAAA-0885", "BBBB-0885"}}, discardLogger())

		req, err := s.SaveDraft(ctx, haripriya(), nil)
		require.NoError(t, err)
		assert.Equal(t, "BBBB-0885", req.RequestID)
	})

	t.Run("gives up", func(t *testing.T) {
		db := memstore.New()
		db.Put(registration.AccountRequest{RequestID: "AAAA-0885", Status: registration.StatusDraft})
		files, err := infrastorage.NewLocalStore(t.TempDir(), discardLogger())
		require.NoError(t, err)
		s := svc.New(db, files, &sequence{ids: []string{"AAAA-0885"}}, discardLogger())

		_, err = s.SaveDraft(ctx, haripriya(), nil)
		assert.ErrorIs(t, err, svc.ErrIDSpaceExhausted)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestFailedSave_RemovesStoredDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockRegistrationRepository(t)
	files := mocks.NewMockFileStore(t)

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	)
	uow.EXPECT().GetRepository(mock.Anything).Return(repo, nil)
	repo.EXPECT().ExistsByRequestID(mock.Anything, "CCCC-0885").Return(false, nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))
	files.EXPECT().Store(mock.Anything, mock.Anything, "id.png", registration.DocumentCategory).
		Return("id-documents/20240101-000000-deadbeef.png", nil)
	files.EXPECT().Delete(mock.Anything, "id-documents/20240101-000000-deadbeef.png").Return()

	s := svc.New(uow, files, &sequence{ids: []string{"CCCC-0885"}}, discardLogger())
	req, err := s.CreateFullRegistration(ctx, haripriya(), upload("id.png", "image/png", "png"))
	assert.EqualError(t, err, "db down")
	assert.Nil(t, req)
}

func TestGetByRequestID_CachesSubmitted(t *testing.T) {
	t.Parallel()
	c := infracache.NewMemoryCache(0)
	f := newFixture(t, svc.WithCache(c, time.Minute))
	ctx := context.Background()

	req, err := f.svc.CreateFullRegistration(ctx, haripriya(), upload("id.jpg", "image/jpeg", "jpg"))
	require.NoError(t, err)

	first, err := f.svc.GetByRequestID(ctx, req.RequestID)
	require.NoError(t, err)
	second, err := f.svc.GetByRequestID(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.m.CacheLookups.WithLabelValues("hit")))

	draft, err := f.svc.SaveDraft(ctx, haripriya(), nil)
	require.NoError(t, err)
	_, err = f.svc.GetByRequestID(ctx, draft.RequestID)
	require.NoError(t, err)
	_, ok, err := c.Get(ctx, draft.RequestID)
	require.NoError(t, err)
	assert.False(t, ok, "drafts are not cached")
}

func TestGetByRequestID_LoadIgnoresCallerCancellation(t *testing.T) {
	t.Parallel()
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockRegistrationRepository(t)
	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	uow.EXPECT().Do(live, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	)
	uow.EXPECT().GetRepository(mock.Anything).Return(repo, nil)
	repo.EXPECT().GetByRequestID(live, "DDDD-0885").
		Return(&registration.AccountRequest{RequestID: "DDDD-0885", Status: registration.StatusDraft}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := svc.New(uow, mocks.NewMockFileStore(t), requestid.NewDefault(), discardLogger())
	got, err := s.GetByRequestID(ctx, "DDDD-0885")
	require.NoError(t, err)
	assert.Equal(t, "DDDD-0885", got.RequestID)
}

func TestGetByRequestID_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()
	c := infracache.NewMemoryCache(0)
	f := newFixture(t, svc.WithCache(c, time.Minute))
	ctx := context.Background()

	d := haripriya()
	balance := decimal.RequireFromString("500")
	d.StartingBalance = &balance
	req, err := f.svc.CreateFullRegistration(ctx, d, upload("id.pdf", "application/pdf", "pdf"))
	require.NoError(t, err)

	for range 2 {
		got, err := f.svc.GetByRequestID(ctx, req.RequestID)
		require.NoError(t, err)
		require.NotNil(t, got.StartingBalance)
		require.NotNil(t, got.IDDocument)
		assert.True(t, got.StartingBalance.Equal(balance))
		assert.Equal(t, "id.pdf", got.IDDocument.OriginalName)

		*got.StartingBalance = decimal.Zero
		got.IDDocument.OriginalName = "tampered.pdf"
	}
}

func TestGetByRequestID_Concurrent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	req, err := f.svc.SaveDraft(ctx, haripriya(), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.svc.GetByRequestID(ctx, req.RequestID)
			assert.NoError(t, err)
			assert.Equal(t, req.RequestID, got.RequestID)
		}()
	}
	wg.Wait()
}

func TestOpenDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	req, err := f.svc.SaveDraft(ctx, haripriya(), upload("scan.pdf", "application/pdf", "%PDF-1.7"))
	require.NoError(t, err)

	rc, doc, err := f.svc.OpenDocument(ctx, req.RequestID)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))
	assert.Equal(t, "application/pdf", doc.MimeType)

	bare, err := f.svc.SaveDraft(ctx, haripriya(), nil)
	require.NoError(t, err)
	_, _, err = f.svc.OpenDocument(ctx, bare.RequestID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntent(t *testing.T) {
	t.Parallel()
	_, draft := svc.IntentFromRequestID("").RequestID()
	assert.False(t, draft)
	id, draft := svc.IntentFromRequestID(" ABCD-0101 ").RequestID()
	assert.True(t, draft)
	assert.Equal(t, "ABCD-0101", id)
	assert.Equal(t, "new", svc.NewRegistration().String())
}

func TestAccountTypes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	assert.Equal(t, registration.AccountTypes(), f.svc.AccountTypes())
}
