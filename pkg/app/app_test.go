package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/onboarding/infra/eventbus"
	"github.com/amirasaad/onboarding/internal/fixtures/memstore"
	"github.com/amirasaad/onboarding/internal/fixtures/mocks"
	"github.com/amirasaad/onboarding/pkg/app"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresServicesAndAuditLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	bus := infraeventbus.NewWithMemory(logger)

	a := app.New(&app.Deps{
		Uow:         memstore.New(),
		FileStore:   mocks.NewMockFileStore(t),
		IDGenerator: requestid.NewDefault(),
		EventBus:    bus,
		Logger:      logger,
	}, &config.App{Cache: &config.Cache{TTL: time.Minute}})

	require.NotNil(t, a.RegistrationService)
	require.NotNil(t, a.Validate)
	assert.True(t, a.FieldValidator.Validate("postCode", "1234 AB").Valid)

	req := &registration.AccountRequest{
		RequestID:   "ABCD-0885",
		Status:      registration.StatusSubmitted,
		AccountType: registration.AccountTypeCurrent,
	}
	require.NoError(t, bus.Emit(context.Background(), events.NewSubmitted(req, true, time.Now())))
	assert.Contains(t, buf.String(), `"msg":"account request event"`)
	assert.Contains(t, buf.String(), `"request_id":"ABCD-0885"`)
	assert.Contains(t, buf.String(), `"from_draft":true`)
}

func TestNew_WithoutEventBus(t *testing.T) {
	a := app.New(&app.Deps{
		Uow:         memstore.New(),
		FileStore:   mocks.NewMockFileStore(t),
		IDGenerator: requestid.NewDefault(),
		Logger:      slog.Default(),
	}, &config.App{})
	assert.Equal(t, []registration.AccountType{"SAVINGS", "CURRENT", "INVESTMENT"}, a.RegistrationService.AccountTypes())
}
