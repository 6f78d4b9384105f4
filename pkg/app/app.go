package app

import (
	"log/slog"

	"github.com/amirasaad/onboarding/pkg/cache"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/eventbus"
	"github.com/amirasaad/onboarding/pkg/metrics"
	"github.com/amirasaad/onboarding/pkg/repository"
	registrationsvc "github.com/amirasaad/onboarding/pkg/service/registration"
	"github.com/amirasaad/onboarding/pkg/storage"
	"github.com/amirasaad/onboarding/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow         repository.UnitOfWork
	FileStore   storage.FileStore
	IDGenerator registrationsvc.IDGenerator
	EventBus    eventbus.Bus
	Cache       cache.RequestCache
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

type App struct {
	Deps                *Deps
	Config              *config.App
	FieldValidator      *validation.FieldValidator
	Validate            *validator.Validate
	RegistrationService *registrationsvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:           deps,
		Config:         cfg,
		FieldValidator: validation.NewFieldValidator(),
	}
	app.Validate = app.FieldValidator.NewValidate()

	opts := []registrationsvc.Option{registrationsvc.WithMetrics(deps.Metrics)}
	if deps.EventBus != nil {
		opts = append(opts, registrationsvc.WithEventBus(deps.EventBus))
	}
	if deps.Cache != nil {
		opts = append(opts, registrationsvc.WithCache(deps.Cache, cfg.Cache.TTL))
	}
	app.RegistrationService = registrationsvc.New(
		deps.Uow,
		deps.FileStore,
		deps.IDGenerator,
		deps.Logger,
		opts...,
	)
	app.setupEventBus()
	return app
}

// setupEventBus subscribes the audit log handlers.
func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil {
		return
	}
	for _, et := range []events.EventType{
		events.EventTypeDraftSaved,
		events.EventTypeDraftUpdated,
		events.EventTypeSubmitted,
	} {
		a.Deps.EventBus.Register(et, auditHandler(a.Deps.Logger))
	}
}
