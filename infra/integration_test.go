//go:build integration

package infra_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/onboarding/infra"
	infrastorage "github.com/amirasaad/onboarding/infra/storage"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/requestid"
	registrationsvc "github.com/amirasaad/onboarding/pkg/service/registration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type PostgresSuite struct {
	suite.Suite
	pg  *tcpostgres.PostgresContainer
	db  *gorm.DB
	svc *registrationsvc.Service
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()
	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pg = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.db, err = infra.NewDBConnection(&config.DB{
		Driver:          "postgres",
		Url:             dsn,
		AutoMigrate:     true,
		MaxOpenConns:    5,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
	}, "test", logger)
	s.Require().NoError(err)

	files, err := infrastorage.NewLocalStore(s.T().TempDir(), logger)
	s.Require().NoError(err)
	s.svc = registrationsvc.New(infra.NewUoW(s.db), files, requestid.NewDefault(), logger)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pg != nil {
		_ = s.pg.Terminate(context.Background())
	}
}

func details() registration.Details {
	salary := decimal.RequireFromString("4200.75")
	return registration.Details{
		Name:        "Haripriya",
		DateOfBirth: time.Date(1985, 8, 20, 0, 0, 0, 0, time.UTC),
		Address: registration.Address{
			StreetName:  "Keizersgracht",
			HouseNumber: "45B",
			PostCode:    "1015 AB",
			City:        "Amsterdam",
		},
		MonthlySalary:             &salary,
		InterestedInOtherProducts: registration.No,
	}
}

func (s *PostgresSuite) TestDraftLifecycle() {
	ctx := context.Background()
	doc := &registration.Upload{
		Content:      strings.NewReader("%PDF-1.7"),
		OriginalName: "passport.pdf",
		ContentType:  "application/pdf",
		Size:         8,
	}
	draft, err := s.svc.SaveDraft(ctx, details(), doc)
	s.Require().NoError(err)
	s.Regexp(`^[A-Z2-9]{4}-0885$`, draft.RequestID)

	stored, err := s.svc.GetByRequestID(ctx, draft.RequestID)
	s.Require().NoError(err)
	s.Equal(registration.StatusDraft, stored.Status)
	s.Equal(registration.No, stored.InterestedInOtherProducts)
	s.Require().NotNil(stored.MonthlySalary)
	s.True(stored.MonthlySalary.Equal(decimal.RequireFromString("4200.75")))
	s.Nil(stored.StartingBalance)
	s.Equal("passport.pdf", stored.IDDocument.OriginalName)

	submit := details()
	submit.AccountType = registration.AccountTypeInvestment
	submitted, err := s.svc.SubmitOrRegister(ctx, registrationsvc.ExistingDraft(draft.RequestID), submit, nil)
	s.Require().NoError(err)
	s.Equal(draft.RequestID, submitted.RequestID)

	stored, err = s.svc.GetByRequestID(ctx, draft.RequestID)
	s.Require().NoError(err)
	s.Equal(registration.StatusSubmitted, stored.Status)
	s.Equal(registration.AccountTypeInvestment, stored.AccountType)
	s.Equal(draft.IDDocument.Locator, stored.IDDocument.Locator)
	s.False(stored.UpdatedAt.Before(stored.CreatedAt))

	_, err = s.svc.UpdateDraft(ctx, draft.RequestID, submit, nil)
	s.ErrorIs(err, domain.ErrInvalidState)
}

func (s *PostgresSuite) TestGetUnknown() {
	_, err := s.svc.GetByRequestID(context.Background(), "ZZZZ-0000")
	s.ErrorIs(err, domain.ErrNotFound)
}
