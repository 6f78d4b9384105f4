package registration

import (
	"context"
	"time"

	infrarepo "github.com/amirasaad/onboarding/infra/repository"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	registrationrepo "github.com/amirasaad/onboarding/pkg/repository/registration"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns are overwritten when a request id already exists.
// created_at keeps its first value.
var upsertColumns = []string{
	"status", "name", "date_of_birth",
	"street_name", "house_number", "post_code", "city",
	"account_type", "starting_balance", "monthly_salary", "email",
	"interested_in_other_products",
	"file_path", "id_document_name", "id_document_type", "file_size",
	"updated_at",
}

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed registration repository.
func New(db *gorm.DB) registrationrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, rec *registration.AccountRequest) error {
	row := fromDomain(rec)
	// Zero lets GORM stamp the write time on inserts and upserts alike.
	row.UpdatedAt = time.Time{}
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "request_id"}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			}).
			Create(row).Error
	})
	if err != nil {
		return err
	}
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *repository) GetByRequestID(ctx context.Context, requestID string) (*registration.AccountRequest, error) {
	var row AccountRequest
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *repository) ExistsByRequestID(ctx context.Context, requestID string) (bool, error) {
	var count int64
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&AccountRequest{}).Where("request_id = ?", requestID).Count(&count).Error
	})
	return count > 0, err
}
