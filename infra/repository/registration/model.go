package registration

import (
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/shopspring/decimal"
)

// AccountRequest is the account_requests row. The address and document
// metadata are flattened into the table.
type AccountRequest struct {
	ID                        uint                `gorm:"primaryKey"`
	RequestID                 string              `gorm:"size:9;uniqueIndex;not null"`
	Status                    string              `gorm:"size:16;not null"`
	Name                      string              `gorm:"size:255;not null"`
	DateOfBirth               *time.Time          `gorm:"type:date"`
	StreetName                string              `gorm:"size:255"`
	HouseNumber               string              `gorm:"size:32"`
	PostCode                  string              `gorm:"size:16"`
	City                      string              `gorm:"size:255"`
	AccountType               string              `gorm:"size:16"`
	StartingBalance           decimal.NullDecimal `gorm:"type:decimal(19,2)"`
	MonthlySalary             decimal.NullDecimal `gorm:"type:decimal(19,2)"`
	Email                     string              `gorm:"size:255"`
	InterestedInOtherProducts registration.YesNo  `gorm:"type:varchar(1)"`
	FilePath                  string              `gorm:"size:512"`
	IDDocumentName            string              `gorm:"column:id_document_name;size:255"`
	IDDocumentType            string              `gorm:"column:id_document_type;size:127"`
	FileSize                  int64
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName specifies the table name for the AccountRequest model.
func (AccountRequest) TableName() string {
	return "account_requests"
}

func fromDomain(r *registration.AccountRequest) *AccountRequest {
	m := &AccountRequest{
		RequestID:                 r.RequestID,
		Status:                    string(r.Status),
		Name:                      r.Name,
		StreetName:                r.Address.StreetName,
		HouseNumber:               r.Address.HouseNumber,
		PostCode:                  r.Address.PostCode,
		City:                      r.Address.City,
		AccountType:               string(r.AccountType),
		StartingBalance:           nullDecimal(r.StartingBalance),
		MonthlySalary:             nullDecimal(r.MonthlySalary),
		Email:                     r.Email,
		InterestedInOtherProducts: r.InterestedInOtherProducts,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
	if !r.DateOfBirth.IsZero() {
		dob := r.DateOfBirth
		m.DateOfBirth = &dob
	}
	if doc := r.IDDocument; doc != nil {
		m.FilePath = doc.Locator
		m.IDDocumentName = doc.OriginalName
		m.IDDocumentType = doc.MimeType
		m.FileSize = doc.SizeBytes
	}
	return m
}

func (m *AccountRequest) toDomain() *registration.AccountRequest {
	r := &registration.AccountRequest{
		RequestID: m.RequestID,
		Status:    registration.Status(m.Status),
		Name:      m.Name,
		Address: registration.Address{
			StreetName:  m.StreetName,
			HouseNumber: m.HouseNumber,
			PostCode:    m.PostCode,
			City:        m.City,
		},
		AccountType:               registration.AccountType(m.AccountType),
		StartingBalance:           decimalPtr(m.StartingBalance),
		MonthlySalary:             decimalPtr(m.MonthlySalary),
		Email:                     m.Email,
		InterestedInOtherProducts: m.InterestedInOtherProducts,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
	if m.DateOfBirth != nil {
		r.DateOfBirth = m.DateOfBirth.UTC()
	}
	if m.FilePath != "" {
		r.IDDocument = &registration.IDDocument{
			Locator:      m.FilePath,
			OriginalName: m.IDDocumentName,
			MimeType:     m.IDDocumentType,
			SizeBytes:    m.FileSize,
		}
	}
	return r
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
