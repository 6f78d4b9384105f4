package account

import (
	"encoding/json"
	"strings"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/validation"
	"github.com/shopspring/decimal"
)

// Flag is a yes/no input that accepts a JSON bool or any string alias.
// It is kept as text so an invalid alias surfaces as a field error.
type Flag string

func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(registration.YesNoFromBool(b).String())
		return nil
	}
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*f = ""
		return nil
	}
	*f = Flag(*s)
	return nil
}

// Address is the postal address payload.
type Address struct {
	StreetName  string `json:"streetName" validate:"required,notblank"`
	HouseNumber string `json:"houseNumber" validate:"required,housenumber"`
	PostCode    string `json:"postCode" validate:"required,postcode"`
	City        string `json:"city" validate:"required,notblank"`
}

// DraftRequest is the payload for saving a draft. Only name, date of birth
// and address are mandatory.
type DraftRequest struct {
	Name                      string           `json:"name" validate:"required,notblank"`
	DateOfBirth               string           `json:"dateOfBirth" validate:"required,dobformat,pastdate"`
	Address                   *Address         `json:"address" validate:"required"`
	AccountType               string           `json:"accountType" validate:"omitempty,accounttype"`
	StartingBalance           *decimal.Decimal `json:"startingBalance" validate:"omitempty,gte=0"`
	Email                     string           `json:"email" validate:"omitempty,email"`
	MonthlySalary             *decimal.Decimal `json:"monthlySalary" validate:"omitempty,gte=0"`
	InterestedInOtherProducts Flag             `json:"interestedInOtherProducts" validate:"omitempty,yesno"`
}

// AccountRequest is the payload for registering, updating or submitting.
// It adds a mandatory account type to the draft rules.
type AccountRequest struct {
	Name                      string           `json:"name" validate:"required,notblank"`
	DateOfBirth               string           `json:"dateOfBirth" validate:"required,dobformat,pastdate"`
	Address                   *Address         `json:"address" validate:"required"`
	AccountType               string           `json:"accountType" validate:"required,accounttype"`
	StartingBalance           *decimal.Decimal `json:"startingBalance" validate:"omitempty,gte=0"`
	Email                     string           `json:"email" validate:"omitempty,email"`
	MonthlySalary             *decimal.Decimal `json:"monthlySalary" validate:"omitempty,gte=0"`
	InterestedInOtherProducts Flag             `json:"interestedInOtherProducts" validate:"omitempty,yesno"`
}

func (r *DraftRequest) Details() (registration.Details, error) {
	return details((*AccountRequest)(r))
}

// Details converts validated input into domain values.
func (r *AccountRequest) Details() (registration.Details, error) {
	return details(r)
}

func details(r *AccountRequest) (registration.Details, error) {
	d := registration.Details{
		Name:            strings.TrimSpace(r.Name),
		StartingBalance: r.StartingBalance,
		MonthlySalary:   r.MonthlySalary,
		Email:           strings.TrimSpace(r.Email),
	}
	d.DateOfBirth, _ = validation.ParseDate(r.DateOfBirth)
	if r.Address != nil {
		d.Address = registration.Address{
			StreetName:  strings.TrimSpace(r.Address.StreetName),
			HouseNumber: strings.TrimSpace(r.Address.HouseNumber),
			PostCode:    strings.TrimSpace(r.Address.PostCode),
			City:        strings.TrimSpace(r.Address.City),
		}
	}
	if strings.TrimSpace(r.AccountType) != "" {
		t, err := registration.ParseAccountType(r.AccountType)
		if err != nil {
			return d, err
		}
		d.AccountType = t
	}
	yn, err := registration.ParseYesNo(string(r.InterestedInOtherProducts))
	if err != nil {
		return d, err
	}
	d.InterestedInOtherProducts = yn
	return d, nil
}

// IDDocumentResponse is the public view of an attached document.
type IDDocumentResponse struct {
	DocumentName string `json:"documentName"`
	DocumentType string `json:"documentType"`
	DocumentSize int64  `json:"documentSize"`
}

// AccountResponse is the projection returned by every account endpoint.
type AccountResponse struct {
	RequestID                 string              `json:"requestId"`
	Name                      string              `json:"name"`
	DateOfBirth               *string             `json:"dateOfBirth"`
	IDDocument                *IDDocumentResponse `json:"idDocument"`
	Address                   *Address            `json:"address"`
	AccountType               *string             `json:"accountType"`
	StartingBalance           *decimal.Decimal    `json:"startingBalance"`
	Email                     *string             `json:"email"`
	MonthlySalary             *decimal.Decimal    `json:"monthlySalary"`
	InterestedInOtherProducts registration.YesNo  `json:"interestedInOtherProducts"`
	Status                    string              `json:"status"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewAccountResponse projects a domain request.
func NewAccountResponse(r *registration.AccountRequest) AccountResponse {
	resp := AccountResponse{
		RequestID:                 r.RequestID,
		Name:                      r.Name,
		AccountType:               optional(string(r.AccountType)),
		StartingBalance:           r.StartingBalance,
		Email:                     optional(r.Email),
		MonthlySalary:             r.MonthlySalary,
		InterestedInOtherProducts: r.InterestedInOtherProducts,
		Status:                    string(r.Status),
	}
	if !r.DateOfBirth.IsZero() {
		resp.DateOfBirth = optional(r.DateOfBirth.Format(registration.DateLayout))
	}
	if r.Address != (registration.Address{}) {
		resp.Address = &Address{
			StreetName:  r.Address.StreetName,
			HouseNumber: r.Address.HouseNumber,
			PostCode:    r.Address.PostCode,
			City:        r.Address.City,
		}
	}
	if r.HasDocument() {
		resp.IDDocument = &IDDocumentResponse{
			DocumentName: r.IDDocument.OriginalName,
			DocumentType: r.IDDocument.MimeType,
			DocumentSize: r.IDDocument.SizeBytes,
		}
	}
	return resp
}
