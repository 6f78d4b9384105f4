// Package registration holds the account-opening request aggregate and its
// lifecycle rules. A request starts as a DRAFT and ends, once, as SUBMITTED.
package registration

import (
	"time"

	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an AccountRequest.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
)

// DocumentCategory is the storage category identity documents are filed under.
const DocumentCategory = "id-documents"

// DateLayout is the wire format for dates of birth (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// Lifecycle errors.
var (
	ErrAlreadySubmitted              = domain.InvalidState("Request has already been submitted")
	ErrCannotUpdateSubmitted         = domain.InvalidState("Cannot update a submitted request")
	ErrDocumentRequiredForSubmission = domain.InvalidInput("ID document is mandatory for submission")
)

// Address is the applicant's postal address.
type Address struct {
	StreetName  string `json:"streetName"`
	HouseNumber string `json:"houseNumber"`
	PostCode    string `json:"postCode"`
	City        string `json:"city"`
}

// IDDocument is the metadata of a stored identity document.
type IDDocument struct {
	Locator      string
	OriginalName string
	MimeType     string
	SizeBytes    int64
}

// Details is the applicant-supplied payload shared by every write operation.
// Pointer, empty string and YesNoUnset values mean "not supplied".
type Details struct {
	Name                      string
	DateOfBirth               time.Time
	Address                   Address
	AccountType               AccountType
	StartingBalance           *decimal.Decimal
	MonthlySalary             *decimal.Decimal
	Email                     string
	InterestedInOtherProducts YesNo
}

// AccountRequest is a single account-opening application.
type AccountRequest struct {
	RequestID                 string
	Status                    Status
	Name                      string
	DateOfBirth               time.Time
	Address                   Address
	AccountType               AccountType
	StartingBalance           *decimal.Decimal
	MonthlySalary             *decimal.Decimal
	Email                     string
	InterestedInOtherProducts YesNo
	IDDocument                *IDDocument
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// New returns an unsaved request populated from d in the given status.
func New(d Details, status Status) *AccountRequest {
	r := &AccountRequest{Status: status}
	r.Apply(d)
	return r
}

// Apply overwrites name, date of birth, address and account type, and sets
// the optional fields only when d supplies them.
func (r *AccountRequest) Apply(d Details) {
	r.Name = d.Name
	r.DateOfBirth = d.DateOfBirth
	r.Address = d.Address
	r.AccountType = d.AccountType
	if d.StartingBalance != nil {
		v := *d.StartingBalance
		r.StartingBalance = &v
	}
	if d.Email != "" {
		r.Email = d.Email
	}
	if d.MonthlySalary != nil {
		v := *d.MonthlySalary
		r.MonthlySalary = &v
	}
	if d.InterestedInOtherProducts != YesNoUnset {
		r.InterestedInOtherProducts = d.InterestedInOtherProducts
	}
}

// IsSubmitted reports whether the request reached its terminal state.
func (r *AccountRequest) IsSubmitted() bool {
	return r.Status == StatusSubmitted
}

// HasDocument reports whether a stored document is attached.
func (r *AccountRequest) HasDocument() bool {
	return r.IDDocument != nil && r.IDDocument.Locator != ""
}

// Clone returns a copy of r that shares no pointers with it.
func (r *AccountRequest) Clone() *AccountRequest {
	if r == nil {
		return nil
	}
	out := *r
	if r.StartingBalance != nil {
		v := *r.StartingBalance
		out.StartingBalance = &v
	}
	if r.MonthlySalary != nil {
		v := *r.MonthlySalary
		out.MonthlySalary = &v
	}
	if r.IDDocument != nil {
		doc := *r.IDDocument
		out.IDDocument = &doc
	}
	return &out
}

// AttachDocument replaces the document metadata. The previously stored
// file, if any, is not removed.
func (r *AccountRequest) AttachDocument(doc IDDocument) {
	r.IDDocument = &doc
}

// EnsureDraft fails when the request can no longer be edited.
func (r *AccountRequest) EnsureDraft() error {
	if r.IsSubmitted() {
		return ErrCannotUpdateSubmitted
	}
	return nil
}

// Submit moves a draft to SUBMITTED. A document must already be attached.
func (r *AccountRequest) Submit() error {
	if r.IsSubmitted() {
		return ErrAlreadySubmitted
	}
	if !r.HasDocument() {
		return ErrDocumentRequiredForSubmission
	}
	r.Status = StatusSubmitted
	return nil
}
