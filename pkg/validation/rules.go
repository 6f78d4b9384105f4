// Package validation holds the field rules for account requests. The same
// rules back real-time single-field checks and request DTO validation.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// MaxDocumentSize is the largest identity document accepted, in bytes.
const MaxDocumentSize int64 = 10 << 20

const validMessage = "Valid"

// Messages returned by the field rules.
const (
	MsgNameRequired        = "Name is mandatory"
	MsgDOBRequired         = "Date of birth is mandatory"
	MsgDOBFormat           = "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"
	MsgDOBPast             = "Date of birth must be in the past"
	MsgAddressRequired     = "Address is mandatory"
	MsgStreetRequired      = "Street name is mandatory"
	MsgHouseNumberRequired = "House number is mandatory"
	MsgHouseNumberFormat   = "House number must be a valid house number (e.g., 123, 45A, 7-1, 123-bis)"
	MsgPostCodeRequired    = "Post code is mandatory"
	MsgPostCodeFormat      = "Post code must be 4 digits followed by space and 2 alphabets (e.g., 1234 AB)"
	MsgCityRequired        = "City is mandatory"
	MsgAccountTypeRequired = "Account type is mandatory"
	MsgAccountTypeInvalid  = "Account type must be one of: Savings, Current, Investment"
	MsgYesNoInvalid        = "Value must be Y or N (case-insensitive)"
	MsgDocumentRequired    = "ID document is mandatory"
	MsgDocumentType        = "ID document must be an image (JPG, PNG) or PDF"
	MsgDocumentSize        = "ID document must be less than 10MB"
	MsgStartingBalance     = "Starting balance must be greater than or equal to 0"
	MsgMonthlySalary       = "Monthly salary must be greater than or equal to 0"
	MsgEmail               = "Email must be valid"
)

var (
	houseNumberRe = regexp.MustCompile(`^[1-9][0-9]{0,4}([A-Za-z])?(-[A-Za-z0-9]+)?$`)
	postCodeRe    = regexp.MustCompile(`^[0-9]{4}\s[A-Za-z]{2}$`)
	dateRe        = regexp.MustCompile(`^([0-9]{2})-([0-9]{2})-([0-9]{4})$`)
)

// Result is the outcome of a single field check.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func ok() Result { return Result{Valid: true, Message: validMessage} }

func fail(msg string) Result { return Result{Message: msg} }

// ParseDate parses a DD-MM-YYYY date in UTC. The value is matched as given,
// surrounding whitespace included. A day past the end of its month but no
// later than 31 resolves to the month's last day, so 31-02-1990 is 28-02-1990.
func ParseDate(s string) (time.Time, bool) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// daysIn returns the number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FieldValidator applies the field rules. It has no side effects; the clock
// is only read to decide whether a date lies in the past.
type FieldValidator struct {
	now func() time.Time
}

// Option configures a FieldValidator.
type Option func(*FieldValidator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(v *FieldValidator) { v.now = now }
}

// NewFieldValidator returns a FieldValidator using the wall clock.
func NewFieldValidator(opts ...Option) *FieldValidator {
	v := &FieldValidator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (v *FieldValidator) Name(value string) Result {
	if blank(value) {
		return fail(MsgNameRequired)
	}
	return ok()
}

func (v *FieldValidator) DateOfBirth(value string) Result {
	if blank(value) {
		return fail(MsgDOBRequired)
	}
	dob, parsed := ParseDate(value)
	if !parsed {
		return fail(MsgDOBFormat)
	}
	if !v.inPast(dob) {
		return fail(MsgDOBPast)
	}
	return ok()
}

// inPast reports whether d is strictly before today.
func (v *FieldValidator) inPast(d time.Time) bool {
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

func (v *FieldValidator) StreetName(value string) Result {
	if blank(value) {
		return fail(MsgStreetRequired)
	}
	return ok()
}

func (v *FieldValidator) HouseNumber(value string) Result {
	if blank(value) {
		return fail(MsgHouseNumberRequired)
	}
	if !houseNumberRe.MatchString(value) {
		return fail(MsgHouseNumberFormat)
	}
	return ok()
}

func (v *FieldValidator) PostCode(value string) Result {
	if blank(value) {
		return fail(MsgPostCodeRequired)
	}
	if !postCodeRe.MatchString(value) {
		return fail(MsgPostCodeFormat)
	}
	return ok()
}

func (v *FieldValidator) City(value string) Result {
	if blank(value) {
		return fail(MsgCityRequired)
	}
	return ok()
}

func (v *FieldValidator) AccountType(value string) Result {
	if blank(value) {
		return fail(MsgAccountTypeRequired)
	}
	if _, err := registration.ParseAccountType(value); err != nil {
		return fail(MsgAccountTypeInvalid)
	}
	return ok()
}

// InterestedInOtherProducts accepts blank input.
func (v *FieldValidator) InterestedInOtherProducts(value string) Result {
	if _, err := registration.ParseYesNo(value); err != nil {
		return fail(MsgYesNoInvalid)
	}
	return ok()
}

// IDDocument checks presence, type and size of an upload.
func (v *FieldValidator) IDDocument(u *registration.Upload) Result {
	if u.Empty() {
		return fail(MsgDocumentRequired)
	}
	if !registration.AcceptedDocumentType(u.ContentType) {
		return fail(MsgDocumentType)
	}
	if u.Size > MaxDocumentSize {
		return fail(MsgDocumentSize)
	}
	return ok()
}

// Validate dispatches on a case-insensitive field key. The key for the
// products flag is "interestedinotherprodcts"; clients depend on it.
func (v *FieldValidator) Validate(field, value string) Result {
	switch strings.ToLower(field) {
	case "name":
		return v.Name(value)
	case "dateofbirth":
		return v.DateOfBirth(value)
	case "streetname":
		return v.StreetName(value)
	case "housenumber":
		return v.HouseNumber(value)
	case "postcode":
		return v.PostCode(value)
	case "city":
		return v.City(value)
	case "accounttype":
		return v.AccountType(value)
	case "interestedinotherprodcts":
		return v.InterestedInOtherProducts(value)
	default:
		return fail("Unknown field: " + field)
	}
}
