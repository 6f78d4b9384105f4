package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/validation"
	"github.com/stretchr/testify/assert"
)

var fixedNow = func() time.Time { return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC) }

func newValidator() *validation.FieldValidator {
	return validation.NewFieldValidator(validation.WithClock(fixedNow))
}

func TestValidate_Dispatch(t *testing.T) {
	t.Parallel()
	v := newValidator()
	tests := []struct {
		field, value string
		valid        bool
		message      string
	}{
		{"name", "", false, "Name is mandatory"},
		{"NAME", "Ada", true, "Valid"},
		{"dateOfBirth", "", false, "Date of birth is mandatory"},
		{"dateofbirth", "1990-05-15", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", "31-02-1990", true, "Valid"},
		{"dateofbirth", "32-01-1990", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", "15-13-1990", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", "00-05-1990", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", " 15-05-1990", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", "15-05-1990 ", false, "Invalid date format. Use DD-MM-YYYY (e.g., 15-05-1990)"},
		{"dateofbirth", "15-06-2024", false, "Date of birth must be in the past"},
		{"dateofbirth", "16-06-2024", false, "Date of birth must be in the past"},
		{"dateofbirth", "14-06-2024", true, "Valid"},
		{"streetName", " ", false, "Street name is mandatory"},
		{"houseNumber", "", false, "House number is mandatory"},
		{"houseNumber", "123", true, "Valid"},
		{"houseNumber", "45A", true, "Valid"},
		{"houseNumber", "7-1", true, "Valid"},
		{"houseNumber", "123-bis", true, "Valid"},
		{"houseNumber", "0123", false, validation.MsgHouseNumberFormat},
		{"houseNumber", "123456", false, validation.MsgHouseNumberFormat},
		{"houseNumber", " 123", false, validation.MsgHouseNumberFormat},
		{"houseNumber", "123 ", false, validation.MsgHouseNumberFormat},
		{"postCode", "", false, "Post code is mandatory"},
		{"postCode", "1234 AB", true, "Valid"},
		{"postCode", "1234AB", false, validation.MsgPostCodeFormat},
		{"postCode", "1234 A", false, validation.MsgPostCodeFormat},
		{"postCode", " 1234 AB", false, validation.MsgPostCodeFormat},
		{"postCode", "1234 AB ", false, validation.MsgPostCodeFormat},
		{"city", "", false, "City is mandatory"},
		{"accountType", "", false, "Account type is mandatory"},
		{"accountType", "savings", true, "Valid"},
		{"accountType", "Checking", false, "Account type must be one of: Savings, Current, Investment"},
		{"interestedinotherprodcts", "", true, "Valid"},
		{"interestedInOtherProdcts", "yes", true, "Valid"},
		{"interestedinotherprodcts", "maybe", false, "Value must be Y or N (case-insensitive)"},
		{"interestedinotherproducts", "Y", false, "Unknown field: interestedinotherproducts"},
		{"favouriteColour", "blue", false, "Unknown field: favouriteColour"},
	}
	for _, tc := range tests {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			got := v.Validate(tc.field, tc.value)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.message, got.Message)
		})
	}
}

func TestIDDocument(t *testing.T) {
	t.Parallel()
	v := newValidator()
	tests := []struct {
		name   string
		upload *registration.Upload
		want   validation.Result
	}{
		{"missing", nil, validation.Result{Message: validation.MsgDocumentRequired}},
		{"empty", &registration.Upload{Content: strings.NewReader(""), ContentType: "image/png"}, validation.Result{Message: validation.MsgDocumentRequired}},
		{"wrong type", &registration.Upload{Content: strings.NewReader("x"), Size: 1, ContentType: "application/zip"}, validation.Result{Message: validation.MsgDocumentType}},
		{"too big", &registration.Upload{Content: strings.NewReader("x"), Size: validation.MaxDocumentSize + 1, ContentType: "application/pdf"}, validation.Result{Message: validation.MsgDocumentSize}},
		{"at limit", &registration.Upload{Content: strings.NewReader("x"), Size: validation.MaxDocumentSize, ContentType: "image/jpeg"}, validation.Result{Valid: true, Message: "Valid"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.IDDocument(tc.upload))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	d, ok := validation.ParseDate("20-08-1985")
	assert.True(t, ok)
	assert.Equal(t, time.Date(1985, time.August, 20, 0, 0, 0, 0, time.UTC), d)

	_, ok = validation.ParseDate("2-8-1985")
	assert.False(t, ok)
}

func TestParseDate_ClampsDayToEndOfMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want time.Time
	}{
		{"31-02-1990", time.Date(1990, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{"30-02-2000", time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"31-04-1985", time.Date(1985, time.April, 30, 0, 0, 0, 0, time.UTC)},
		{"31-12-1985", time.Date(1985, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, ok := validation.ParseDate(tc.in)
			assert.True(t, ok)
			assert.Equal(t, tc.want, d)
		})
	}
}
