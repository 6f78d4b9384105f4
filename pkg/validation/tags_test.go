package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/onboarding/pkg/validation"
)

type address struct {
	StreetName  string `json:"streetName" validate:"required"`
	HouseNumber string `json:"houseNumber" validate:"required,housenumber"`
	PostCode    string `json:"postCode" validate:"required,postcode"`
	City        string `json:"city" validate:"required"`
}

type request struct {
	Name                      string           `json:"name" validate:"required"`
	DateOfBirth               string           `json:"dateOfBirth" validate:"required,dobformat,pastdate"`
	Address                   *address         `json:"address" validate:"required"`
	AccountType               string           `json:"accountType" validate:"required,accounttype"`
	StartingBalance           *decimal.Decimal `json:"startingBalance" validate:"omitempty,gte=0"`
	Email                     string           `json:"email" validate:"omitempty,email"`
	InterestedInOtherProducts string           `json:"interestedInOtherProducts" validate:"omitempty,yesno"`
}

func TestFieldErrors_CollectsEveryViolation(t *testing.T) {
	t.Parallel()
	validate := newValidator().NewValidate()
	negative := decimal.NewFromInt(-5)
	req := request{
		DateOfBirth: "01-01-2030",
		Address: &address{
			StreetName:  "Damrak",
			HouseNumber: "0",
			PostCode:    "1012LG",
			City:        "Amsterdam",
		},
		AccountType:               "Checking",
		StartingBalance:           &negative,
		Email:                     "not-an-email",
		InterestedInOtherProducts: "sometimes",
	}

	err := validate.Struct(req)
	require.Error(t, err)
	got := validation.FieldErrors(err)
	assert.Equal(t, map[string]string{
		"name":                      validation.MsgNameRequired,
		"dateOfBirth":               validation.MsgDOBPast,
		"address.houseNumber":       validation.MsgHouseNumberFormat,
		"address.postCode":          validation.MsgPostCodeFormat,
		"accountType":               validation.MsgAccountTypeInvalid,
		"startingBalance":           validation.MsgStartingBalance,
		"email":                     validation.MsgEmail,
		"interestedInOtherProducts": validation.MsgYesNoInvalid,
	}, got)
}

func TestFieldErrors_MissingAddress(t *testing.T) {
	t.Parallel()
	validate := newValidator().NewValidate()
	err := validate.Struct(request{Name: "Ada", DateOfBirth: "10-12-1815", AccountType: "Current"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"address": validation.MsgAddressRequired}, validation.FieldErrors(err))
}

func TestFieldErrors_Valid(t *testing.T) {
	t.Parallel()
	validate := newValidator().NewValidate()
	zero := decimal.Zero
	err := validate.Struct(request{
		Name:            "Ada",
		DateOfBirth:     "10-12-1815",
		AccountType:     "investment",
		StartingBalance: &zero,
		Address:         &address{StreetName: "St James's Square", HouseNumber: "12", PostCode: "1234 AB", City: "London"},
	})
	assert.NoError(t, err)
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(errors.New("boom")))
}

func TestFieldErrors_PaddedValuesRejected(t *testing.T) {
	t.Parallel()
	validate := newValidator().NewValidate()
	err := validate.Struct(request{
		Name:        "Ada",
		DateOfBirth: " 10-12-1815",
		AccountType: "Savings",
		Address:     &address{StreetName: "Damrak", HouseNumber: " 12", PostCode: "1012 LG ", City: "Amsterdam"},
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"dateOfBirth":         validation.MsgDOBFormat,
		"address.houseNumber": validation.MsgHouseNumberFormat,
		"address.postCode":    validation.MsgPostCodeFormat,
	}, validation.FieldErrors(err))
}
