package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidate returns a go-playground validator with the registration tags
// registered and JSON names used in error namespaces.
func (v *FieldValidator) NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.Register(validate)
	return validate
}

// Register adds the registration tags (notblank, housenumber, postcode,
// dobformat, pastdate, accounttype, yesno) to validate.
func (v *FieldValidator) Register(validate *validator.Validate) {
	rules := map[string]func(string) bool{
		"notblank":    func(s string) bool { return !blank(s) },
		"housenumber": func(s string) bool { return houseNumberRe.MatchString(s) },
		"postcode":    func(s string) bool { return postCodeRe.MatchString(s) },
		"dobformat": func(s string) bool {
			_, parsed := ParseDate(s)
			return parsed
		},
		"pastdate": func(s string) bool {
			d, parsed := ParseDate(s)
			return !parsed || v.inPast(d)
		},
		"accounttype": func(s string) bool { return v.AccountType(s).Valid },
		"yesno":       func(s string) bool { return v.InterestedInOtherProducts(s).Valid },
	}
	for tag, rule := range rules {
		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
	}
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

var tagMessages = map[string]string{
	"name|required":                   MsgNameRequired,
	"name|notblank":                   MsgNameRequired,
	"streetName|notblank":             MsgStreetRequired,
	"city|notblank":                   MsgCityRequired,
	"dateOfBirth|required":            MsgDOBRequired,
	"dateOfBirth|dobformat":           MsgDOBFormat,
	"dateOfBirth|pastdate":            MsgDOBPast,
	"address|required":                MsgAddressRequired,
	"streetName|required":             MsgStreetRequired,
	"houseNumber|required":            MsgHouseNumberRequired,
	"houseNumber|housenumber":         MsgHouseNumberFormat,
	"postCode|required":               MsgPostCodeRequired,
	"postCode|postcode":               MsgPostCodeFormat,
	"city|required":                   MsgCityRequired,
	"accountType|required":            MsgAccountTypeRequired,
	"accountType|accounttype":         MsgAccountTypeInvalid,
	"startingBalance|gte":             MsgStartingBalance,
	"monthlySalary|gte":               MsgMonthlySalary,
	"email|email":                     MsgEmail,
	"interestedInOtherProducts|yesno": MsgYesNoInvalid,
}

// FieldErrors converts a validator error into a map of field path
// (for example "address.postCode") to message. It returns nil for errors
// that did not come from struct validation.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe.Namespace())] = message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from a namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Field()+"|"+fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
