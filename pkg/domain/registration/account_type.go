package registration

import (
	"strings"

	"github.com/amirasaad/onboarding/pkg/domain"
)

// AccountType is the product an applicant wants to open.
type AccountType string

const (
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCurrent    AccountType = "CURRENT"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// ErrUnknownAccountType is returned by ParseAccountType.
var ErrUnknownAccountType = domain.InvalidInput("Account type must be one of: Savings, Current, Investment")

var accountTypes = []AccountType{AccountTypeSavings, AccountTypeCurrent, AccountTypeInvestment}

// AccountTypes returns every supported account type in declaration order.
func AccountTypes() []AccountType {
	out := make([]AccountType, len(accountTypes))
	copy(out, accountTypes)
	return out
}

// ParseAccountType matches s against the supported types ignoring case and
// surrounding whitespace.
func ParseAccountType(s string) (AccountType, error) {
	s = strings.TrimSpace(s)
	for _, t := range accountTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", ErrUnknownAccountType
}

func (t AccountType) String() string { return string(t) }
