package registration

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirasaad/onboarding/pkg/domain"
)

// YesNo is a tri-state flag stored and serialized as "Y", "N" or null.
type YesNo uint8

const (
	YesNoUnset YesNo = iota
	Yes
	No
)

// ErrInvalidYesNo is returned when a value is not a recognised yes/no alias.
var ErrInvalidYesNo = domain.InvalidInput("Value must be Y or N (case-insensitive)")

var yesNoAliases = map[string]YesNo{
	"Y": Yes, "YES": Yes, "TRUE": Yes, "1": Yes, "ON": Yes,
	"N": No, "NO": No, "FALSE": No, "0": No, "OFF": No,
}

// ParseYesNo decodes s case-insensitively. Blank input is YesNoUnset.
func ParseYesNo(s string) (YesNo, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return YesNoUnset, nil
	}
	if v, ok := yesNoAliases[s]; ok {
		return v, nil
	}
	return YesNoUnset, ErrInvalidYesNo
}

// YesNoFromBool converts a bool to Yes or No.
func YesNoFromBool(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}

// Bool returns the flag value and whether it is set.
func (v YesNo) Bool() (value, ok bool) {
	switch v {
	case Yes:
		return true, true
	case No:
		return false, true
	default:
		return false, false
	}
}

// String returns "Y", "N" or "" when unset.
func (v YesNo) String() string {
	switch v {
	case Yes:
		return "Y"
	case No:
		return "N"
	default:
		return ""
	}
}

// Value implements driver.Valuer.
func (v YesNo) Value() (driver.Value, error) {
	if v == YesNoUnset {
		return nil, nil
	}
	return v.String(), nil
}

// Scan implements sql.Scanner. Unrecognised stored values are reported as
// data-integrity errors.
func (v *YesNo) Scan(src any) error {
	var s string
	switch t := src.(type) {
	case nil:
		*v = YesNoUnset
		return nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return fmt.Errorf("yesno: unsupported column type %T", src)
	}
	parsed, err := ParseYesNo(s)
	if err != nil {
		return fmt.Errorf("yesno: invalid stored value %q: %w", s, err)
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes Yes as "Y", No as "N" and unset as null.
func (v YesNo) MarshalJSON() ([]byte, error) {
	if v == YesNoUnset {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts null, a bool, or any string alias.
func (v *YesNo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = YesNoUnset
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = YesNoFromBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseYesNo(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
