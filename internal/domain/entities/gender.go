package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGender is returned by ParseGender for names outside the enumeration.
var ErrUnknownGender = errors.New("unknown gender")

// Gender is the administrative gender of a patient. The zero value is GenderUnspecified.
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

// genderNames maps each gender to its display name.
var genderNames = map[Gender]string{
	GenderUnspecified: "unspecified",
	GenderMale:        "male",
	GenderFemale:      "female",
	GenderOther:       "other",
}

// IsValid reports whether g is one of the four declared values.
func (g Gender) IsValid() bool {
	_, ok := genderNames[g]
	return ok
}

func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender returns the gender whose display name matches name, ignoring case.
// An empty name is Unspecified.
func ParseGender(name string) (Gender, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return GenderUnspecified, nil
	}
	for g, n := range genderNames {
		if n == name {
			return g, nil
		}
	}
	return GenderUnspecified, fmt.Errorf("%w: %q", ErrUnknownGender, name)
}
