package filter

import (
	"strconv"
	"strings"
)

// Match is an optional octet value. The zero value is a wildcard
// matching any octet.
type Match struct {
	value uint8
	set   bool
}

func Wildcard() Match {
	return Match{}
}

func Exact(value uint8) Match {
	return Match{value: value, set: true}
}

// LegacyMatch returns a wildcard for the value 0 and an exact
// match otherwise, so octet 0 cannot be matched.
func LegacyMatch(value uint8) Match {
	if value == 0 {
		return Wildcard()
	}
	return Exact(value)
}

func (m Match) IsWildcard() bool {
	return !m.set
}

// Value returns the octet value to match and false if m is a wildcard.
func (m Match) Value() (value uint8, ok bool) {
	return m.value, m.set
}

func (m Match) matches(octet byte) bool {
	return !m.set || m.value == octet
}

func (m Match) String() string {
	if !m.set {
		return "*"
	}
	return strconv.Itoa(int(m.value))
}

// Criteria holds a match per octet position, most significant first.
// All positions must match for an address to match.
type Criteria [4]Match

// NewCriteria returns criteria with the given matches for the first
// positions, the remaining positions being wildcards.
// It panics if more than 4 matches are given.
func NewCriteria(matches ...Match) (criteria Criteria) {
	if len(matches) > len(criteria) {
		panic("too many matches: " + strconv.Itoa(len(matches)))
	}
	copy(criteria[:], matches)
	return criteria
}

// LegacyCriteria returns criteria where each value is converted
// with LegacyMatch. It panics if more than 4 values are given.
func LegacyCriteria(values ...uint8) (criteria Criteria) {
	matches := make([]Match, len(values))
	for i, value := range values {
		matches[i] = LegacyMatch(value)
	}
	return NewCriteria(matches...)
}

func (c Criteria) IsWildcard() bool {
	for _, match := range c {
		if !match.IsWildcard() {
			return false
		}
	}
	return true
}

func (c Criteria) String() string {
	parts := make([]string, len(c))
	for i, match := range c {
		parts[i] = match.String()
	}
	return strings.Join(parts, ".")
}
