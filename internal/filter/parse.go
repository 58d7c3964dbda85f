package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrCriteriaMalformed = errors.New("criteria is malformed")
	ErrMatchMalformed    = errors.New("octet match is malformed")
)

// ParseCriteria parses dot separated octet matches such as "46.70"
// or "*.*.12.11". Missing trailing positions are wildcards.
// If legacyZero is true, a 0 part is a wildcard.
func ParseCriteria(s string, legacyZero bool) (criteria Criteria, err error) {
	parts := strings.Split(s, ".")
	if len(parts) > len(criteria) {
		return criteria, fmt.Errorf("%w: %q has %d parts instead of at most %d",
			ErrCriteriaMalformed, s, len(parts), len(criteria))
	}

	for i, part := range parts {
		criteria[i], err = ParseMatch(part, legacyZero)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: %q: part %d: %w",
				ErrCriteriaMalformed, s, i, err)
		}
	}

	return criteria, nil
}

// ParseMatch parses "*" as a wildcard or a decimal octet value
// as an exact match. If legacyZero is true, "0" is a wildcard.
func ParseMatch(s string, legacyZero bool) (match Match, err error) {
	if s == "*" {
		return Wildcard(), nil
	}

	const base, bitSize = 10, 8
	value, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return match, fmt.Errorf("%w: %q is not * or a number between 0 and 255",
			ErrMatchMalformed, s)
	}

	if legacyZero {
		return LegacyMatch(uint8(value)), nil
	}
	return Exact(uint8(value)), nil
}
