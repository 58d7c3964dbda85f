package config

import (
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-filter/internal/filter"
)

const filterNone = "none"

type Filter struct {
	// All is a comma separated list of criteria such as "1,46.70,*.*.12"
	// each producing the addresses matching all their octets.
	All *string
	// Any is a comma separated list of octet values such as "46"
	// each producing the addresses having the value in any octet.
	Any *string
	// ZeroWildcard makes the octet value 0 match any octet.
	ZeroWildcard *bool
}

func (f *Filter) setDefaults() {
	f.All = gosettings.DefaultPointer(f.All, "1,46.70")
	f.Any = gosettings.DefaultPointer(f.Any, "46")
	f.ZeroWildcard = gosettings.DefaultPointer(f.ZeroWildcard, true)
}

func (f Filter) Validate() (err error) {
	_, err = f.AllCriteria()
	if err != nil {
		return fmt.Errorf("all octets filters: %w", err)
	}

	_, err = f.AnyMatches()
	if err != nil {
		return fmt.Errorf("any octet filters: %w", err)
	}

	return nil
}

// AllCriteria returns the parsed criteria of All, in order.
func (f Filter) AllCriteria() (criteria []filter.Criteria, err error) {
	parts := splitFilters(*f.All)
	criteria = make([]filter.Criteria, len(parts))
	for i, part := range parts {
		criteria[i], err = filter.ParseCriteria(part, *f.ZeroWildcard)
		if err != nil {
			return nil, err
		}
	}
	return criteria, nil
}

// AnyMatches returns the parsed matches of Any, in order.
func (f Filter) AnyMatches() (matches []filter.Match, err error) {
	parts := splitFilters(*f.Any)
	matches = make([]filter.Match, len(parts))
	for i, part := range parts {
		matches[i], err = filter.ParseMatch(part, *f.ZeroWildcard)
		if err != nil {
			return nil, err
		}
	}
	return matches, nil
}

func splitFilters(s string) (parts []string) {
	if s == "" || strings.EqualFold(s, filterNone) {
		return nil
	}
	parts = strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (f Filter) String() string {
	return f.toLinesNode().String()
}

func (f Filter) toLinesNode() *gotree.Node {
	node := gotree.New("Filters")
	node.Appendf("All octets: %s", filtersToString(*f.All))
	node.Appendf("Any octet: %s", filtersToString(*f.Any))
	node.Appendf("Zero as wildcard: %s", boolToYesNo(*f.ZeroWildcard))
	return node
}

func filtersToString(s string) string {
	parts := splitFilters(s)
	if len(parts) == 0 {
		return filterNone
	}
	return strings.Join(parts, ", ")
}

func (f *Filter) read(reader *reader.Reader) (err error) {
	f.All = reader.Get("FILTER_ALL")
	f.Any = reader.Get("FILTER_ANY")
	f.ZeroWildcard, err = reader.BoolPtr("FILTER_ZERO_WILDCARD")
	return err
}
