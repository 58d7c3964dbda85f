// Package filter selects IPv4 addresses matching octet criteria.
// Results are new slices in input order, inputs are never modified.
package filter

import (
	"github.com/qdm12/ip-filter/internal/ipv4"
)

// All returns the addresses for which every octet matches the
// criteria match at the same position.
func All(addresses []ipv4.Address, criteria Criteria) (filtered []ipv4.Address) {
	return keep(addresses, func(address ipv4.Address) bool {
		octets := address.Octets()
		for i, match := range criteria {
			if !match.matches(octets[i]) {
				return false
			}
		}
		return true
	})
}

// Any returns the addresses having at least one octet matching.
// A wildcard match keeps all addresses.
func Any(addresses []ipv4.Address, match Match) (filtered []ipv4.Address) {
	return keep(addresses, func(address ipv4.Address) bool {
		for _, octet := range address.Octets() {
			if match.matches(octet) {
				return true
			}
		}
		return false
	})
}

func keep(addresses []ipv4.Address,
	predicate func(address ipv4.Address) bool) (filtered []ipv4.Address) {
	filtered = make([]ipv4.Address, 0, len(addresses))
	for _, address := range addresses {
		if predicate(address) {
			filtered = append(filtered, address)
		}
	}
	return filtered
}
