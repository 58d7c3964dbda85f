package ipv4

import (
	"fmt"
	"net/netip"
)

const octetsCount = 4

// Address is a parsed IPv4 address keeping the text it was parsed from.
// The zero value is the address 0.0.0.0 with an empty text.
type Address struct {
	octets [octetsCount]byte
	value  uint32
	text   string
}

func newAddress(octets [octetsCount]byte, text string) Address {
	return Address{
		octets: octets,
		value: uint32(octets[0])<<24 | uint32(octets[1])<<16 |
			uint32(octets[2])<<8 | uint32(octets[3]),
		text: text,
	}
}

// Octet returns the octet at index, 0 being the most significant one.
// It panics if index is not in the range [0, 3].
func (a Address) Octet(index int) byte {
	if index < 0 || index >= octetsCount {
		panic(fmt.Sprintf("octet index %d out of range [0, %d]", index, octetsCount-1))
	}
	return a.octets[index]
}

// Octets returns a copy of the four octets, most significant first.
func (a Address) Octets() [4]byte {
	return a.octets
}

// Uint32 returns the address as a big endian 32 bit unsigned integer.
func (a Address) Uint32() uint32 {
	return a.value
}

// String returns the text the address was parsed from, as is.
// For example "1.2.3.004" is returned unchanged.
func (a Address) String() string {
	return a.text
}

// Addr returns the address as a netip.Addr built from its octets.
func (a Address) Addr() netip.Addr {
	return netip.AddrFrom4(a.octets)
}

// Compare returns -1, 0 or 1 if a is numerically lower, equal
// or greater than other. The parsed texts are not compared.
func (a Address) Compare(other Address) int {
	switch {
	case a.value < other.value:
		return -1
	case a.value > other.value:
		return 1
	default:
		return 0
	}
}

func (a Address) Less(other Address) bool {
	return a.value < other.value
}

// Equal returns true if both addresses have the same numeric value,
// even if their texts differ such as "1.2.3.4" and "1.2.3.004".
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}
