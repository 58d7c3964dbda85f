package ipv4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedAddress = errors.New("malformed IPv4 address")
	ErrSegmentsCount    = errors.New("dot separated segments count is not 4")
	ErrSegmentNotNumber = errors.New("segment is not a decimal number")
	ErrOctetOutOfRange  = errors.New("octet value is larger than 255")
)

// Parse parses a dotted decimal IPv4 address.
// Each of the four segments must be a decimal number fitting in 32 bits.
// Segment values larger than 255 are narrowed to their lowest 8 bits, so
// "67.232.81.299" parses as 67.232.81.43. Use ParseStrict to reject them.
// Errors returned all wrap ErrMalformedAddress and one of ErrSegmentsCount
// or ErrSegmentNotNumber.
func Parse(s string) (address Address, err error) {
	return parse(s, false)
}

// ParseStrict is like Parse but fails with an error wrapping
// ErrOctetOutOfRange for segment values larger than 255.
func ParseStrict(s string) (address Address, err error) {
	return parse(s, true)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Address {
	address, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return address
}

func parse(s string, strict bool) (address Address, err error) {
	segments := strings.Split(s, ".")
	if len(segments) != octetsCount {
		return address, fmt.Errorf("%w: %w: %q has %d segments",
			ErrMalformedAddress, ErrSegmentsCount, s, len(segments))
	}

	var octets [octetsCount]byte
	for i, segment := range segments {
		const base, bitSize = 10, 32
		value, err := strconv.ParseUint(segment, base, bitSize)
		if err != nil {
			return address, fmt.Errorf("%w: %w: segment %d %q of %q",
				ErrMalformedAddress, ErrSegmentNotNumber, i, segment, s)
		}

		const maxOctet = 255
		if strict && value > maxOctet {
			return address, fmt.Errorf("%w: %w: segment %d has value %d in %q",
				ErrMalformedAddress, ErrOctetOutOfRange, i, value, s)
		}
		octets[i] = byte(value) //nolint:gosec
	}

	return newAddress(octets, s), nil
}
