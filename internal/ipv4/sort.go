package ipv4

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Order uint8

const (
	Unsorted Order = iota
	Ascending
	Descending
)

func (o Order) String() string {
	switch o {
	case Unsorted:
		return "none"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		panic(fmt.Sprintf("unknown order %d", o))
	}
}

var ErrOrderUnknown = errors.New("order is unknown")

func ParseOrder(s string) (order Order, err error) {
	switch strings.ToLower(s) {
	case "none":
		return Unsorted, nil
	case "ascending":
		return Ascending, nil
	case "descending":
		return Descending, nil
	default:
		return order, fmt.Errorf(
			"%w: %q is not valid and can be one of none, ascending or descending",
			ErrOrderUnknown, s)
	}
}

// Sort sorts addresses in place by numeric value. The sort is stable
// so addresses with equal values keep their relative order.
func Sort(addresses []Address, order Order) {
	switch order {
	case Unsorted:
	case Ascending:
		slices.SortStableFunc(addresses, func(a, b Address) int {
			return a.Compare(b)
		})
	case Descending:
		slices.SortStableFunc(addresses, func(a, b Address) int {
			return b.Compare(a)
		})
	default:
		panic(fmt.Sprintf("unknown order %d", order))
	}
}
