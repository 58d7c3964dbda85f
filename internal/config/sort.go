package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-filter/internal/ipv4"
)

type Sort struct {
	Order *ipv4.Order
}

func (s *Sort) setDefaults() {
	s.Order = gosettings.DefaultPointer(s.Order, ipv4.Descending)
}

// Validate checks the order, which can be set without being
// parsed from SORT_ORDER.
func (s Sort) Validate() (err error) {
	switch *s.Order {
	case ipv4.Unsorted, ipv4.Ascending, ipv4.Descending:
		return nil
	default:
		return fmt.Errorf("%w: %d", ipv4.ErrOrderUnknown, *s.Order)
	}
}

func (s Sort) String() string {
	return s.toLinesNode().String()
}

func (s Sort) toLinesNode() *gotree.Node {
	return gotree.New("Sort order: " + s.Order.String())
}

func (s *Sort) read(reader *reader.Reader) (err error) {
	orderString := reader.Get("SORT_ORDER")
	if orderString == nil {
		return nil
	}

	s.Order = new(ipv4.Order)
	*s.Order, err = ipv4.ParseOrder(*orderString)
	if err != nil {
		return fmt.Errorf("environment variable SORT_ORDER: %w", err)
	}
	return nil
}
