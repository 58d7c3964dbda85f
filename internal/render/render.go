package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/qdm12/ip-filter/internal/ipv4"
)

// Lines returns the text of each address, in order.
func Lines(addresses []ipv4.Address) (lines []string) {
	lines = make([]string, len(addresses))
	for i, address := range addresses {
		lines[i] = address.String()
	}
	return lines
}

// Write writes one address text per line to w.
func Write(w io.Writer, addresses []ipv4.Address) (err error) {
	buffered := bufio.NewWriter(w)
	for _, line := range Lines(addresses) {
		_, err = buffered.WriteString(line + "\n")
		if err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	err = buffered.Flush()
	if err != nil {
		return fmt.Errorf("flushing lines: %w", err)
	}
	return nil
}
