// Package records reads IPv4 addresses from a column of delimited text rows.
package records

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qdm12/ip-filter/internal/fields"
	"github.com/qdm12/ip-filter/internal/ipv4"
)

type Settings struct {
	// Column is the zero based index of the field holding the address.
	Column int
	// Delimiter separates the fields of a row.
	Delimiter byte
	// Strict rejects octet values larger than 255 instead of
	// keeping their lowest 8 bits.
	Strict bool
}

type Reader struct {
	column    int
	delimiter byte
	parse     func(s string) (ipv4.Address, error)
	logger    Logger
}

func New(settings Settings, logger Logger) *Reader {
	parse := ipv4.Parse
	if settings.Strict {
		parse = ipv4.ParseStrict
	}
	return &Reader{
		column:    settings.Column,
		delimiter: settings.Delimiter,
		parse:     parse,
		logger:    logger,
	}
}

// Read reads rows from input until its end or until an empty row.
// Rows have no length limit. Rows without the address column or with
// a malformed address are logged and skipped.
func (r *Reader) Read(ctx context.Context, input io.Reader) (
	addresses []ipv4.Address, err error) {
	addresses = make([]ipv4.Address, 0)
	buffered := bufio.NewReader(input)
	lineNumber := 0
	for {
		line, readErr := buffered.ReadString('\n')
		endOfInput := errors.Is(readErr, io.EOF)
		switch {
		case readErr != nil && !endOfInput:
			return nil, fmt.Errorf("reading line %d: %w", lineNumber+1, readErr)
		case endOfInput && line == "":
			return addresses, nil
		}

		err = ctx.Err()
		if err != nil {
			return nil, err
		}

		lineNumber++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			return addresses, nil
		}

		address, ok := r.parseLine(line, lineNumber)
		if ok {
			addresses = append(addresses, address)
		}

		if endOfInput {
			return addresses, nil
		}
	}
}

func (r *Reader) parseLine(line string, lineNumber int) (
	address ipv4.Address, ok bool) {
	rowFields := fields.Split(line, r.delimiter)
	if r.column >= len(rowFields) {
		r.logger.Debug("line " + strconv.Itoa(lineNumber) + ": has " +
			strconv.Itoa(len(rowFields)) + " fields, skipping it")
		return address, false
	}

	address, err := r.parse(rowFields[r.column])
	if err != nil {
		r.logger.Warn("line " + strconv.Itoa(lineNumber) + ": " + err.Error())
		return address, false
	}
	return address, true
}
