package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-filter/internal/records"
)

const stdinPath = "-"

type Input struct {
	// File is the path to the input file, "-" being the standard input.
	File         *string
	Column       *uint16
	Delimiter    *byte
	StrictOctets *bool
}

func (i *Input) setDefaults() {
	i.File = gosettings.DefaultPointer(i.File, stdinPath)
	i.Column = gosettings.DefaultPointer(i.Column, 0)
	i.Delimiter = gosettings.DefaultPointer(i.Delimiter, '\t')
	i.StrictOctets = gosettings.DefaultPointer(i.StrictOctets, false)
}

var ErrInputFileNotFound = errors.New("input file not found")

func (i Input) Validate() (err error) {
	if *i.File == stdinPath {
		return nil
	}

	stat, err := os.Stat(*i.File)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrInputFileNotFound, *i.File)
	case err != nil:
		return fmt.Errorf("stating input file: %w", err)
	case stat.IsDir():
		return fmt.Errorf("%w: %s is a directory", ErrInputFileNotFound, *i.File)
	}

	return nil
}

func (i Input) String() string {
	return i.toLinesNode().String()
}

func (i Input) toLinesNode() *gotree.Node {
	node := gotree.New("Input")
	if *i.File == stdinPath {
		node.Appendf("File: standard input")
	} else {
		node.Appendf("File: %s", *i.File)
	}
	node.Appendf("Column: %d", *i.Column)
	node.Appendf("Delimiter: %q", rune(*i.Delimiter))
	node.Appendf("Strict octets: %s", boolToYesNo(*i.StrictOctets))
	return node
}

func (i Input) ToRecordsSettings() records.Settings {
	return records.Settings{
		Column:    int(*i.Column),
		Delimiter: *i.Delimiter,
		Strict:    *i.StrictOctets,
	}
}

func (i *Input) read(reader *reader.Reader) (err error) {
	i.File = reader.Get("INPUT_FILE")

	i.Column, err = reader.Uint16Ptr("INPUT_COLUMN")
	if err != nil {
		return err
	}

	delimiterString := reader.Get("INPUT_DELIMITER")
	if delimiterString != nil {
		i.Delimiter = new(byte)
		*i.Delimiter, err = parseDelimiter(*delimiterString)
		if err != nil {
			return fmt.Errorf("environment variable INPUT_DELIMITER: %w", err)
		}
	}

	i.StrictOctets, err = reader.BoolPtr("STRICT_OCTETS")
	return err
}

var ErrDelimiterNotValid = errors.New("delimiter is not valid")

func parseDelimiter(s string) (delimiter byte, err error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	}

	if len(s) != 1 {
		return 0, fmt.Errorf(`%w: %q must be a single byte, \t, tab or space`,
			ErrDelimiterNotValid, s)
	}
	return s[0], nil
}
