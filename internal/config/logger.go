package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller *bool
	Level  *log.Level
}

func (l *Logger) setDefaults() {
	l.Caller = gosettings.DefaultPointer(l.Caller, false)
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
}

// Validate checks the level, which can be set without being
// parsed from LOG_LEVEL.
func (l Logger) Validate() (err error) {
	switch *l.Level {
	case log.LevelDebug, log.LevelInfo, log.LevelWarn, log.LevelError:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrLogLevelUnknown, *l.Level)
	}
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", l.Level.String())
	caller := "hidden"
	if *l.Caller {
		caller = "short"
	}
	node.Appendf("Caller: %s", caller)
	return node
}

func (l Logger) ToOptions() (options []log.Option) {
	return []log.Option{
		log.SetLevel(*l.Level),
		log.SetCallerFile(*l.Caller),
		log.SetCallerLine(*l.Caller),
	}
}

func (l *Logger) read(reader *reader.Reader) (err error) {
	l.Caller, err = readCaller(reader)
	if err != nil {
		return err
	}

	l.Level, err = readLogLevel(reader)
	if err != nil {
		return err
	}

	return nil
}

func readCaller(reader *reader.Reader) (caller *bool, err error) {
	callerString := reader.String("LOG_CALLER")
	switch callerString {
	case "":
		return nil, nil //nolint:nilnil
	case "hidden":
		return ptrTo(false), nil
	case "short":
		return ptrTo(true), nil
	default:
		err = validate.IsOneOf(callerString, "", "hidden", "short")
		return nil, fmt.Errorf("environment variable LOG_CALLER: %w", err)
	}
}

func readLogLevel(reader *reader.Reader) (level *log.Level, err error) {
	s := reader.String("LOG_LEVEL")
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	level = new(log.Level)
	*level, err = parseLogLevel(s)
	if err != nil {
		return nil, fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}

	return level, nil
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
