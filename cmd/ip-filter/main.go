package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/ip-filter/internal/config"
	"github.com/qdm12/ip-filter/internal/filter"
	"github.com/qdm12/ip-filter/internal/ipv4"
	"github.com/qdm12/ip-filter/internal/models"
	"github.com/qdm12/ip-filter/internal/records"
	"github.com/qdm12/ip-filter/internal/render"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New(log.SetWriters(os.Stderr))

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	err := _main(ctx, reader, os.Args, os.Stdin, os.Stdout, os.Stderr, logger, buildInfo)
	if err != nil {
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdin io.Reader, stdout, stderr io.Writer, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			_, err = fmt.Fprintln(stdout, buildInfo.VersionString())
			return err
		}
	}

	printSplash(stderr, buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(*config.Input.File, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	recordsLogger := logger.New(log.SetComponent("records"))
	recordsReader := records.New(config.Input.ToRecordsSettings(), recordsLogger)
	addresses, err := recordsReader.Read(ctx, input)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	logger.Info("read " + humanize.Comma(int64(len(addresses))) + " addresses")

	ipv4.Sort(addresses, *config.Sort.Order)
	err = render.Write(stdout, addresses)
	if err != nil {
		return fmt.Errorf("writing sorted addresses: %w", err)
	}

	return writeFiltered(stdout, addresses, config.Filter, logger)
}

func printSplash(w io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:          "qdm12",
		Repository:    "ip-filter",
		Emails:        []string{"quentin.mcgaw@gmail.com"},
		Version:       buildInfo.Version,
		Commit:        buildInfo.Commit,
		BuildDate:     buildInfo.Date,
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(w, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func openInput(path string, stdin io.Reader) (
	input io.Reader, closeInput func(), err error) {
	if path == "-" {
		return stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

func writeFiltered(w io.Writer, addresses []ipv4.Address,
	settings config.Filter, logger log.LeveledLogger) (err error) {
	allCriteria, err := settings.AllCriteria()
	if err != nil {
		return fmt.Errorf("parsing all octets filters: %w", err)
	}

	for _, criteria := range allCriteria {
		filtered := filter.All(addresses, criteria)
		logger.Debug("all octets filter " + criteria.String() + " matched " +
			humanize.Comma(int64(len(filtered))) + " addresses")
		err = render.Write(w, filtered)
		if err != nil {
			return fmt.Errorf("writing addresses matching %s: %w", criteria, err)
		}
	}

	anyMatches, err := settings.AnyMatches()
	if err != nil {
		return fmt.Errorf("parsing any octet filters: %w", err)
	}

	for _, match := range anyMatches {
		filtered := filter.Any(addresses, match)
		logger.Debug("any octet filter " + match.String() + " matched " +
			humanize.Comma(int64(len(filtered))) + " addresses")
		err = render.Write(w, filtered)
		if err != nil {
			return fmt.Errorf("writing addresses with an octet matching %s: %w", match, err)
		}
	}

	return nil
}
