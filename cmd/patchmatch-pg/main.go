/*
Package main implements command-line functionality with a PostgreSQL run
archive.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/vigo/patchmatch/internal/app"
	"github.com/vigo/patchmatch/internal/config"
	"github.com/vigo/patchmatch/internal/db/postgresql"
	"github.com/vigo/patchmatch/internal/tlog"
	"github.com/vigo/patchmatch/internal/version"
)

const (
	defaultShowVersion = false
	defaultLogLevel    = "debug"
	defaultLogNoColor  = false
	defaultNoColor     = false
)

func main() {
	vrs := flag.Bool("version", defaultShowVersion, "display version information")
	logLevel := flag.String("loglevel", defaultLogLevel, "log level")
	logNoColor := flag.Bool("lognocolor", defaultLogNoColor, "disable log colors")
	noColor := flag.Bool("nocolor", defaultNoColor, "disable colored progress output")
	configFile := flag.String("config", "", "config file (yaml, toml or json)")
	jamfURL := flag.String("jamf-url", "", "Jamf Pro url, overrides JAMF_URL")
	jamfToken := flag.String("jamf-token", "", "Jamf Pro API bearer token, overrides JAMF_API_TOKEN")
	dsn := flag.String("dsn", "", "PostgreSQL dsn, defaults to DATABASE_URL")
	format := flag.String("format", "", "report format: plain or table")
	flag.Parse()

	if *vrs {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", version.Version)
		return
	}

	if *noColor {
		color.NoColor = true
	}

	logger := tlog.New(*logLevel, *logNoColor)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("load config", "err", err)
		return
	}
	cfg.Apply(config.Overrides{
		JamfURL:   *jamfURL,
		JamfToken: *jamfToken,
		Format:    *format,
	})

	var options []postgresql.Option
	if *dsn != "" {
		options = append(options, postgresql.WithDSN(*dsn))
	}

	dbase, err := postgresql.New(options...)
	if err != nil {
		logger.Error("instantiate db", "err", err)
		return
	}

	defer func() {
		_ = dbase.DB.Close()
	}()

	if err = dbase.InitDB(); err != nil {
		logger.Error("init db", "err", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, cfg, dbase, os.Stdout, logger); err != nil {
		logger.Error("run", "err", err)
		return
	}
}
