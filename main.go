/*
Package main implements command-line functionality.
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
	"github.com/vigo/patchmatch/internal/db"
	"github.com/vigo/patchmatch/internal/db/sqlite"
	"github.com/vigo/patchmatch/internal/tlog"
	"github.com/vigo/patchmatch/internal/version"
)

const (
	defaultShowVersion = false
	defaultLogLevel    = "info"
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
	format := flag.String("format", "", "report format: plain or table")
	dbFile := flag.String("db", "", "archive matches to this sqlite3 file")
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
		DB:        *dbFile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store db.Manager
	if cfg.DB != "" {
		dbase, errr := sqlite.New(sqlite.WithTargetSqliteFilename(cfg.DB))
		if errr != nil {
			logger.Error("instantiate db", "err", errr)
			return
		}
		defer func() {
			_ = dbase.DB.Close()
		}()

		if errr = dbase.InitDB(); errr != nil {
			logger.Error("init db", "err", errr)
			return
		}
		store = dbase
	}

	if err = app.Run(ctx, cfg, store, os.Stdout, logger); err != nil {
		logger.Error("run", "err", err)
		return
	}
}
