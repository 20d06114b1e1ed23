/*
Package app wires configuration, browser, Jamf client and report together.
*/
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vigo/patchmatch/internal/browser"
	"github.com/vigo/patchmatch/internal/catalog"
	"github.com/vigo/patchmatch/internal/config"
	"github.com/vigo/patchmatch/internal/db"
	"github.com/vigo/patchmatch/internal/httpclient"
	"github.com/vigo/patchmatch/internal/jamf"
	"github.com/vigo/patchmatch/internal/report"
	"github.com/vigo/patchmatch/internal/scan"
)

// sentinel errors.
var (
	ErrSourceCount = errors.New("exactly two sources required")
)

// Deps are the collaborators of a run.
type Deps struct {
	Checker       scan.Checker
	AppInstallers scan.Source
	Installomator scan.Source
	Store         db.Manager
	Output        io.Writer
	Logger        *slog.Logger
	Format        string
}

// Execute scans both catalogs, prints the report and archives the matches
// when a store is set.
func Execute(ctx context.Context, deps Deps) (*scan.Result, error) {
	scanner, err := scan.New(deps.Checker,
		scan.WithOutput(deps.Output),
		scan.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, err
	}

	result, err := scanner.Run(ctx, deps.AppInstallers, deps.Installomator)
	if err != nil {
		return nil, err
	}
	if len(result.Sources) != 2 {
		return nil, ErrSourceCount
	}

	rep := report.Report{
		AppInstallers: result.Sources[0].Titles,
		Installomator: result.Sources[1].Titles,
		Common:        result.Common(),
	}
	if err = report.Write(scanner.Output, deps.Format, rep); err != nil {
		return nil, err
	}

	if deps.Store != nil {
		if err = db.SaveAll(deps.Store, result.Matches()); err != nil {
			return nil, fmt.Errorf("archive run %s: %w", result.RunID, err)
		}
		scanner.Logger.Info("archived", "run", result.RunID, "matches", len(result.Matches()))
	}

	return result, nil
}

// Run builds the real collaborators from cfg and executes a run.
func Run(ctx context.Context, cfg *config.Config, store db.Manager, out io.Writer, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	hclient, err := httpclient.New(
		httpclient.WithTimeout(cfg.Jamf.Timeout),
		httpclient.WithInsecureSkipVerify(cfg.Jamf.Insecure),
	)
	if err != nil {
		return fmt.Errorf("instantiate http client: %w", err)
	}

	checker, err := jamf.New(
		jamf.WithBaseURL(cfg.Jamf.URL),
		jamf.WithToken(cfg.Jamf.Token),
		jamf.WithHTTPClient(hclient.HTTPClient),
		jamf.WithOutput(out),
		jamf.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("instantiate jamf client: %w", err)
	}

	br, err := browser.New(ctx,
		browser.WithLogger(logger),
		browser.WithExecPath(cfg.Browser.ExecPath),
		browser.WithHeadless(cfg.Browser.Headless),
	)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer br.Close()

	appInstallers := catalog.NewAppInstallers(br, logger)
	appInstallers.Output = out
	appInstallers.URL = cfg.AppInstallers.URL
	appInstallers.ContainerID = cfg.AppInstallers.ElementID
	appInstallers.Timeout = cfg.AppInstallers.Timeout

	installomator := catalog.NewInstallomator(br, logger)
	installomator.URL = cfg.Installomator.URL
	installomator.ElementID = cfg.Installomator.ElementID
	installomator.Timeout = cfg.Installomator.Timeout

	deps := Deps{
		Checker:       checker,
		AppInstallers: appInstallers,
		Installomator: installomator,
		Store:         store,
		Output:        out,
		Logger:        logger,
		Format:        cfg.Format,
	}

	_, err = Execute(ctx, deps)

	return err
}
