/*
Package catalog scrapes the automated-patching catalogs for application
names.

Two catalogs are supported: the Jamf App Installers documentation page and
the Installomator script as rendered by GitHub's source viewer. Both pages
need JavaScript, so they are loaded in a headless browser tab.
*/
package catalog

import (
	"context"
	"errors"
	"time"
)

// defaults.
const (
	DefaultAppInstallersURL         = "https://learn.jamf.com/bundle/jamf-app-catalog/page/App_Installers_Software_Titles.html"
	DefaultAppInstallersContainerID = "reference-7022__d3e80"
	DefaultInstallomatorURL         = "https://github.com/Installomator/Installomator/blob/main/Installomator.sh"
	DefaultInstallomatorElementID   = "read-only-cursor-text-area"
	DefaultWaitTimeout              = 10 * time.Second
)

// sentinel errors.
var (
	ErrSectionNotFound = errors.New("software titles section not found")
	ErrValueRequired   = errors.New("value required")
)

// Tabber opens browser tabs. The returned cancel func closes the tab.
type Tabber interface {
	Tab() (context.Context, context.CancelFunc)
}
