/*
Package report prints the patching coverage listings.
*/
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vigo/patchmatch/internal/titleset"
)

// formats.
const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// headings.
const (
	AppInstallersHeading = "Applications in your mac environment that can have patching automated by Jamf App Installers:"
	InstallomatorHeading = "Applications in your mac environment that can have patching automated by the Installomator script:"
	CommonHeading        = "Applications in your mac environment that can have patching automated by either Jamf App Installers or the Installomator script:"
	NoCommonMessage      = "No titles appeared in both lists."
)

// sentinel errors.
var (
	ErrInvalidFormat = errors.New("invalid report format")
)

// Report holds the three listings. Common is the intersection of the other
// two, computed by the caller.
type Report struct {
	AppInstallers titleset.Set
	Installomator titleset.Set
	Common        titleset.Set
}

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	return format == FormatPlain || format == FormatTable
}

// Write renders r to w in format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case FormatPlain, "":
		return writePlain(w, r)
	case FormatTable:
		return writeTable(w, r)
	default:
		return fmt.Errorf("%w, '%s'", ErrInvalidFormat, format)
	}
}

func writePlain(w io.Writer, r Report) error {
	sections := []struct {
		titles  titleset.Set
		heading string
	}{
		{r.AppInstallers, AppInstallersHeading},
		{r.Installomator, InstallomatorHeading},
	}

	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "\n%s\n", section.heading); err != nil {
			return err
		}
		for _, title := range section.titles.Sorted() {
			if _, err := fmt.Fprintln(w, title); err != nil {
				return err
			}
		}
	}

	common := r.Common
	if common.Len() == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", NoCommonMessage)
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", CommonHeading); err != nil {
		return err
	}
	for _, title := range common.Sorted() {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	return nil
}

func writeTable(w io.Writer, r Report) error {
	common := r.Common

	sections := []struct {
		titles titleset.Set
		name   string
	}{
		{r.AppInstallers, "Jamf App Installers"},
		{r.Installomator, "Installomator"},
		{common, "Both"},
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Catalog", "#", "Application"})

	for _, section := range sections {
		titles := section.titles.Sorted()
		if len(titles) == 0 {
			t.AppendRow(table.Row{section.name, "-", "-"})
			t.AppendSeparator()
			continue
		}
		for i, title := range titles {
			t.AppendRow(table.Row{section.name, i + 1, title})
		}
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d in both", common.Len())})
	t.Render()

	return nil
}
