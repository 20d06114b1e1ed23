package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vigo/patchmatch/internal/catalog"
)

const appInstallersHTML = `<!DOCTYPE html>
<html>
<body>
  <nav><ul><li>Home</li><li>Docs</li></ul></nav>
  <div id="reference-7022__d3e80" class="section">
    <h2>Software Titles</h2>
    <ul>
      <li>  1Password 8 </li>
      <li>Adobe Acrobat Reader</li>
      <li>
        Google Chrome
      </li>
      <li>   </li>
      <li><p>Microsoft <b>Edge</b></p></li>
    </ul>
  </div>
  <ul><li>Footer</li></ul>
</body>
</html>`

func TestParseSoftwareTitles(t *testing.T) {
	got, err := catalog.ParseSoftwareTitles(strings.NewReader(appInstallersHTML), catalog.DefaultAppInstallersContainerID)
	require.NoError(t, err)

	want := []string{"1Password 8", "Adobe Acrobat Reader", "Google Chrome", "Microsoft Edge"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSoftwareTitles() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSoftwareTitlesMissingContainer(t *testing.T) {
	_, err := catalog.ParseSoftwareTitles(strings.NewReader(appInstallersHTML), "reference-0000")
	require.True(t, errors.Is(err, catalog.ErrSectionNotFound))
}

func TestParseSoftwareTitlesEmptyContainer(t *testing.T) {
	html := `<div id="titles"><p>coming soon</p></div>`
	got, err := catalog.ParseSoftwareTitles(strings.NewReader(html), "titles")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestExtractNames(t *testing.T) {
	script := strings.Join([]string{
		`#!/bin/zsh`,
		`identifier.key = 'name="Firefox"'`,
		`firefoxpkg)`,
		`    name="Firefox"`,
		`    type="pkg"`,
		`    appName="Firefox.app"`,
		`1password8)`,
		`    name="1Password 8"`,
		`zoom)`,
		`    name="zoom.us" # trailing comment "quoted"`,
		`broken)`,
		`    name="no closing quote`,
		`    echo "no marker here"`,
	}, "\n")

	got := catalog.ExtractNames(script)
	want := []string{"Firefox", "1Password 8", "zoom.us", "no closing quote"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNamesOnlyFirstMarkerPerLine(t *testing.T) {
	got := catalog.ExtractNames(`name="First" name="Second"`)
	if diff := cmp.Diff([]string{"First"}, got); diff != "" {
		t.Errorf("ExtractNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Firefox", "Firefox"},
		{"  firefox\t", "Firefox"},
		{"1password 8", "1Password 8"},
		{"zoom.us", "Zoom.Us"},
		{"GOOGLE CHROME", "Google Chrome"},
		{"iTerm2", "Iterm2"},
		{"don't", "Don'T"},
		{"ÉCLAIR", "Éclair"},
		{"straße", "Straße"},
		{"o'neil", "O'Neil"},
		{"\ufb01refox", "\ufb01refox"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, catalog.NormalizeTitle(tt.in))
		})
	}
}

func TestNormalizeNames(t *testing.T) {
	got := catalog.NormalizeNames([]string{"zoom.us", "Firefox", " firefox ", "FIREFOX", "", "  ", "1password 8"})
	want := []string{"1Password 8", "Firefox", "Zoom.Us"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeNames() mismatch (-want +got):\n%s", diff)
	}
}
