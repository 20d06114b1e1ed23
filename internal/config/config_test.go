package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vigo/patchmatch/internal/catalog"
	"github.com/vigo/patchmatch/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JAMF_URL", "")
	t.Setenv("JAMF_API_TOKEN", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, catalog.DefaultAppInstallersURL, cfg.AppInstallers.URL)
	require.Equal(t, catalog.DefaultAppInstallersContainerID, cfg.AppInstallers.ElementID)
	require.Equal(t, catalog.DefaultInstallomatorURL, cfg.Installomator.URL)
	require.Equal(t, catalog.DefaultInstallomatorElementID, cfg.Installomator.ElementID)
	require.Equal(t, catalog.DefaultWaitTimeout, cfg.Installomator.Timeout)
	require.True(t, cfg.Browser.Headless)
	require.Equal(t, "plain", cfg.Format)

	require.ErrorIs(t, cfg.Validate(), config.ErrValueRequired)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("JAMF_URL", "https://acme.jamfcloud.com")
	t.Setenv("JAMF_API_TOKEN", "tok")
	t.Setenv("PATCHMATCH_INSTALLOMATOR_TIMEOUT", "20s")
	t.Setenv("PATCHMATCH_FORMAT", "table")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "https://acme.jamfcloud.com", cfg.Jamf.URL)
	require.Equal(t, "tok", cfg.Jamf.Token)
	require.Equal(t, 20*time.Second, cfg.Installomator.Timeout)
	require.Equal(t, "table", cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("JAMF_URL", "")
	t.Setenv("JAMF_API_TOKEN", "")

	path := filepath.Join(t.TempDir(), "patchmatch.yaml")
	content := `jamf:
  url: https://mdm.example.com:8443
  token: from-file
  insecure: true
app_installers:
  timeout: 15s
db: result.sqlite3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "https://mdm.example.com:8443", cfg.Jamf.URL)
	require.Equal(t, "from-file", cfg.Jamf.Token)
	require.True(t, cfg.Jamf.Insecure)
	require.Equal(t, 15*time.Second, cfg.AppInstallers.Timeout)
	require.Equal(t, catalog.DefaultAppInstallersURL, cfg.AppInstallers.URL)
	require.Equal(t, "result.sqlite3", cfg.DB)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := &config.Config{
		Jamf:   config.Jamf{URL: "https://from-env.example.com", Token: "env-token"},
		Format: "plain",
		DB:     "env.sqlite3",
	}

	cfg.Apply(config.Overrides{})
	require.Equal(t, "https://from-env.example.com", cfg.Jamf.URL)
	require.Equal(t, "env-token", cfg.Jamf.Token)
	require.Equal(t, "plain", cfg.Format)
	require.Equal(t, "env.sqlite3", cfg.DB)

	cfg.Apply(config.Overrides{
		JamfURL:   "https://from-flag.example.com",
		JamfToken: "flag-token",
		Format:    "table",
	})
	require.Equal(t, "https://from-flag.example.com", cfg.Jamf.URL)
	require.Equal(t, "flag-token", cfg.Jamf.Token)
	require.Equal(t, "table", cfg.Format)
	require.Equal(t, "env.sqlite3", cfg.DB)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Jamf:          config.Jamf{URL: "https://acme.jamfcloud.com", Token: "t"},
			AppInstallers: config.Page{URL: "https://a", ElementID: "a", Timeout: time.Second},
			Installomator: config.Page{URL: "https://b", ElementID: "b", Timeout: time.Second},
			Format:        "plain",
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Jamf.URL = "acme.jamfcloud.com"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = valid()
	cfg.Jamf.Token = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrValueRequired)

	cfg = valid()
	cfg.Format = "csv"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = valid()
	cfg.Installomator.Timeout = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = valid()
	cfg.AppInstallers.ElementID = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrValueRequired)
}
