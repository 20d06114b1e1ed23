/*
Package config loads runtime settings from defaults, an optional config file
and the environment.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vigo/patchmatch/internal/catalog"
	"github.com/vigo/patchmatch/internal/httpclient"
	"github.com/vigo/patchmatch/internal/report"
)

const envPrefix = "PATCHMATCH"

// sentinel errors.
var (
	ErrValueRequired = errors.New("value required")
	ErrInvalid       = errors.New("invalid value")
)

// Jamf holds Jamf Pro API settings.
type Jamf struct {
	URL      string        `mapstructure:"url"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Insecure bool          `mapstructure:"insecure"`
}

// Page describes one catalog page and the element its titles live in.
type Page struct {
	URL       string        `mapstructure:"url"`
	ElementID string        `mapstructure:"element_id"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Browser holds headless browser settings.
type Browser struct {
	ExecPath string `mapstructure:"exec_path"`
	Headless bool   `mapstructure:"headless"`
}

// Config is the full runtime configuration.
type Config struct {
	Jamf          Jamf    `mapstructure:"jamf"`
	AppInstallers Page    `mapstructure:"app_installers"`
	Installomator Page    `mapstructure:"installomator"`
	Browser       Browser `mapstructure:"browser"`
	Format        string  `mapstructure:"format"`
	DB            string  `mapstructure:"db"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("jamf.url", "")
	v.SetDefault("jamf.token", "")
	v.SetDefault("jamf.timeout", httpclient.DefaultTimeout)
	v.SetDefault("jamf.insecure", false)

	v.SetDefault("app_installers.url", catalog.DefaultAppInstallersURL)
	v.SetDefault("app_installers.element_id", catalog.DefaultAppInstallersContainerID)
	v.SetDefault("app_installers.timeout", catalog.DefaultWaitTimeout)

	v.SetDefault("installomator.url", catalog.DefaultInstallomatorURL)
	v.SetDefault("installomator.element_id", catalog.DefaultInstallomatorElementID)
	v.SetDefault("installomator.timeout", catalog.DefaultWaitTimeout)

	v.SetDefault("browser.exec_path", "")
	v.SetDefault("browser.headless", true)

	v.SetDefault("format", report.FormatPlain)
	v.SetDefault("db", "")
}

// Load reads the configuration. path may be empty. JAMF_URL and
// JAMF_API_TOKEN are honoured, every other key can be set with the
// PATCHMATCH_ prefix, e.g. PATCHMATCH_INSTALLOMATOR_TIMEOUT=20s.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("jamf.url", "JAMF_URL", envPrefix+"_JAMF_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("jamf.token", "JAMF_API_TOKEN", envPrefix+"_JAMF_TOKEN"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Overrides carries command-line values. Empty fields leave the loaded
// configuration untouched.
type Overrides struct {
	JamfURL   string
	JamfToken string
	Format    string
	DB        string
}

// Apply copies the non-empty overrides onto c.
func (c *Config) Apply(o Overrides) {
	if o.JamfURL != "" {
		c.Jamf.URL = o.JamfURL
	}
	if o.JamfToken != "" {
		c.Jamf.Token = o.JamfToken
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.DB != "" {
		c.DB = o.DB
	}
}

// Validate checks required and bounded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Jamf.URL) == "" {
		return fmt.Errorf("%w, jamf url (JAMF_URL or -jamf-url)", ErrValueRequired)
	}
	if !strings.HasPrefix(c.Jamf.URL, "http://") && !strings.HasPrefix(c.Jamf.URL, "https://") {
		return fmt.Errorf("%w, jamf url '%s' must start with http:// or https://", ErrInvalid, c.Jamf.URL)
	}
	if c.Jamf.Token == "" {
		return fmt.Errorf("%w, jamf api token (JAMF_API_TOKEN or -jamf-token)", ErrValueRequired)
	}
	if !report.ValidFormat(c.Format) {
		return fmt.Errorf("%w, format '%s'", ErrInvalid, c.Format)
	}

	for name, page := range map[string]Page{"app_installers": c.AppInstallers, "installomator": c.Installomator} {
		if page.URL == "" || page.ElementID == "" {
			return fmt.Errorf("%w, %s url and element_id", ErrValueRequired, name)
		}
		if page.Timeout <= 0 {
			return fmt.Errorf("%w, %s timeout '%s' must > 0", ErrInvalid, name, page.Timeout)
		}
	}

	return nil
}
