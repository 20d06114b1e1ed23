/*
Package jamf implements the Jamf Pro Classic API inventory lookups.
*/
package jamf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/vigo/patchmatch/internal/tlog"
)

const applicationPath = "/JSSResource/computerapplications/application/{application}"

// sentinel errors.
var (
	ErrValueRequired = errors.New("value required")
)

// Client checks software titles against the Jamf inventory.
type Client struct {
	HTTPClient *http.Client
	Output     io.Writer
	Logger     *slog.Logger
	BaseURL    string
	Token      string

	rest *resty.Client
}

// Option represents option function type.
type Option func(*Client) error

// WithBaseURL sets the Jamf Pro server url, e.g. https://acme.jamfcloud.com.
func WithBaseURL(s string) Option {
	return func(c *Client) error {
		s = strings.TrimRight(strings.TrimSpace(s), "/")
		if s == "" {
			return fmt.Errorf("%w, jamf url can not be empty string", ErrValueRequired)
		}

		c.BaseURL = s

		return nil
	}
}

// WithToken sets the bearer token.
func WithToken(s string) Option {
	return func(c *Client) error {
		if s == "" {
			return fmt.Errorf("%w, api token can not be empty string", ErrValueRequired)
		}

		c.Token = s

		return nil
	}
}

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("%w, http client can not be nil", ErrValueRequired)
		}

		c.HTTPClient = hc

		return nil
	}
}

// WithOutput sets where status diagnostics are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Client) error {
		c.Output = w
		return nil
	}
}

// WithLogger sets logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		c.Logger = l
		return nil
	}
}

func (c *Client) setDefaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = tlog.Discard()
	}
}

// New instantiates new Jamf client. Base url and token are required.
func New(options ...Option) (*Client, error) {
	client := new(Client)
	for _, option := range options {
		if err := option(client); err != nil {
			return nil, err
		}
	}

	if client.BaseURL == "" {
		return nil, fmt.Errorf("%w, jamf url", ErrValueRequired)
	}
	if client.Token == "" {
		return nil, fmt.Errorf("%w, api token", ErrValueRequired)
	}

	client.setDefaults()

	client.rest = resty.NewWithClient(client.HTTPClient).
		SetBaseURL(client.BaseURL).
		SetAuthToken(client.Token).
		SetHeader("Accept", "application/xml").
		SetDisableWarn(true)

	return client, nil
}

// HasApplication reports whether title is installed on at least one managed
// computer. Non-200 responses print a diagnostic and report false; transport
// and XML errors are returned.
func (c *Client) HasApplication(ctx context.Context, title string) (bool, error) {
	res, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("application", title+".app").
		Get(applicationPath)
	if err != nil {
		return false, fmt.Errorf("jamf request %q: %w", title, err)
	}

	c.Logger.Debug("jamf response", "title", title, "status", res.StatusCode(), "url", res.Request.URL)

	if res.StatusCode() != http.StatusOK {
		_, _ = fmt.Fprintln(c.Output, StatusMessage(res.StatusCode()))
		return false, nil
	}

	found, err := HasSerialNumber(res.Body())
	if err != nil {
		return false, fmt.Errorf("jamf response %q: %w", title, err)
	}

	return found, nil
}
