/*
Package browser manages the headless Chrome instance used to render catalog
pages.
*/
package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chromedp/chromedp"
	"github.com/vigo/patchmatch/internal/tlog"
)

// Browser is a running headless Chrome. Each scrape opens its own tab.
type Browser struct {
	Logger *slog.Logger

	ctx           context.Context
	cancelAlloc   context.CancelFunc
	cancelBrowser context.CancelFunc
	execPath      string
	headless      bool
}

// Option represents option function type.
type Option func(*Browser)

// WithLogger sets logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Browser) {
		b.Logger = l
	}
}

// WithExecPath points to a specific Chrome/Chromium binary.
func WithExecPath(path string) Option {
	return func(b *Browser) {
		b.execPath = path
	}
}

// WithHeadless toggles headless mode, on by default.
func WithHeadless(headless bool) Option {
	return func(b *Browser) {
		b.headless = headless
	}
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if b.execPath != "" {
		opts = append(opts, chromedp.ExecPath(b.execPath))
	}
	return opts
}

// New starts a browser bound to ctx. Callers must Close it.
func New(ctx context.Context, options ...Option) (*Browser, error) {
	b := &Browser{headless: true}
	for _, option := range options {
		option(b)
	}
	if b.Logger == nil {
		b.Logger = tlog.Discard()
	}

	allocatorCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.allocatorOptions()...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			b.Logger.Debug("chromedp", "msg", fmt.Sprintf(format, args...))
		}),
	)

	b.ctx = browserCtx
	b.cancelAlloc = cancelAlloc
	b.cancelBrowser = cancelBrowser

	// first Run launches the process
	if err := chromedp.Run(browserCtx); err != nil {
		b.Close()
		return nil, err
	}

	b.Logger.Debug("browser started", "headless", b.headless)

	return b, nil
}

// Tab opens a new tab. The returned cancel closes it.
func (b *Browser) Tab() (context.Context, context.CancelFunc) {
	return chromedp.NewContext(b.ctx)
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancelBrowser()
	b.cancelAlloc()
}
