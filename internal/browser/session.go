// Package browser adapts a headless Chrome session, driven through
// chromedp, to the screen capability the checkout flow consumes. The flow
// never depends on chromedp directly; everything goes through
// screen.Screen and screen.Element.
package browser

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"checkoutflow/internal/screen"
)

// Options configure a browser session.
type Options struct {
	// BaseURL is the storefront root; Navigate paths are resolved
	// against it.
	BaseURL string

	// ChromePath overrides Chrome binary detection.
	ChromePath string

	// Headless controls whether the browser runs without a window.
	Headless bool

	// OpTimeout bounds each individual screen operation. Exceeding it
	// converts into ElementUnavailable or NavigationTimeout, same as any
	// other driver failure. Defaults to 10s.
	OpTimeout time.Duration
}

// Session is one live browser tab bound to a storefront. Each flow run owns
// exactly one Session; Sessions are not safe for concurrent use.
type Session struct {
	baseURL   string
	opTimeout time.Duration

	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

var _ screen.Screen = (*Session)(nil)

// NewSession launches a browser tab. The browser starts eagerly so that a
// missing or broken Chrome install fails construction, not the first
// screen operation. Callers must Close the session.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("browser: base URL is required")
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = 10 * time.Second
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required when running in containers
	)
	if path := detectChromePath(opts.ChromePath); path != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(path))
	}
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("browser: starting chrome: %w", err)
	}

	return &Session{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		opTimeout:   opts.OpTimeout,
		ctx:         tabCtx,
		cancel:      tabCancel,
		allocCancel: allocCancel,
	}, nil
}

// Close releases the tab and the browser process.
func (s *Session) Close() {
	s.cancel()
	s.allocCancel()
}

// op derives a per-operation context with the session's wait budget.
func (s *Session) op() (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, s.opTimeout)
}

// Navigate implements screen.Screen.
func (s *Session) Navigate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := s.op()
	defer cancel()
	if err := chromedp.Run(opCtx, chromedp.Navigate(s.baseURL+path)); err != nil {
		return screen.NewNavigationTimeout(path, err)
	}
	return nil
}

// Location implements screen.Screen.
func (s *Session) Location(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opCtx, cancel := s.op()
	defer cancel()
	var loc string
	if err := chromedp.Run(opCtx, chromedp.Location(&loc)); err != nil {
		return "", screen.NewNavigationTimeout("location", err)
	}
	return loc, nil
}

// WaitLocation implements screen.Screen. The current location is polled
// until it matches the pattern or the wait budget runs out.
func (s *Session) WaitLocation(ctx context.Context, pattern *regexp.Regexp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := s.op()
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		var loc string
		if err := chromedp.Run(opCtx, chromedp.Location(&loc)); err != nil {
			return screen.NewNavigationTimeout(pattern.String(), err)
		}
		if pattern.MatchString(loc) {
			return nil
		}
		select {
		case <-opCtx.Done():
			return screen.NewNavigationTimeout(pattern.String(), opCtx.Err())
		case <-ticker.C:
		}
	}
}

// Locate implements screen.Screen.
func (s *Session) Locate(selector string) screen.Element {
	return &element{s: s, sel: selector}
}
