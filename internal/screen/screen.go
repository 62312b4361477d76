// Package screen defines the capability interface the checkout flow uses to
// talk to a live storefront screen. The flow addresses elements exclusively
// through string selectors; the concrete implementation (a real browser
// session or an in-memory fake) is injected at construction time and never
// inspected beyond this interface.
package screen

import (
	"context"
	"regexp"
)

// Element is a handle to a single locatable element on the current screen.
// Handles are cheap and stateless: resolution against the live document
// happens on each operation, not at Locate time.
type Element interface {
	// Fill types text into the element, replacing prior input.
	Fill(ctx context.Context, text string) error

	// Click activates the element.
	Click(ctx context.Context) error

	// Text returns the element's trimmed text content.
	// Returns an ElementUnavailable error when the element is absent.
	Text(ctx context.Context) (string, error)

	// Count returns the number of elements matching the selector.
	// Zero matches is a valid answer, not an error.
	Count(ctx context.Context) (int, error)

	// AllText returns the trimmed text content of every matching element,
	// in document order.
	AllText(ctx context.Context) ([]string, error)
}

// Screen is one live storefront screen context. Each flow run owns exactly
// one Screen; runs never share a handle, which is what makes concurrent runs
// safe without locking.
type Screen interface {
	// Navigate loads the given path relative to the storefront root.
	Navigate(ctx context.Context, path string) error

	// Location returns the current URL-like location of the screen.
	Location(ctx context.Context) (string, error)

	// WaitLocation blocks until the current location matches the pattern
	// or the operation's wait budget is exhausted, in which case it
	// returns a NavigationTimeout error.
	WaitLocation(ctx context.Context, pattern *regexp.Regexp) error

	// Locate returns a handle for the elements matching the selector.
	Locate(selector string) Element
}
