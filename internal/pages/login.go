// Package pages wraps each storefront screen as a fixed set of locatable
// elements plus the user-facing operations meaningful on that screen. A page
// is bound to a single screen context at construction and never re-bound.
//
// Pages do not swallow or retry driver failures: an absent or non-actionable
// element surfaces as the driver's own error and aborts the caller's run.
// The one exception is an optional element with a documented default (the
// cart badge, the confirmation header), where absence maps to the default.
package pages

import (
	"context"

	"checkoutflow/internal/screen"
)

// Login wraps the credential entry screen.
type Login struct {
	scr screen.Screen
}

// NewLogin creates a Login page bound to the given screen context.
func NewLogin(scr screen.Screen) *Login {
	return &Login{scr: scr}
}

// Open navigates to the storefront root, where the login form lives.
func (l *Login) Open(ctx context.Context) error {
	return l.scr.Navigate(ctx, "/")
}

// SubmitCredentials fills the username and password fields and triggers
// submission. The only observable effect is a screen transition; the caller
// guards the resulting location.
func (l *Login) SubmitCredentials(ctx context.Context, user, pass string) error {
	if err := l.scr.Locate(SelUsernameField).Fill(ctx, user); err != nil {
		return err
	}
	if err := l.scr.Locate(SelPasswordField).Fill(ctx, pass); err != nil {
		return err
	}
	return l.scr.Locate(SelLoginButton).Click(ctx)
}
