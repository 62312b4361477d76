package testutil

import (
	"context"
	"regexp"
	"strconv"
	"sync"

	"checkoutflow/internal/pages"
	"checkoutflow/internal/screen"
)

// Storefront is an in-memory storefront implementing screen.Screen. It
// models the six-item catalog, the login gate, the cart badge, and the
// two-step checkout, answering exactly the selectors the pages issue.
//
// Knobs exist to force specific guard violations: BadgeOverride fakes a
// wrong cart counter, DropFromCart hides one item on the cart screen,
// Header/Body override the confirmation texts.
type Storefront struct {
	mu sync.Mutex

	// Catalog is the ordered list of item names on the inventory screen.
	Catalog []string

	// User and Pass are the credentials the login gate accepts.
	User string
	Pass string

	// BadgeOverride, when non-empty, is returned as the cart badge text
	// regardless of cart contents.
	BadgeOverride string

	// DropFromCart hides the named item on the cart and overview screens.
	DropFromCart string

	// Header and Body are the confirmation texts.
	Header string
	Body   string

	location string
	typed    map[string]string
	cart     []string
}

// DefaultCatalog is the canonical six-entry inventory.
var DefaultCatalog = []string{
	"Sauce Labs Backpack",
	"Sauce Labs Bike Light",
	"Sauce Labs Bolt T-Shirt",
	"Sauce Labs Fleece Jacket",
	"Sauce Labs Onesie",
	"Test.allTheThings() T-Shirt (Red)",
}

// NewStorefront creates a storefront with the default catalog, credentials,
// and confirmation texts.
func NewStorefront() *Storefront {
	return &Storefront{
		Catalog: append([]string(nil), DefaultCatalog...),
		User:    "standard_user",
		Pass:    "secret_sauce",
		Header:  "Thank you for your order!",
		Body:    "Your order has been dispatched, and will arrive just as fast as the pony can get there!",
		typed:   make(map[string]string),
	}
}

var _ screen.Screen = (*Storefront)(nil)

// Navigate implements screen.Screen.
func (s *Storefront) Navigate(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = path
	return nil
}

// Location implements screen.Screen.
func (s *Storefront) Location(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location, nil
}

// WaitLocation implements screen.Screen. The fake has no asynchronous
// navigation, so an unmatched pattern fails immediately.
func (s *Storefront) WaitLocation(_ context.Context, pattern *regexp.Regexp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pattern.MatchString(s.location) {
		return nil
	}
	return screen.NewNavigationTimeout(pattern.String(), nil)
}

// Locate implements screen.Screen.
func (s *Storefront) Locate(selector string) screen.Element {
	return &storefrontElement{s: s, sel: selector}
}

// CartContents returns the names currently in the cart, in add order.
func (s *Storefront) CartContents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cart...)
}

// Selector shapes for positional inventory elements.
var (
	itemNameRe   = regexp.MustCompile(`^\.inventory_item:nth-child\((\d+)\) \.inventory_item_name$`)
	itemButtonRe = regexp.MustCompile(`^\.inventory_item:nth-child\((\d+)\) button\.btn_inventory$`)
)

type storefrontElement struct {
	s   *Storefront
	sel string
}

func (e *storefrontElement) Fill(_ context.Context, text string) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	switch e.sel {
	case pages.SelUsernameField, pages.SelPasswordField,
		pages.SelFirstNameField, pages.SelLastNameField, pages.SelPostalCodeField:
		e.s.typed[e.sel] = text
		return nil
	}
	return screen.NewElementUnavailable(e.sel, nil)
}

func (e *storefrontElement) Click(_ context.Context) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if m := itemButtonRe.FindStringSubmatch(e.sel); m != nil {
		idx, _ := strconv.Atoi(m[1])
		idx-- // selectors are 1-based
		if idx < 0 || idx >= len(e.s.Catalog) {
			return screen.NewElementUnavailable(e.sel, nil)
		}
		e.s.cart = append(e.s.cart, e.s.Catalog[idx])
		return nil
	}

	switch e.sel {
	case pages.SelLoginButton:
		if e.s.typed[pages.SelUsernameField] == e.s.User && e.s.typed[pages.SelPasswordField] == e.s.Pass {
			e.s.location = "/inventory.html"
		}
		return nil
	case pages.SelCartLink:
		e.s.location = "/cart.html"
		return nil
	case pages.SelCheckoutButton:
		e.s.location = "/checkout-step-one.html"
		return nil
	case pages.SelContinueButton:
		if e.s.typed[pages.SelFirstNameField] != "" &&
			e.s.typed[pages.SelLastNameField] != "" &&
			e.s.typed[pages.SelPostalCodeField] != "" {
			e.s.location = "/checkout-step-two.html"
		}
		return nil
	case pages.SelFinishButton:
		e.s.location = "/checkout-complete.html"
		return nil
	}
	return screen.NewElementUnavailable(e.sel, nil)
}

func (e *storefrontElement) Text(_ context.Context) (string, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if m := itemNameRe.FindStringSubmatch(e.sel); m != nil {
		idx, _ := strconv.Atoi(m[1])
		idx--
		if idx < 0 || idx >= len(e.s.Catalog) {
			return "", screen.NewElementUnavailable(e.sel, nil)
		}
		return e.s.Catalog[idx], nil
	}

	switch e.sel {
	case pages.SelCartBadge:
		if e.s.BadgeOverride != "" {
			return e.s.BadgeOverride, nil
		}
		if len(e.s.cart) == 0 {
			// Badge is not rendered for an empty cart.
			return "", screen.NewElementUnavailable(e.sel, nil)
		}
		return strconv.Itoa(len(e.s.cart)), nil
	case pages.SelCompleteHeader:
		if e.s.location != "/checkout-complete.html" {
			return "", screen.NewElementUnavailable(e.sel, nil)
		}
		return e.s.Header, nil
	case pages.SelCompleteText:
		if e.s.location != "/checkout-complete.html" {
			return "", screen.NewElementUnavailable(e.sel, nil)
		}
		return e.s.Body, nil
	}
	return "", screen.NewElementUnavailable(e.sel, nil)
}

func (e *storefrontElement) Count(context.Context) (int, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	switch e.sel {
	case pages.SelInventoryItem:
		return len(e.s.Catalog), nil
	case pages.SelCartItem:
		return len(e.s.visibleCart()), nil
	}
	return 0, nil
}

func (e *storefrontElement) AllText(context.Context) ([]string, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	switch e.sel {
	case pages.SelCartItemName:
		return e.s.visibleCart(), nil
	}
	return nil, nil
}

// visibleCart returns the cart contents minus any dropped item.
// Callers must hold s.mu.
func (s *Storefront) visibleCart() []string {
	if s.DropFromCart == "" {
		return append([]string(nil), s.cart...)
	}
	out := make([]string, 0, len(s.cart))
	for _, name := range s.cart {
		if name != s.DropFromCart {
			out = append(out, name)
		}
	}
	return out
}
