package pages

import (
	"context"

	"checkoutflow/internal/screen"
)

// Cart wraps the cart review screen.
type Cart struct {
	scr screen.Screen
}

// NewCart creates a Cart page bound to the given screen context.
func NewCart(scr screen.Screen) *Cart {
	return &Cart{scr: scr}
}

// ItemNames returns the names of the items currently shown, in render order.
func (c *Cart) ItemNames(ctx context.Context) ([]string, error) {
	return c.scr.Locate(SelCartItemName).AllText(ctx)
}

// ItemCount returns the number of line items currently shown.
func (c *Cart) ItemCount(ctx context.Context) (int, error) {
	return c.scr.Locate(SelCartItem).Count(ctx)
}

// ProceedToCheckout triggers navigation to the first checkout step.
func (c *Cart) ProceedToCheckout(ctx context.Context) error {
	return c.scr.Locate(SelCheckoutButton).Click(ctx)
}
