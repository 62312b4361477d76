package pages

import (
	"context"

	"checkoutflow/internal/screen"
)

// Inventory wraps the catalog screen: the ordered list of purchasable
// entries, the cart badge, and the cart link.
type Inventory struct {
	scr    screen.Screen
	picker IndexPicker
}

// NewInventory creates an Inventory page bound to the given screen context.
// The picker drives random selection; production callers pass a *rand.Rand.
func NewInventory(scr screen.Screen, picker IndexPicker) *Inventory {
	return &Inventory{scr: scr, picker: picker}
}

// CatalogSize returns the number of catalog entries currently rendered.
func (i *Inventory) CatalogSize(ctx context.Context) (int, error) {
	return i.scr.Locate(SelInventoryItem).Count(ctx)
}

// SelectRandom draws min(count, n) distinct catalog positions at random and,
// for each in draw order, reads the entry's display name and clicks its
// add-to-cart control. Returns the names in draw order.
//
// count <= 0 or an empty catalog yields an empty list with no interaction.
func (i *Inventory) SelectRandom(ctx context.Context, count int) ([]string, error) {
	n, err := i.CatalogSize(ctx)
	if err != nil {
		return nil, err
	}

	indices := SampleIndices(i.picker, count, n)
	names := make([]string, 0, len(indices))
	for _, idx := range indices {
		name, err := i.scr.Locate(ItemNameSelector(idx)).Text(ctx)
		if err != nil {
			return nil, err
		}
		if err := i.scr.Locate(ItemAddButtonSelector(idx)).Click(ctx); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// CartBadgeCount returns the cart counter text. The badge is absent when the
// cart is empty; that reads as "0".
func (i *Inventory) CartBadgeCount(ctx context.Context) (string, error) {
	text, err := i.scr.Locate(SelCartBadge).Text(ctx)
	if err != nil {
		if screen.IsElementUnavailable(err) {
			return "0", nil
		}
		return "", err
	}
	return text, nil
}

// OpenCart navigates to the cart screen.
func (i *Inventory) OpenCart(ctx context.Context) error {
	return i.scr.Locate(SelCartLink).Click(ctx)
}
