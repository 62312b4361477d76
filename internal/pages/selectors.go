package pages

import "fmt"

// Selectors for every element the flow addresses. These are structural
// selectors keyed on stable ids and class names, not layout position, per
// the storefront's selector stability contract. Exported so test doubles
// can answer the same queries the pages issue.
const (
	// Login screen.
	SelUsernameField = "#user-name"
	SelPasswordField = "#password"
	SelLoginButton   = "#login-button"

	// Inventory screen.
	SelInventoryItem = ".inventory_item"
	SelCartBadge     = ".shopping_cart_badge"
	SelCartLink      = ".shopping_cart_link"

	// Cart screen.
	SelCartItem       = ".cart_item"
	SelCartItemName   = ".cart_item .inventory_item_name"
	SelCheckoutButton = "#checkout"

	// Checkout screens.
	SelFirstNameField  = "#first-name"
	SelLastNameField   = "#last-name"
	SelPostalCodeField = "#postal-code"
	SelContinueButton  = "#continue"
	SelFinishButton    = "#finish"
	SelCompleteHeader  = ".complete-header"
	SelCompleteText    = ".complete-text"
)

// ItemNameSelector addresses the display name of the catalog entry at the
// given zero-based position on the inventory screen.
func ItemNameSelector(index int) string {
	return fmt.Sprintf("%s:nth-child(%d) .inventory_item_name", SelInventoryItem, index+1)
}

// ItemAddButtonSelector addresses the add-to-cart control of the catalog
// entry at the given zero-based position on the inventory screen.
func ItemAddButtonSelector(index int) string {
	return fmt.Sprintf("%s:nth-child(%d) button.btn_inventory", SelInventoryItem, index+1)
}
