package pages

import (
	"context"

	"checkoutflow/internal/screen"
)

// Checkout wraps the two-step checkout screens and the order confirmation.
type Checkout struct {
	scr screen.Screen
}

// NewCheckout creates a Checkout page bound to the given screen context.
func NewCheckout(scr screen.Screen) *Checkout {
	return &Checkout{scr: scr}
}

// SubmitDetails fills the shipping detail fields and advances to the
// overview step.
func (c *Checkout) SubmitDetails(ctx context.Context, first, last, postal string) error {
	if err := c.scr.Locate(SelFirstNameField).Fill(ctx, first); err != nil {
		return err
	}
	if err := c.scr.Locate(SelLastNameField).Fill(ctx, last); err != nil {
		return err
	}
	if err := c.scr.Locate(SelPostalCodeField).Fill(ctx, postal); err != nil {
		return err
	}
	return c.scr.Locate(SelContinueButton).Click(ctx)
}

// OverviewItemCount returns the number of line items on the overview step.
func (c *Checkout) OverviewItemCount(ctx context.Context) (int, error) {
	return c.scr.Locate(SelCartItem).Count(ctx)
}

// ConfirmOrder triggers the final order submission.
func (c *Checkout) ConfirmOrder(ctx context.Context) error {
	return c.scr.Locate(SelFinishButton).Click(ctx)
}

// ConfirmationHeader returns the confirmation header text, or "" when the
// header is absent.
func (c *Checkout) ConfirmationHeader(ctx context.Context) (string, error) {
	text, err := c.scr.Locate(SelCompleteHeader).Text(ctx)
	if err != nil {
		if screen.IsElementUnavailable(err) {
			return "", nil
		}
		return "", err
	}
	return text, nil
}

// ConfirmationBody returns the confirmation body text, or "" when absent.
func (c *Checkout) ConfirmationBody(ctx context.Context) (string, error) {
	text, err := c.scr.Locate(SelCompleteText).Text(ctx)
	if err != nil {
		if screen.IsElementUnavailable(err) {
			return "", nil
		}
		return "", err
	}
	return text, nil
}
