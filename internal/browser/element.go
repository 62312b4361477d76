package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"checkoutflow/internal/screen"
)

// element is a selector-addressed handle on the session's current screen.
// Resolution happens per operation, never at Locate time.
type element struct {
	s   *Session
	sel string
}

var _ screen.Element = (*element)(nil)

// Fill implements screen.Element.
func (e *element) Fill(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := e.s.op()
	defer cancel()
	err := chromedp.Run(opCtx,
		chromedp.WaitVisible(e.sel, chromedp.ByQuery),
		chromedp.SendKeys(e.sel, text, chromedp.ByQuery),
	)
	if err != nil {
		return screen.NewElementUnavailable(e.sel, err)
	}
	return nil
}

// Click implements screen.Element.
func (e *element) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := e.s.op()
	defer cancel()
	if err := chromedp.Run(opCtx, chromedp.Click(e.sel, chromedp.ByQuery)); err != nil {
		return screen.NewElementUnavailable(e.sel, err)
	}
	return nil
}

// Text implements screen.Element. The element is polled until present or
// the wait budget runs out; an element that never appears is
// ElementUnavailable, which optional-element callers map to a default.
func (e *element) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opCtx, cancel := e.s.op()
	defer cancel()

	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return el ? el.textContent.trim() : null; })()`,
		e.sel,
	)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		var out *string
		if err := chromedp.Run(opCtx, chromedp.Evaluate(expr, &out)); err != nil {
			return "", screen.NewElementUnavailable(e.sel, err)
		}
		if out != nil {
			return *out, nil
		}
		select {
		case <-opCtx.Done():
			return "", screen.NewElementUnavailable(e.sel, opCtx.Err())
		case <-ticker.C:
		}
	}
}

// Count implements screen.Element. Zero matches is a valid answer, so the
// count is read immediately without waiting for presence.
func (e *element) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	opCtx, cancel := e.s.op()
	defer cancel()

	expr := fmt.Sprintf(`document.querySelectorAll(%q).length`, e.sel)
	var n int
	if err := chromedp.Run(opCtx, chromedp.Evaluate(expr, &n)); err != nil {
		return 0, screen.NewElementUnavailable(e.sel, err)
	}
	return n, nil
}

// AllText implements screen.Element.
func (e *element) AllText(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opCtx, cancel := e.s.op()
	defer cancel()

	expr := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(el => el.textContent.trim())`,
		e.sel,
	)
	var out []string
	if err := chromedp.Run(opCtx, chromedp.Evaluate(expr, &out)); err != nil {
		return nil, screen.NewElementUnavailable(e.sel, err)
	}
	return out, nil
}
