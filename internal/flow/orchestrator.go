// Package flow drives one end-to-end checkout verification run: a strictly
// linear state machine from login to order confirmation, asserting an
// invariant at every state boundary.
//
// A run owns its screen context exclusively. There is no branching, no
// retry, and no compensation: the first unmet guard or unavailable element
// aborts the run, and the outcome is pass/fail atomic from the caller's
// point of view. Multiple runs may execute concurrently as long as each has
// its own screen context and recorder.
package flow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"checkoutflow/internal/pages"
	"checkoutflow/internal/persona"
	"checkoutflow/internal/screen"
)

// State identifies a position in the run's linear state machine.
type State string

// States, in transition order. A run visits a prefix of this sequence and
// stops at the first failure; StateCompleted is the only terminal success.
const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
	StateItemsSelected   State = "items-selected"
	StateCartReview      State = "cart-review"
	StateDetailsEntry    State = "details-entry"
	StateOverview        State = "overview"
	StateCompleted       State = "completed"
)

// Location patterns guarding screen transitions.
var (
	inventoryPattern = regexp.MustCompile(`/inventory\.html$`)
	stepOnePattern   = regexp.MustCompile(`/checkout-step-one\.html$`)
	stepTwoPattern   = regexp.MustCompile(`/checkout-step-two\.html$`)
	completePattern  = regexp.MustCompile(`/checkout-complete\.html$`)
)

// Expected confirmation texts on the completed screen.
const (
	DefaultConfirmationHeader = "Thank you for your order!"
	DefaultDispatchNotice     = "Your order has been dispatched"
)

// PersonSource supplies the checkout identity for a run.
type PersonSource interface {
	Person() persona.Person
}

// Params are the per-run inputs.
type Params struct {
	// Username and Password authenticate the session.
	Username string
	Password string

	// ItemCount is the requested selection size. Values <= 0 yield an
	// empty selection; values above the catalog size clamp to it.
	ItemCount int

	// ExpectedHeader is the exact confirmation header required on the
	// completed screen. Defaults to DefaultConfirmationHeader.
	ExpectedHeader string

	// ExpectedBodyFragment must appear in the confirmation body.
	// Defaults to DefaultDispatchNotice.
	ExpectedBodyFragment string
}

// Run executes one checkout journey against a single screen context.
type Run struct {
	id      string
	scr     screen.Screen
	picker  pages.IndexPicker
	persons PersonSource
	rec     Recorder
	logger  *slog.Logger
	seq     int64

	login     *pages.Login
	inventory *pages.Inventory
	cart      *pages.Cart
	checkout  *pages.Checkout
}

// Option configures a Run.
type Option func(*Run)

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(r *Run) { r.id = id }
}

// WithRecorder sets the event recorder. Defaults to NopRecorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Run) { r.rec = rec }
}

// WithLogger sets the run logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Run) { r.logger = logger }
}

// WithPersons sets the checkout identity source. Defaults to persona.NewGenerator.
func WithPersons(ps PersonSource) Option {
	return func(r *Run) { r.persons = ps }
}

// WithPicker sets the random index source for catalog selection.
// Defaults to a fresh PCG-seeded *rand.Rand.
func WithPicker(p pages.IndexPicker) Option {
	return func(r *Run) { r.picker = p }
}

// NewRun creates a run bound to the given screen context.
func NewRun(scr screen.Screen, opts ...Option) *Run {
	r := &Run{
		scr:     scr,
		rec:     NopRecorder{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		persons: persona.NewGenerator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == "" {
		r.id = NewRunID()
	}
	if r.picker == nil {
		r.picker = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r.login = pages.NewLogin(scr)
	r.inventory = pages.NewInventory(scr, r.picker)
	r.cart = pages.NewCart(scr)
	r.checkout = pages.NewCheckout(scr)
	return r
}

// NewRunID returns a UUIDv7 run identifier, falling back to v4 if the
// monotonic source fails.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the run identifier.
func (r *Run) ID() string {
	return r.id
}

// Execute drives the full journey. On failure the returned Result still
// reflects how far the run got; the error is the first fatal condition.
func (r *Run) Execute(ctx context.Context, p Params) (*Result, error) {
	if p.ExpectedHeader == "" {
		p.ExpectedHeader = DefaultConfirmationHeader
	}
	if p.ExpectedBodyFragment == "" {
		p.ExpectedBodyFragment = DefaultDispatchNotice
	}

	res := &Result{RunID: r.id, State: StateUnauthenticated}
	fail := func(err error) (*Result, error) {
		res.Err = err
		res.Failure = err.Error()
		r.logger.Error("run failed", "run_id", r.id, "state", res.State, "error", err)
		return res, err
	}

	// Unauthenticated -> Authenticated
	if err := r.login.Open(ctx); err != nil {
		return fail(err)
	}
	if err := r.login.SubmitCredentials(ctx, p.Username, p.Password); err != nil {
		return fail(err)
	}
	if err := r.locationGuard(ctx, StateAuthenticated, "inventory-location", inventoryPattern); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateAuthenticated)

	// Authenticated -> ItemsSelected
	n, err := r.inventory.CatalogSize(ctx)
	if err != nil {
		return fail(err)
	}
	added, err := r.inventory.SelectRandom(ctx, p.ItemCount)
	if err != nil {
		return fail(err)
	}
	res.AddedItems = added
	k := clampCount(p.ItemCount, n)
	if err := r.guard(ctx, StateItemsSelected, "selection-size",
		len(added) == k,
		fmt.Sprintf("%d selected names", k),
		fmt.Sprintf("%d selected names", len(added)),
	); err != nil {
		return fail(err)
	}
	badge, err := r.inventory.CartBadgeCount(ctx)
	if err != nil {
		return fail(err)
	}
	if err := r.guard(ctx, StateItemsSelected, "cart-badge",
		badge == strconv.Itoa(k),
		fmt.Sprintf("badge %q", strconv.Itoa(k)),
		fmt.Sprintf("badge %q", badge),
	); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateItemsSelected)

	// ItemsSelected -> CartReview
	if err := r.inventory.OpenCart(ctx); err != nil {
		return fail(err)
	}
	count, err := r.cart.ItemCount(ctx)
	if err != nil {
		return fail(err)
	}
	if err := r.guard(ctx, StateCartReview, "cart-item-count",
		count == k,
		fmt.Sprintf("%d cart items", k),
		fmt.Sprintf("%d cart items", count),
	); err != nil {
		return fail(err)
	}
	names, err := r.cart.ItemNames(ctx)
	if err != nil {
		return fail(err)
	}
	missing := firstMissing(names, added)
	if err := r.guard(ctx, StateCartReview, "cart-contains-selection",
		missing == "",
		"every selected name in cart",
		fmt.Sprintf("missing %q", missing),
	); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateCartReview)

	// CartReview -> DetailsEntry
	if err := r.cart.ProceedToCheckout(ctx); err != nil {
		return fail(err)
	}
	if err := r.locationGuard(ctx, StateDetailsEntry, "checkout-step-one-location", stepOnePattern); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateDetailsEntry)

	// DetailsEntry -> Overview
	person := r.persons.Person()
	if err := r.checkout.SubmitDetails(ctx, person.FirstName, person.LastName, person.PostalCode); err != nil {
		return fail(err)
	}
	if err := r.locationGuard(ctx, StateOverview, "checkout-step-two-location", stepTwoPattern); err != nil {
		return fail(err)
	}
	overview, err := r.checkout.OverviewItemCount(ctx)
	if err != nil {
		return fail(err)
	}
	if err := r.guard(ctx, StateOverview, "overview-item-count",
		overview == k,
		fmt.Sprintf("%d line items", k),
		fmt.Sprintf("%d line items", overview),
	); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateOverview)

	// Overview -> Completed
	if err := r.checkout.ConfirmOrder(ctx); err != nil {
		return fail(err)
	}
	if err := r.locationGuard(ctx, StateCompleted, "checkout-complete-location", completePattern); err != nil {
		return fail(err)
	}
	r.transition(ctx, res, StateCompleted)

	// Completed: confirmation texts.
	header, err := r.checkout.ConfirmationHeader(ctx)
	if err != nil {
		return fail(err)
	}
	if err := r.guard(ctx, StateCompleted, "confirmation-header",
		header == p.ExpectedHeader,
		fmt.Sprintf("header %q", p.ExpectedHeader),
		fmt.Sprintf("header %q", header),
	); err != nil {
		return fail(err)
	}
	body, err := r.checkout.ConfirmationBody(ctx)
	if err != nil {
		return fail(err)
	}
	if err := r.guard(ctx, StateCompleted, "confirmation-body",
		strings.Contains(body, p.ExpectedBodyFragment),
		fmt.Sprintf("body containing %q", p.ExpectedBodyFragment),
		fmt.Sprintf("body %q", body),
	); err != nil {
		return fail(err)
	}

	res.Pass = true
	r.logger.Info("run passed", "run_id", r.id, "items", len(added))
	return res, nil
}

// guard evaluates one boundary invariant, records the outcome, and returns
// a GuardError when it did not hold.
func (r *Run) guard(ctx context.Context, state State, name string, ok bool, expected, actual string) error {
	if ok {
		r.record(ctx, Event{Kind: EventGuard, State: string(state), Guard: name, Outcome: OutcomePass})
		return nil
	}
	r.record(ctx, Event{
		Kind: EventGuard, State: string(state), Guard: name, Outcome: OutcomeFail,
		Detail: fmt.Sprintf("expected %s, got %s", expected, actual),
	})
	return newGuardError(state, name, expected, actual)
}

// locationGuard waits for the screen location to match the pattern and
// records the outcome. An unmatched pattern surfaces as the driver's
// NavigationTimeout, not as a GuardError.
func (r *Run) locationGuard(ctx context.Context, state State, name string, pattern *regexp.Regexp) error {
	if err := r.scr.WaitLocation(ctx, pattern); err != nil {
		r.record(ctx, Event{
			Kind: EventGuard, State: string(state), Guard: name, Outcome: OutcomeFail,
			Detail: err.Error(),
		})
		return err
	}
	r.record(ctx, Event{Kind: EventGuard, State: string(state), Guard: name, Outcome: OutcomePass})
	return nil
}

// transition records entry into the next state.
func (r *Run) transition(ctx context.Context, res *Result, state State) {
	res.State = state
	r.record(ctx, Event{Kind: EventTransition, State: string(state)})
	r.logger.Debug("state entered", "run_id", r.id, "state", state)
}

// record assigns the next sequence number and hands the event to the
// recorder. Recording failures are logged, never fatal.
func (r *Run) record(ctx context.Context, ev Event) {
	r.seq++
	ev.Seq = r.seq
	if err := r.rec.Record(ctx, ev); err != nil {
		r.logger.Warn("trace record failed", "run_id", r.id, "seq", ev.Seq, "error", err)
	}
}

// clampCount maps a requested count onto the catalog: negative requests
// collapse to zero, oversized requests clamp to the catalog size.
func clampCount(count, n int) int {
	if count <= 0 {
		return 0
	}
	if count > n {
		return n
	}
	return count
}

// firstMissing returns the first wanted name not present in have, or ""
// when every wanted name is present.
func firstMissing(have, want []string) string {
	set := make(map[string]struct{}, len(have))
	for _, name := range have {
		set[name] = struct{}{}
	}
	for _, name := range want {
		if _, ok := set[name]; !ok {
			return name
		}
	}
	return ""
}
