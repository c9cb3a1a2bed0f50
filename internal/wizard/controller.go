// Package wizard implements the kiosk transfer wizard: the step state
// machine, the keypad field editors, the transfer calculator and session
// reset. It is UI agnostic; presentation layers read Snapshot and drive the
// controller through its operations.
package wizard

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/rs/xid"
	"github.com/shopspring/decimal"
)

// Directory is the beneficiary directory the Beneficiary step selects from.
type Directory interface {
	Beneficiaries() []directory.Beneficiary
	Lookup(id string) (directory.Beneficiary, bool)
}

// Options configures a Controller.
type Options struct {
	Fee             decimal.Decimal
	BaseCurrency    string
	DefaultCurrency string
	AmountMaxLen    int
	KioskID         string

	// Optional overrides, mainly for tests.
	NewSessionID func() string
	NewReference func() string
	Now          func() time.Time
}

// Receipt records a sent transfer.
type Receipt struct {
	Reference string
	SessionID string
	KioskID   string
	Summary   Summary
	SentAt    time.Time
}

// Ticket identifies one scheduled OTP auto-advance. A ticket goes stale as
// soon as the user navigates, edits the OTP or the session resets.
type Ticket struct {
	gen uint64
}

// Controller owns all mutable session state of the wizard. It is not safe
// for concurrent use; callers serialize access through their event loop.
type Controller struct {
	dir   Directory
	rates Rates
	opts  Options

	step        Step
	identifier  *IdentifierEditor
	otp         *OtpEditor
	amount      *AmountEditor
	beneficiary *directory.Beneficiary
	target      string
	summary     *Summary
	receipt     *Receipt
	sessionID   string

	gen     uint64
	pending bool

	events []Event
}

// New creates a controller positioned at the Welcome step.
func New(dir Directory, rates Rates, opts Options) *Controller {
	if opts.NewSessionID == nil {
		opts.NewSessionID = func() string { return uuid.New().String() }
	}
	if opts.NewReference == nil {
		opts.NewReference = func() string { return xid.New().String() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultCurrency == "" {
		if codes := rates.Currencies(); len(codes) > 0 {
			opts.DefaultCurrency = codes[0]
		}
	}

	return &Controller{
		dir:        dir,
		rates:      rates,
		opts:       opts,
		step:       StepWelcome,
		identifier: NewIdentifierEditor(),
		otp:        NewOtpEditor(),
		amount:     NewAmountEditor(opts.AmountMaxLen),
		target:     opts.DefaultCurrency,
	}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.step
}

// Beneficiaries returns the directory listing shown on the Beneficiary step.
func (c *Controller) Beneficiaries() []directory.Beneficiary {
	return c.dir.Beneficiaries()
}

// Start begins a session: Welcome → Login.
func (c *Controller) Start() bool {
	if c.step != StepWelcome {
		return false
	}
	c.sessionID = c.opts.NewSessionID()
	c.moveTo(StepLogin)
	return true
}

// Press routes a keypad key to the editor of the current step.
func (c *Controller) Press(r rune) bool {
	switch c.step {
	case StepLogin:
		return c.identifier.Append(r)
	case StepOtp:
		if !c.otp.Append(r) {
			return false
		}
		if c.otp.Complete() {
			c.gen++
			c.pending = true
			logger.Debug("OTP complete, auto-advance scheduled (gen=%d)", c.gen)
		}
		return true
	case StepAmount:
		return c.amount.Append(r)
	default:
		return false
	}
}

// Delete removes the last key from the editor of the current step.
func (c *Controller) Delete() bool {
	switch c.step {
	case StepLogin:
		return c.identifier.DeleteLast()
	case StepOtp:
		if !c.otp.DeleteLast() {
			return false
		}
		c.cancelPending()
		return true
	case StepAmount:
		return c.amount.DeleteLast()
	default:
		return false
	}
}

// SubmitIdentifier advances Login → Otp once the identifier is long enough.
func (c *Controller) SubmitIdentifier() bool {
	if c.step != StepLogin || !c.identifier.Valid() {
		return false
	}
	c.otp.Reset()
	c.moveTo(StepOtp)
	return true
}

// PendingAdvance returns the ticket for a scheduled Otp → Beneficiary
// transition, if one is outstanding.
func (c *Controller) PendingAdvance() (Ticket, bool) {
	if !c.pending {
		return Ticket{}, false
	}
	return Ticket{gen: c.gen}, true
}

// AutoAdvance applies a scheduled Otp → Beneficiary transition. Stale
// tickets are ignored.
func (c *Controller) AutoAdvance(t Ticket) bool {
	if !c.pending || t.gen != c.gen || c.step != StepOtp || !c.otp.Complete() {
		logger.Debug("Ignoring stale auto-advance ticket (gen=%d, current=%d)", t.gen, c.gen)
		return false
	}
	c.moveTo(StepBeneficiary)
	return true
}

// SelectBeneficiary picks a recipient and advances Beneficiary → Amount.
// The target currency is reset to the beneficiary's settlement currency.
func (c *Controller) SelectBeneficiary(id string) bool {
	if c.step != StepBeneficiary {
		return false
	}
	b, ok := c.dir.Lookup(id)
	if !ok {
		return false
	}
	c.beneficiary = &b
	c.target = b.Currency
	c.moveTo(StepAmount)
	return true
}

// SetTargetCurrency changes the payout currency on the Amount step.
func (c *Controller) SetTargetCurrency(code string) bool {
	if c.step != StepAmount {
		return false
	}
	if _, ok := c.rates.Rate(code); !ok {
		return false
	}
	c.target = code
	return true
}

// CycleCurrency moves the payout currency through the rate table by delta
// positions, wrapping around.
func (c *Controller) CycleCurrency(delta int) bool {
	if c.step != StepAmount {
		return false
	}
	codes := c.rates.Currencies()
	if len(codes) == 0 {
		return false
	}
	idx := 0
	for i, code := range codes {
		if code == c.target {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(codes) + len(codes)) % len(codes)
	return c.SetTargetCurrency(codes[next])
}

// Confirm prices the transfer and advances Amount → Review as one step.
// It returns false without error when the guard fails. A misconfigured rate
// table is reported as ErrUnknownCurrency and leaves the state unchanged.
func (c *Controller) Confirm() (bool, error) {
	if c.step != StepAmount {
		return false, nil
	}

	summary, err := Calculate(CalcInput{
		Amount:         ParseAmount(c.amount.Value()),
		Beneficiary:    c.beneficiary,
		TargetCurrency: c.target,
		Rates:          c.rates,
		Fee:            c.opts.Fee,
		BaseCurrency:   c.opts.BaseCurrency,
	})
	switch {
	case errors.Is(err, ErrNoBeneficiary), errors.Is(err, ErrNonPositiveAmount):
		return false, nil
	case err != nil:
		logger.Error("Transfer calculation failed: %v", err)
		c.record(Event{Kind: EventFault, From: c.step, To: c.step, Detail: err.Error()})
		return false, err
	}

	c.summary = &summary
	c.moveTo(StepReview)
	return true, nil
}

// Send confirms the reviewed transfer: Review → Success.
func (c *Controller) Send() bool {
	if c.step != StepReview || c.summary == nil {
		return false
	}
	c.receipt = &Receipt{
		Reference: c.opts.NewReference(),
		SessionID: c.sessionID,
		KioskID:   c.opts.KioskID,
		Summary:   *c.summary,
		SentAt:    c.opts.Now(),
	}
	c.moveTo(StepSuccess)
	r := *c.receipt
	c.record(Event{Kind: EventTransfer, From: StepReview, To: StepSuccess, Receipt: &r})
	logger.Info("Transfer sent: ref=%s amount=%s %s to %s",
		r.Reference, r.Summary.Amount, r.Summary.BaseCurrency, r.Summary.Beneficiary.Name)
	return true
}

// Back follows the back transition of the current step.
func (c *Controller) Back() bool {
	prev, ok := c.step.Predecessor()
	if !ok {
		return false
	}
	switch {
	case prev == StepLogin:
		c.identifier.Reset()
		c.otp.Reset()
	case c.step == StepReview:
		c.summary = nil
	}
	c.moveTo(prev)
	return true
}

// EndSession resets the session from any step that offers the end session
// affordance (all but Welcome and Success).
func (c *Controller) EndSession() bool {
	if !c.step.CanEndSession() {
		return false
	}
	c.Reset()
	return true
}

// CloseSession resets the session after a completed transfer.
func (c *Controller) CloseSession() bool {
	if c.step != StepSuccess {
		return false
	}
	c.Reset()
	return true
}

// Reset returns every piece of session state to its initial value. It is
// idempotent.
func (c *Controller) Reset() {
	if c.isInitial() {
		return
	}
	from := c.step
	session := c.sessionID

	c.step = StepWelcome
	c.identifier.Reset()
	c.otp.Reset()
	c.amount.Reset()
	c.beneficiary = nil
	c.target = c.opts.DefaultCurrency
	c.summary = nil
	c.receipt = nil
	c.sessionID = ""
	c.cancelPending()

	c.record(Event{Kind: EventReset, From: from, To: StepWelcome, SessionID: session})
	logger.Info("Session reset from %s", from)
}

func (c *Controller) isInitial() bool {
	return c.step == StepWelcome &&
		c.identifier.Len() == 0 &&
		c.otp.Len() == 0 &&
		c.amount.Value() == "0" &&
		c.beneficiary == nil &&
		c.target == c.opts.DefaultCurrency &&
		c.summary == nil &&
		c.receipt == nil &&
		c.sessionID == "" &&
		!c.pending
}

// Preview returns what the recipient would get for the current amount and
// payout currency. The second result is false when the currency has no rate.
func (c *Controller) Preview() (decimal.Decimal, bool) {
	rate, ok := c.rates.Rate(c.target)
	if !ok {
		return decimal.Zero, false
	}
	return ParseAmount(c.amount.Value()).Mul(rate), true
}

func (c *Controller) moveTo(to Step) {
	from := c.step
	c.step = to
	c.cancelPending()
	c.record(Event{Kind: EventStep, From: from, To: to})
	logger.Debug("Step %s -> %s", from, to)
}

func (c *Controller) cancelPending() {
	if c.pending {
		c.gen++
		c.pending = false
	}
}
