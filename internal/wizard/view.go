package wizard

import (
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/shopspring/decimal"
)

// View is a consistent, read-only copy of the session state for renderers.
type View struct {
	Step      Step
	SessionID string

	Identifier   string
	Otp          string
	Amount       string
	AmountMaxLen int

	Beneficiary    *directory.Beneficiary
	TargetCurrency string
	Currencies     []string
	Preview        decimal.Decimal
	PreviewOK      bool

	BaseCurrency string
	Fee          decimal.Decimal

	Summary *Summary
	Receipt *Receipt

	// CanSubmit reports whether the primary action of the step is enabled.
	CanSubmit bool
	CanBack   bool
	CanEnd    bool
	// Verifying is true while an OTP auto-advance is scheduled.
	Verifying bool
}

// Snapshot returns the current view model.
func (c *Controller) Snapshot() View {
	v := View{
		Step:           c.step,
		SessionID:      c.sessionID,
		Identifier:     c.identifier.Value(),
		Otp:            c.otp.Value(),
		Amount:         c.amount.Value(),
		AmountMaxLen:   c.amount.MaxLen(),
		TargetCurrency: c.target,
		Currencies:     c.rates.Currencies(),
		BaseCurrency:   c.opts.BaseCurrency,
		Fee:            c.opts.Fee,
		CanBack:        c.step.HasBack(),
		CanEnd:         c.step.CanEndSession(),
		Verifying:      c.pending,
	}
	v.Preview, v.PreviewOK = c.Preview()

	if c.beneficiary != nil {
		b := *c.beneficiary
		v.Beneficiary = &b
	}
	if c.summary != nil {
		s := *c.summary
		v.Summary = &s
	}
	if c.receipt != nil {
		r := *c.receipt
		v.Receipt = &r
	}

	switch c.step {
	case StepWelcome, StepReview, StepSuccess:
		v.CanSubmit = true
	case StepLogin:
		v.CanSubmit = c.identifier.Valid()
	case StepAmount:
		v.CanSubmit = c.beneficiary != nil && ParseAmount(c.amount.Value()).IsPositive()
	}

	return v
}
