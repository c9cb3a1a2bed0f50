package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoBeneficiary is returned when a transfer is priced without a recipient.
	ErrNoBeneficiary = errors.New("no beneficiary selected")
	// ErrUnknownCurrency is returned when the rate table has no entry for the
	// target currency. It indicates a misconfigured rate table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrNonPositiveAmount is returned for a send amount of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// Rates is the exchange rate table the calculator prices against.
type Rates interface {
	Rate(code string) (decimal.Decimal, bool)
	Currencies() []string
}

// Summary is the review breakdown of a transfer. It is built once by
// Calculate and never mutated.
type Summary struct {
	Beneficiary  directory.Beneficiary // Currency is the resolved target currency
	BaseCurrency string
	Amount       decimal.Decimal
	Rate         decimal.Decimal
	Fee          decimal.Decimal
	TotalPayable decimal.Decimal
	ReceiverGets decimal.Decimal
}

// CalcInput holds everything needed to price a transfer.
type CalcInput struct {
	Amount         decimal.Decimal
	Beneficiary    *directory.Beneficiary
	TargetCurrency string
	Rates          Rates
	Fee            decimal.Decimal
	BaseCurrency   string
}

// Calculate prices a transfer. It has no side effects.
func Calculate(in CalcInput) (Summary, error) {
	if in.Beneficiary == nil {
		return Summary{}, ErrNoBeneficiary
	}
	if !in.Amount.IsPositive() {
		return Summary{}, ErrNonPositiveAmount
	}

	rate, ok := in.Rates.Rate(in.TargetCurrency)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, in.TargetCurrency)
	}

	ben := *in.Beneficiary
	ben.Currency = in.TargetCurrency

	return Summary{
		Beneficiary:  ben,
		BaseCurrency: in.BaseCurrency,
		Amount:       in.Amount,
		Rate:         rate,
		Fee:          in.Fee,
		TotalPayable: in.Amount.Add(in.Fee),
		ReceiverGets: in.Amount.Mul(rate),
	}, nil
}

// ParseAmount converts an amount buffer into a decimal. Partial input such
// as "12." is accepted; anything unparseable yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
