package directory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable maps currency codes to positive conversion rates, expressed as
// units of the currency per one unit of the kiosk base currency. Codes keep
// their insertion order so pickers list them the same way every time.
type RateTable struct {
	codes []string
	rates map[string]decimal.Decimal
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{rates: make(map[string]decimal.Decimal)}
}

// Set adds or replaces the rate for a currency code.
func (t *RateTable) Set(code string, rate decimal.Decimal) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("%w: empty currency code", ErrInvalidRate)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: %s=%s", ErrInvalidRate, code, rate)
	}
	if _, exists := t.rates[code]; !exists {
		t.codes = append(t.codes, code)
	}
	t.rates[code] = rate
	return nil
}

// Rate looks up a rate by exact currency code.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// Currencies returns the codes in insertion order.
func (t *RateTable) Currencies() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Len returns the number of currencies in the table.
func (t *RateTable) Len() int {
	return len(t.codes)
}
