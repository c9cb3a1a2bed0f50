// Package testfixtures provides deterministic wizard controllers, directories
// and mocks for kiosk UI tests.
package testfixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// FixedNow is the clock every fixture controller reports.
var FixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// misconfigured lists a beneficiary whose currency has no rate.
const misconfigured = `
beneficiaries:
  - id: "1"
    name: Rahul Sharma
    country: India
    account_number: "**** 5678"
    bank_name: HDFC Bank
    currency: INR
  - id: "9"
    name: Awa Diop
    country: Senegal
    account_number: "**** 7788"
    bank_name: Ecobank
    currency: XOF
rates:
  - code: INR
    rate: "217.45"
`

// Directory returns the bundled directory.
func Directory(t *testing.T) *directory.Directory {
	t.Helper()
	dir, err := directory.Default()
	require.NoError(t, err)
	return dir
}

// MisconfiguredDirectory returns a directory whose second beneficiary
// settles in a currency missing from the rate table.
func MisconfiguredDirectory(t *testing.T) *directory.Directory {
	t.Helper()
	dir, err := directory.Parse([]byte(misconfigured))
	require.NoError(t, err)
	return dir
}

// Controller builds a controller over dir with deterministic session ids
// ("session-N"), references ("ref-N") and clock.
func Controller(t *testing.T, dir *directory.Directory) *wizard.Controller {
	t.Helper()
	sessions, refs := 0, 0
	return wizard.New(dir, dir.Rates(), wizard.Options{
		Fee:             decimal.RequireFromString("0.5"),
		BaseCurrency:    "OMR",
		DefaultCurrency: "INR",
		KioskID:         "MUSCAT-772",
		NewSessionID: func() string {
			sessions++
			return fmt.Sprintf("session-%d", sessions)
		},
		NewReference: func() string {
			refs++
			return fmt.Sprintf("ref-%d", refs)
		},
		Now: func() time.Time { return FixedNow },
	})
}
