package wizard

import (
	"fmt"
	"testing"
	"time"

	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	dir, err := directory.Default()
	require.NoError(t, err)

	sessions := 0
	refs := 0
	return New(dir, dir.Rates(), Options{
		Fee:             dec("0.5"),
		BaseCurrency:    "OMR",
		DefaultCurrency: "INR",
		KioskID:         "muscat-772",
		NewSessionID: func() string {
			sessions++
			return fmt.Sprintf("session-%d", sessions)
		},
		NewReference: func() string {
			refs++
			return fmt.Sprintf("ref-%d", refs)
		},
		Now: func() time.Time { return fixedNow },
	})
}

func typeKeys(c *Controller, keys string) {
	for _, r := range keys {
		c.Press(r)
	}
}

// toBeneficiary drives a controller through login and OTP.
func toBeneficiary(t *testing.T, c *Controller) {
	t.Helper()
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())
	typeKeys(c, "1234")
	ticket, ok := c.PendingAdvance()
	require.True(t, ok)
	require.True(t, c.AutoAdvance(ticket))
	require.Equal(t, StepBeneficiary, c.Step())
}

func toReview(t *testing.T, c *Controller, amount string) {
	t.Helper()
	toBeneficiary(t, c)
	require.True(t, c.SelectBeneficiary("1"))
	typeKeys(c, amount)
	ok, err := c.Confirm()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, StepReview, c.Step())
}

func TestHappyPath(t *testing.T) {
	c := newTestController(t)
	require.Equal(t, StepWelcome, c.Step())

	toReview(t, c, "250")

	v := c.Snapshot()
	require.NotNil(t, v.Summary)
	require.True(t, v.Summary.Amount.Equal(dec("250")))
	require.True(t, v.Summary.TotalPayable.Equal(dec("250.5")))
	require.True(t, v.Summary.ReceiverGets.Equal(dec("5712.5")))
	require.Equal(t, "INR", v.Summary.Beneficiary.Currency)

	require.True(t, c.Send())
	v = c.Snapshot()
	require.Equal(t, StepSuccess, v.Step)
	require.NotNil(t, v.Receipt)
	require.Equal(t, "ref-1", v.Receipt.Reference)
	require.Equal(t, "session-1", v.Receipt.SessionID)
	require.Equal(t, "muscat-772", v.Receipt.KioskID)
	require.Equal(t, fixedNow, v.Receipt.SentAt)
	require.NotNil(t, v.Summary, "summary persists on success")

	require.False(t, c.Send(), "a transfer is sent once")
	require.True(t, c.CloseSession())
	require.Equal(t, StepWelcome, c.Step())
}

func TestLoginGuard(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Start())

	typeKeys(c, "1234567")
	require.False(t, c.Snapshot().CanSubmit)
	require.False(t, c.SubmitIdentifier())
	require.Equal(t, StepLogin, c.Step())

	typeKeys(c, "8")
	require.True(t, c.Snapshot().CanSubmit)
	require.True(t, c.SubmitIdentifier())
	require.Equal(t, StepOtp, c.Step())
}

func TestKeypadIgnoredOutsideEditingSteps(t *testing.T) {
	c := newTestController(t)
	require.False(t, c.Press('1'))
	require.False(t, c.Delete())

	toReview(t, c, "5")
	require.False(t, c.Press('1'))
	require.Equal(t, "5", c.Snapshot().Amount)
}

func TestOtpAutoAdvanceOnce(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())

	typeKeys(c, "123")
	_, ok := c.PendingAdvance()
	require.False(t, ok)

	typeKeys(c, "4")
	ticket, ok := c.PendingAdvance()
	require.True(t, ok)
	require.True(t, c.Snapshot().Verifying)

	// extra digits are rejected and do not reschedule
	require.False(t, c.Press('5'))
	again, ok := c.PendingAdvance()
	require.True(t, ok)
	require.Equal(t, ticket, again)

	require.True(t, c.AutoAdvance(ticket))
	require.Equal(t, StepBeneficiary, c.Step())
	require.False(t, c.AutoAdvance(ticket), "ticket fires at most once")
	_, ok = c.PendingAdvance()
	require.False(t, ok)
}

func TestOtpStaleTicketAfterBack(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())
	typeKeys(c, "1234")
	ticket, ok := c.PendingAdvance()
	require.True(t, ok)

	require.True(t, c.Back())
	require.Equal(t, StepLogin, c.Step())
	v := c.Snapshot()
	require.Equal(t, "", v.Otp, "back from OTP clears the OTP buffer")
	require.Equal(t, "", v.Identifier, "re-entering login clears the identifier")

	require.False(t, c.AutoAdvance(ticket))
	require.Equal(t, StepLogin, c.Step())
}

func TestOtpStaleTicketAfterDelete(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())
	typeKeys(c, "1234")
	stale, _ := c.PendingAdvance()

	require.True(t, c.Delete())
	require.False(t, c.AutoAdvance(stale))

	typeKeys(c, "9")
	fresh, ok := c.PendingAdvance()
	require.True(t, ok)
	require.NotEqual(t, stale, fresh)
	require.True(t, c.AutoAdvance(fresh))
}

func TestOtpStaleTicketAfterReset(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())
	typeKeys(c, "1234")
	ticket, _ := c.PendingAdvance()

	require.True(t, c.EndSession())
	require.False(t, c.AutoAdvance(ticket))
	require.Equal(t, StepWelcome, c.Step())
}

func TestBackTransitions(t *testing.T) {
	c := newTestController(t)
	require.False(t, c.Back(), "welcome has no back")

	toReview(t, c, "10")

	require.True(t, c.Back())
	require.Equal(t, StepAmount, c.Step())
	require.Nil(t, c.Snapshot().Summary, "summary is discarded when editing")
	require.Equal(t, "10", c.Snapshot().Amount)

	require.True(t, c.Back())
	require.Equal(t, StepBeneficiary, c.Step())

	require.True(t, c.Back())
	require.Equal(t, StepLogin, c.Step())

	require.True(t, c.Back())
	require.Equal(t, StepWelcome, c.Step())
}

func TestSuccessHasNoBack(t *testing.T) {
	c := newTestController(t)
	toReview(t, c, "10")
	require.True(t, c.Send())
	require.False(t, c.Back())
	require.False(t, c.EndSession(), "success offers close, not end session")
	require.Equal(t, StepSuccess, c.Step())
}

func TestBeneficiaryRoundTripResetsCurrency(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)

	require.True(t, c.SelectBeneficiary("2"))
	require.Equal(t, "IDR", c.Snapshot().TargetCurrency)

	require.True(t, c.CycleCurrency(1))
	require.Equal(t, "PHP", c.Snapshot().TargetCurrency)

	require.True(t, c.Back())
	require.Equal(t, StepBeneficiary, c.Step())

	require.True(t, c.SelectBeneficiary("2"))
	require.Equal(t, StepAmount, c.Step())
	require.Equal(t, "IDR", c.Snapshot().TargetCurrency)
}

func TestSelectUnknownBeneficiary(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)
	require.False(t, c.SelectBeneficiary("nope"))
	require.Equal(t, StepBeneficiary, c.Step())
}

func TestCycleCurrencyWraps(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)
	require.True(t, c.SelectBeneficiary("1"))

	require.True(t, c.CycleCurrency(-1))
	require.Equal(t, "EGP", c.Snapshot().TargetCurrency)
	require.True(t, c.CycleCurrency(1))
	require.Equal(t, "INR", c.Snapshot().TargetCurrency)
	require.False(t, c.SetTargetCurrency("USD"))
}

func TestConfirmWithPayoutCurrency(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)
	require.True(t, c.SelectBeneficiary("1"))
	require.True(t, c.SetTargetCurrency("PHP"))
	typeKeys(c, "100")

	ok, err := c.Confirm()
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Snapshot().Summary
	require.Equal(t, "PHP", s.Beneficiary.Currency)
	require.True(t, s.ReceiverGets.Equal(dec("1530")))
}

func TestConfirmZeroAmountIsNoop(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)
	require.True(t, c.SelectBeneficiary("1"))

	require.False(t, c.Snapshot().CanSubmit)
	ok, err := c.Confirm()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, StepAmount, c.Step())
	require.Nil(t, c.Snapshot().Summary)

	typeKeys(c, "0.")
	require.False(t, c.Snapshot().CanSubmit, "0. is still zero")
}

func TestConfirmUnknownCurrencyFaults(t *testing.T) {
	doc := `beneficiaries:
  - {id: "9", name: Nobody, currency: USD}
rates:
  - {code: INR, rate: "22.85"}
`
	dir, err := directory.Parse([]byte(doc))
	require.NoError(t, err)

	c := New(dir, dir.Rates(), Options{Fee: dec("0.5"), BaseCurrency: "OMR"})
	require.True(t, c.Start())
	typeKeys(c, "12345678")
	require.True(t, c.SubmitIdentifier())
	typeKeys(c, "1234")
	ticket, _ := c.PendingAdvance()
	require.True(t, c.AutoAdvance(ticket))
	require.True(t, c.SelectBeneficiary("9"))
	typeKeys(c, "5")
	_ = c.DrainEvents()

	ok, err := c.Confirm()
	require.False(t, ok)
	require.ErrorIs(t, err, ErrUnknownCurrency)
	require.Equal(t, StepAmount, c.Step())
	require.Nil(t, c.Snapshot().Summary)

	events := c.DrainEvents()
	require.Len(t, events, 1)
	require.Equal(t, EventFault, events[0].Kind)
}

func TestResetIdempotent(t *testing.T) {
	c := newTestController(t)
	toReview(t, c, "42")

	c.Reset()
	once := c.Snapshot()
	c.Reset()
	twice := c.Snapshot()

	require.Equal(t, once, twice)
	require.Equal(t, StepWelcome, once.Step)
	require.Equal(t, "", once.Identifier)
	require.Equal(t, "", once.Otp)
	require.Equal(t, "0", once.Amount)
	require.Nil(t, once.Beneficiary)
	require.Equal(t, "INR", once.TargetCurrency)
	require.Nil(t, once.Summary)
	require.Nil(t, once.Receipt)
	require.Equal(t, "", once.SessionID)
}

func TestEndSessionAvailability(t *testing.T) {
	c := newTestController(t)
	require.False(t, c.EndSession(), "not offered on welcome")

	require.True(t, c.Start())
	require.True(t, c.EndSession())
	require.Equal(t, StepWelcome, c.Step())
}

func TestEvents(t *testing.T) {
	c := newTestController(t)
	toReview(t, c, "10")
	require.True(t, c.Send())
	c.Reset()

	events := c.DrainEvents()
	var kinds []EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	require.Equal(t, []EventKind{
		EventStep, // welcome -> login
		EventStep, // login -> otp
		EventStep, // otp -> beneficiary
		EventStep, // beneficiary -> amount
		EventStep, // amount -> review
		EventStep, // review -> success
		EventTransfer,
		EventReset,
	}, kinds)

	require.Equal(t, "session-1", events[0].SessionID)
	require.Equal(t, "session-1", events[len(events)-1].SessionID)
	require.NotNil(t, events[6].Receipt)
	require.Nil(t, c.DrainEvents())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newTestController(t)
	toReview(t, c, "10")

	v := c.Snapshot()
	v.Beneficiary.Name = "changed"
	v.Summary.Beneficiary.Name = "changed"

	again := c.Snapshot()
	require.Equal(t, "Rahul Sharma", again.Beneficiary.Name)
	require.Equal(t, "Rahul Sharma", again.Summary.Beneficiary.Name)
}

func TestPreview(t *testing.T) {
	c := newTestController(t)
	toBeneficiary(t, c)
	require.True(t, c.SelectBeneficiary("3"))
	typeKeys(c, "2")

	v := c.Snapshot()
	require.True(t, v.PreviewOK)
	require.True(t, v.Preview.Equal(dec("30.6")))
}
