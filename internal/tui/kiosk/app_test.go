package kiosk

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/state"
	"github.com/mark3labs/remitkiosk/internal/tui/testfixtures"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, dir *directory.Directory, opts Options) (*App, *testfixtures.MockRecorder) {
	t.Helper()
	rec := testfixtures.NewMockRecorder()
	opts.Recorder = rec
	if opts.KioskID == "" {
		opts.KioskID = "MUSCAT-772"
	}
	a := NewApp(context.Background(), testfixtures.Controller(t, dir), opts)
	a.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	t.Cleanup(a.Close)
	return a, rec
}

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func screen(a *App) string {
	return testfixtures.Plain(a.Render())
}

// toBeneficiary drives the app from Welcome through login and OTP.
func toBeneficiary(t *testing.T, a *App) {
	t.Helper()
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "12345678")
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "1234")

	ticket, ok := a.ctrl.PendingAdvance()
	require.True(t, ok)
	a.Update(OtpAdvanceMsg{Ticket: ticket})
	require.Equal(t, wizard.StepBeneficiary, a.ctrl.Step())
}

func TestWelcomeScreen(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{Version: "v9.9.9"})

	out := screen(a)
	require.Contains(t, out, "Send money")
	require.Contains(t, out, "Zero fee Fridays")
	require.Contains(t, out, "Start transfer")
	require.Contains(t, out, "MUSCAT-772")
	require.Contains(t, out, "v9.9.9")
	require.NotContains(t, out, "End session", "no end session affordance on Welcome")
}

func TestFullTransferFlow(t *testing.T) {
	a, rec := newTestApp(t, testfixtures.Directory(t), Options{})

	toBeneficiary(t, a)
	require.Contains(t, screen(a), "Siti Aminah")

	a.Update(keyPress(tea.KeyDown))
	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepAmount, a.ctrl.Step())
	require.Equal(t, "IDR", a.ctrl.Snapshot().TargetCurrency)

	typeText(a, "10")
	out := screen(a)
	require.Contains(t, out, "10 OMR")
	require.Contains(t, out, "42502.00 IDR", "live preview at 4250.20")

	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepReview, a.ctrl.Step())
	out = screen(a)
	require.Contains(t, out, "10.000 OMR")
	require.Contains(t, out, "0.500 OMR")
	require.Contains(t, out, "10.500 OMR")
	require.Contains(t, out, "42502.00 IDR")

	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepSuccess, a.ctrl.Step())
	out = screen(a)
	require.Contains(t, out, "Transfer complete")
	require.Contains(t, out, "REF-1")

	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepWelcome, a.ctrl.Step())

	a.Close()
	kinds := rec.Kinds()
	require.Contains(t, kinds, wizard.EventTransfer)
	require.Equal(t, wizard.EventReset, kinds[len(kinds)-1])
}

func TestLoginGuard(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})

	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "1234567")
	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepLogin, a.ctrl.Step(), "7 digits is too short")

	typeText(a, "a.")
	require.Equal(t, "1234567", a.ctrl.Snapshot().Identifier)

	typeText(a, "8")
	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, wizard.StepOtp, a.ctrl.Step())
}

func TestOtpAutoAdvanceSchedulesOnce(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "12345678")
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "123")
	require.False(t, a.hasTicket)

	_, cmd := a.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	require.NotNil(t, cmd)
	require.True(t, a.hasTicket)
	require.True(t, a.ctrl.Snapshot().Verifying)
	require.Contains(t, screen(a), "Verifying")

	scheduled := a.scheduled
	a.Update(keyPress(tea.KeyLeft))
	require.Equal(t, scheduled, a.scheduled, "unrelated keys do not reschedule")
}

func TestStaleOtpTicketIgnored(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "12345678")
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "1234")

	ticket, ok := a.ctrl.PendingAdvance()
	require.True(t, ok)

	a.Update(keyPress(tea.KeyBackspace))
	a.Update(OtpAdvanceMsg{Ticket: ticket})
	require.Equal(t, wizard.StepOtp, a.ctrl.Step())

	typeText(a, "9")
	fresh, ok := a.ctrl.PendingAdvance()
	require.True(t, ok)
	a.Update(OtpAdvanceMsg{Ticket: fresh})
	require.Equal(t, wizard.StepBeneficiary, a.ctrl.Step())
}

func TestBackNavigation(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})
	toBeneficiary(t, a)

	a.Update(keyPress(tea.KeyEscape))
	require.Equal(t, wizard.StepLogin, a.ctrl.Step())
	require.Empty(t, a.ctrl.Snapshot().Identifier)

	a.Update(keyPress(tea.KeyEscape))
	require.Equal(t, wizard.StepWelcome, a.ctrl.Step())
}

func TestEndSession(t *testing.T) {
	a, rec := newTestApp(t, testfixtures.Directory(t), Options{})
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "1234")
	require.Contains(t, screen(a), "End session")

	a.Update(ctrlKey('e'))
	require.Equal(t, wizard.StepWelcome, a.ctrl.Step())
	require.Empty(t, a.ctrl.Snapshot().Identifier)

	a.Close()
	kinds := rec.Kinds()
	require.Equal(t, wizard.EventReset, kinds[len(kinds)-1])
}

func TestCurrencyCycling(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})
	toBeneficiary(t, a)
	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, "INR", a.ctrl.Snapshot().TargetCurrency)

	a.Update(keyPress(tea.KeyTab))
	require.Equal(t, "IDR", a.ctrl.Snapshot().TargetCurrency)

	a.Update(keyPress(tea.KeyLeft))
	a.Update(keyPress(tea.KeyLeft))
	require.Equal(t, "EGP", a.ctrl.Snapshot().TargetCurrency, "cycling wraps around")
	require.Contains(t, screen(a), "[EGP]")
}

func TestUnknownCurrencyShowsToast(t *testing.T) {
	a, rec := newTestApp(t, testfixtures.MisconfiguredDirectory(t), Options{})
	toBeneficiary(t, a)

	a.Update(keyPress(tea.KeyDown))
	a.Update(keyPress(tea.KeyEnter))
	require.Equal(t, "XOF", a.ctrl.Snapshot().TargetCurrency)

	typeText(a, "5")
	_, cmd := a.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Equal(t, wizard.StepAmount, a.ctrl.Step())
	require.True(t, a.toast.IsVisible())
	require.Contains(t, a.toast.Message(), "unavailable")

	a.Update(ToastDismissMsg{Gen: a.toast.gen})
	require.False(t, a.toast.IsVisible())

	a.Close()
	require.Contains(t, rec.Kinds(), wizard.EventFault)
}

func TestPromoRotation(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{PromoInterval: time.Second})

	a.Update(PromoTickMsg{Gen: a.promoGen})
	require.Equal(t, 1, a.promoIdx)
	require.Contains(t, screen(a), "Instant credit")

	a.Update(PromoTickMsg{Gen: a.promoGen - 1})
	require.Equal(t, 1, a.promoIdx, "stale generation ignored")

	a.Update(keyPress(tea.KeyEnter))
	gen := a.promoGen
	a.Update(PromoTickMsg{Gen: gen})
	require.Equal(t, 1, a.promoIdx, "no rotation away from Welcome")

	a.Update(keyPress(tea.KeyEscape))
	require.Equal(t, wizard.StepWelcome, a.ctrl.Step())
	require.Equal(t, gen+1, a.promoGen, "re-entering Welcome starts a new generation")
	require.Equal(t, 0, a.promoIdx)
}

func TestLanguageToggle(t *testing.T) {
	dataDir := t.TempDir()
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{DataDir: dataDir})

	a.Update(ctrlKey('l'))
	require.Equal(t, i18n.Arabic, a.Language())
	out := screen(a)
	require.Contains(t, out, "أرسل الأموال")
	require.Contains(t, out, "ابدأ", "hint bar follows the language")
	require.NotContains(t, out, "start")
	require.Equal(t, "ar", state.Load(dataDir).Language)

	a.Update(keyPress(tea.KeyEnter))
	out = screen(a)
	require.Contains(t, out, "رجوع")
	require.NotContains(t, out, "delete")
	a.Update(keyPress(tea.KeyEscape))

	a.Update(ctrlKey('l'))
	require.Equal(t, i18n.English, a.Language())
	require.Contains(t, screen(a), "Send money")
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})

	_, cmd := a.Update(ctrlKey('c'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)

	view := a.View()
	require.False(t, view.AltScreen)
}

func TestViewUsesAltScreen(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{})
	view := a.View()
	require.True(t, view.AltScreen)
	require.NotNil(t, view.Content)
}

func TestAmountScreenFitsTerminal(t *testing.T) {
	a, _ := newTestApp(t, testfixtures.Directory(t), Options{Version: "v9.9.9"})
	toBeneficiary(t, a)
	a.Update(keyPress(tea.KeyEnter))
	typeText(a, "250")

	out := testfixtures.RenderPlain(testfixtures.TestTermWidth, testfixtures.TestTermHeight, a.Render())
	require.Contains(t, out, "REMIT KIOSK")
	require.Contains(t, out, "250 OMR")
	require.Contains(t, out, "v9.9.9", "footer stays on screen")
}
