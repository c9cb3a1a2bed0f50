package kiosk

import "github.com/mark3labs/remitkiosk/internal/wizard"

// OtpAdvanceMsg fires when the OTP verification delay elapses. The ticket
// is handed back to the controller, which ignores it if it went stale.
type OtpAdvanceMsg struct {
	Ticket wizard.Ticket
}

// PromoTickMsg rotates the Welcome promotions. Ticks from an older
// generation are dropped.
type PromoTickMsg struct {
	Gen int
}

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct {
	Gen int
}

// HookCompleteMsg reports the outcome of the on_transfer_sent hooks.
type HookCompleteMsg struct {
	Reference string
	Output    string
	Err       error
}
