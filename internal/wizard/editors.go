package wizard

import "strings"

const (
	// IdentifierMaxLen is the longest identifier the login keypad accepts.
	IdentifierMaxLen = 12
	// IdentifierMinLen is the shortest identifier that enables Login→Otp.
	IdentifierMinLen = 8
	// OtpLen is the fixed OTP length; reaching it schedules auto-advance.
	OtpLen = 4
	// DefaultAmountMaxLen caps the amount buffer, separator included.
	DefaultAmountMaxLen = 7
)

// Editor is a bounded keystroke buffer for one input field.
type Editor interface {
	// Append adds a key. Returns false if the key was rejected.
	Append(r rune) bool
	// DeleteLast removes the final key. Returns false if nothing changed.
	DeleteLast() bool
	// Value returns the current buffer.
	Value() string
	// Reset returns the buffer to its initial value.
	Reset()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// digitBuffer is a digits-only buffer with a maximum length.
type digitBuffer struct {
	buf []rune
	max int
}

func (d *digitBuffer) Append(r rune) bool {
	if !isDigit(r) || len(d.buf) >= d.max {
		return false
	}
	d.buf = append(d.buf, r)
	return true
}

func (d *digitBuffer) DeleteLast() bool {
	if len(d.buf) == 0 {
		return false
	}
	d.buf = d.buf[:len(d.buf)-1]
	return true
}

func (d *digitBuffer) Value() string { return string(d.buf) }
func (d *digitBuffer) Len() int      { return len(d.buf) }
func (d *digitBuffer) Reset()        { d.buf = d.buf[:0] }

// IdentifierEditor captures the customer id (civil id / resident card).
type IdentifierEditor struct {
	digitBuffer
}

// NewIdentifierEditor returns an empty identifier editor.
func NewIdentifierEditor() *IdentifierEditor {
	return &IdentifierEditor{digitBuffer{max: IdentifierMaxLen}}
}

// Valid reports whether the identifier is long enough to proceed.
func (e *IdentifierEditor) Valid() bool {
	return e.Len() >= IdentifierMinLen
}

// OtpEditor captures the one-time password.
type OtpEditor struct {
	digitBuffer
}

// NewOtpEditor returns an empty OTP editor.
func NewOtpEditor() *OtpEditor {
	return &OtpEditor{digitBuffer{max: OtpLen}}
}

// Complete reports whether all OTP digits have been entered.
func (e *OtpEditor) Complete() bool {
	return e.Len() == OtpLen
}

// AmountEditor captures a non-negative decimal amount. The buffer is never
// empty: it starts at "0" and falls back to "0" when the last key is deleted.
type AmountEditor struct {
	buf string
	max int
}

// NewAmountEditor returns an amount editor capped at maxLen characters.
// A non-positive maxLen selects DefaultAmountMaxLen.
func NewAmountEditor(maxLen int) *AmountEditor {
	if maxLen <= 0 {
		maxLen = DefaultAmountMaxLen
	}
	return &AmountEditor{buf: "0", max: maxLen}
}

func (e *AmountEditor) Append(r rune) bool {
	if r != '.' && !isDigit(r) {
		return false
	}
	if r == '.' && strings.Contains(e.buf, ".") {
		return false
	}
	if e.buf == "0" && r != '.' {
		e.buf = string(r)
		return r != '0'
	}
	if len(e.buf) >= e.max {
		return false
	}
	e.buf += string(r)
	return true
}

func (e *AmountEditor) DeleteLast() bool {
	if len(e.buf) == 1 {
		if e.buf == "0" {
			return false
		}
		e.buf = "0"
		return true
	}
	e.buf = e.buf[:len(e.buf)-1]
	return true
}

func (e *AmountEditor) Value() string { return e.buf }
func (e *AmountEditor) Reset()        { e.buf = "0" }

// MaxLen returns the configured cap.
func (e *AmountEditor) MaxLen() int { return e.max }
