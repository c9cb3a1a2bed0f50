// Package i18n supplies every user-facing string of the kiosk, keyed by a
// fixed set of labels and the active language.
package i18n

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yml
var tables embed.FS

// Lang identifies a display language.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Languages lists the supported languages in toggle order.
var Languages = []Lang{English, Arabic}

// RTL reports whether the language is written right to left.
func (l Lang) RTL() bool {
	return l == Arabic
}

// Next returns the language after l in toggle order.
func (l Lang) Next() Lang {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return English
}

// ParseLang validates a language code.
func ParseLang(s string) (Lang, error) {
	for _, lang := range Languages {
		if string(lang) == s {
			return lang, nil
		}
	}
	return English, fmt.Errorf("unsupported language: %q", s)
}

// Label is a translation key.
type Label string

const (
	WelcomeTitle         Label = "welcome_title"
	WelcomeTitleAccent   Label = "welcome_title_accent"
	WelcomeDesc          Label = "welcome_desc"
	StartBtn             Label = "start_btn"
	Promo1Title          Label = "promo1_title"
	Promo1Desc           Label = "promo1_desc"
	Promo2Title          Label = "promo2_title"
	Promo2Desc           Label = "promo2_desc"
	Promo3Title          Label = "promo3_title"
	Promo3Desc           Label = "promo3_desc"
	LoginTitle           Label = "login_title"
	LoginDesc            Label = "login_desc"
	IDLabel              Label = "id_label"
	VerifyBtn            Label = "verify_btn"
	OtpTitle             Label = "otp_title"
	OtpDesc              Label = "otp_desc"
	OtpLabel             Label = "otp_label"
	Verifying            Label = "verifying"
	VerifyProceedBtn     Label = "verify_proceed_btn"
	RecipientTitle       Label = "recipient_title"
	RecipientSub         Label = "recipient_sub"
	AmountLabel          Label = "amount_label"
	RecipientGets        Label = "recipient_gets"
	PayoutCurrency       Label = "payout_currency"
	NextStep             Label = "next_step"
	TotalDisb            Label = "total_disb"
	RecipientLabel       Label = "recipient_label"
	SentLabel            Label = "sent_label"
	FeeLabel             Label = "fee_label"
	RateLabel            Label = "rate_label"
	NetPayable           Label = "net_payable"
	Edit                 Label = "edit"
	SendNow              Label = "send_now"
	DoneTitle            Label = "done_title"
	DoneDesc             Label = "done_desc"
	RefID                Label = "ref_id"
	SettledAmt           Label = "settled_amt"
	CloseSession         Label = "close_session"
	Encrypted            Label = "encrypted"
	KioskID              Label = "kiosk_id"
	EndSession           Label = "end_session"
	Back                 Label = "back"
	Language             Label = "language"
	Ver                  Label = "ver"
	FaultUnknownCurrency Label = "fault_unknown_currency"

	// Hint bar verbs
	HintStart            Label = "hint_start"
	HintLanguage         Label = "hint_language"
	HintType             Label = "hint_type"
	HintDelete           Label = "hint_delete"
	HintVerify           Label = "hint_verify"
	HintBack             Label = "hint_back"
	HintChoose           Label = "hint_choose"
	HintSelect           Label = "hint_select"
	HintCurrency         Label = "hint_currency"
	HintReview           Label = "hint_review"
	HintSend             Label = "hint_send"
	HintEdit             Label = "hint_edit"
	HintClose            Label = "hint_close"
)

// Provider looks up labels in per-language tables. Missing translations
// fall back to English, and missing keys render as the key itself.
type Provider struct {
	tables map[Lang]map[Label]string
}

// Load reads the embedded tables.
func Load() (*Provider, error) {
	p := &Provider{tables: make(map[Lang]map[Label]string, len(Languages))}
	for _, lang := range Languages {
		data, err := tables.ReadFile("data/" + string(lang) + ".yml")
		if err != nil {
			return nil, fmt.Errorf("reading %s labels: %w", lang, err)
		}
		table := make(map[Label]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parsing %s labels: %w", lang, err)
		}
		p.tables[lang] = table
	}
	return p, nil
}

// MustLoad is Load for the embedded tables, which are known to parse.
func MustLoad() *Provider {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// T translates a label.
func (p *Provider) T(lang Lang, label Label) string {
	if s, ok := p.tables[lang][label]; ok {
		return s
	}
	if s, ok := p.tables[English][label]; ok {
		return s
	}
	return string(label)
}

// Missing lists labels present in English but absent from lang.
func (p *Provider) Missing(lang Lang) []Label {
	var missing []Label
	for label := range p.tables[English] {
		if _, ok := p.tables[lang][label]; !ok {
			missing = append(missing, label)
		}
	}
	return missing
}
