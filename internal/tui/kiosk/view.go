package kiosk

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/shopspring/decimal"
)

// Render lays out the whole kiosk screen as a string: header, step
// indicator, the current step's body, its action bar, hints and footer.
func (a *App) Render() string {
	v := a.ctrl.Snapshot()

	header := a.renderHeader()
	steps := a.renderSteps(v.Step)
	actions := RenderButtons(a.width, a.actions(v)...)
	hints := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.hints(v))
	footer := a.renderFooter(v)

	chrome := lipgloss.Height(header) + lipgloss.Height(steps) +
		lipgloss.Height(actions) + lipgloss.Height(hints) + lipgloss.Height(footer) + 2
	bodyHeight := a.height - chrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := a.renderBody(v)
	align := lipgloss.Center
	if a.lang.RTL() {
		body = lipgloss.NewStyle().Align(lipgloss.Right).Render(body)
	}
	body = lipgloss.Place(a.width, bodyHeight, align, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		steps,
		body,
		"",
		actions,
		hints,
		footer,
	)
}

func (a *App) renderBody(v wizard.View) string {
	switch v.Step {
	case wizard.StepWelcome:
		return a.renderWelcome()
	case wizard.StepLogin:
		return a.renderLogin(v)
	case wizard.StepOtp:
		return a.renderOtp(v)
	case wizard.StepBeneficiary:
		return a.renderBeneficiaries(v)
	case wizard.StepAmount:
		return a.renderAmount(v)
	case wizard.StepReview:
		return a.renderReview(v)
	case wizard.StepSuccess:
		return a.renderSuccess(v)
	}
	return ""
}

func (a *App) renderWelcome() string {
	s := theme.Current().S()

	promos := [promoCount][2]i18n.Label{
		{i18n.Promo1Title, i18n.Promo1Desc},
		{i18n.Promo2Title, i18n.Promo2Desc},
		{i18n.Promo3Title, i18n.Promo3Desc},
	}
	promo := promos[a.promoIdx%promoCount]

	dots := make([]string, promoCount)
	for i := range dots {
		if i == a.promoIdx%promoCount {
			dots[i] = s.Strong.Render("●")
		} else {
			dots[i] = s.Muted.Render("○")
		}
	}

	card := s.Promo.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Strong.Render(a.t(promo[0])),
		s.Value.Render(a.t(promo[1])),
	))

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(a.t(i18n.WelcomeTitle)),
		s.Strong.Render(a.t(i18n.WelcomeTitleAccent)),
		"",
		s.Subtitle.Width(56).Align(lipgloss.Center).Render(a.t(i18n.WelcomeDesc)),
		"",
		card,
		strings.Join(dots, " "),
	)
}

func (a *App) renderLogin(v wizard.View) string {
	s := theme.Current().S()

	value := v.Identifier
	if value == "" {
		value = s.InputPlaceholder.Render(strings.Repeat("•", wizard.IdentifierMinLen))
	}
	input := s.Input.Width(wizard.IdentifierMaxLen + 6).Render(value)

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(a.t(i18n.LoginTitle)),
		s.Subtitle.Render(a.t(i18n.LoginDesc)),
		"",
		s.Label.Render(a.t(i18n.IDLabel)),
		input,
		"",
		renderKeypad(false),
	)
}

func (a *App) renderOtp(v wizard.View) string {
	s := theme.Current().S()

	cells := make([]string, wizard.OtpLen)
	digits := []rune(v.Otp)
	for i := range cells {
		if i < len(digits) {
			cells[i] = s.OtpCellFilled.Render(string(digits[i]))
		} else {
			cells[i] = s.OtpCell.Render("·")
		}
	}

	status := " "
	if v.Verifying {
		status = a.spinner.View() + " " + s.Subtitle.Render(a.t(i18n.Verifying)+"…")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(a.t(i18n.OtpTitle)),
		s.Subtitle.Render(a.t(i18n.OtpDesc)),
		"",
		s.Label.Render(a.t(i18n.OtpLabel)),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		status,
		renderKeypad(false),
	)
}

func (a *App) renderBeneficiaries(v wizard.View) string {
	s := theme.Current().S()

	list := a.ctrl.Beneficiaries()
	rows := make([]string, 0, len(list))
	for i, b := range list {
		line := fmt.Sprintf("%s  %s", b.Name, s.Muted.Render(fmt.Sprintf("%s · %s · %s", b.BankName, b.AccountNumber, b.Currency)))
		if i == a.cursor {
			rows = append(rows, s.ListItemSelected.Width(60).Render(line))
		} else {
			rows = append(rows, s.ListItem.Width(60).Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(a.t(i18n.RecipientTitle)),
		s.Subtitle.Render(a.t(i18n.RecipientSub)),
		"",
		s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}

func (a *App) renderAmount(v wizard.View) string {
	s := theme.Current().S()

	recipient := ""
	if v.Beneficiary != nil {
		recipient = s.Value.Render(v.Beneficiary.Name) + " " + s.Muted.Render(v.Beneficiary.Country)
	}

	input := s.Input.Width(v.AmountMaxLen + 12).Render(
		s.Title.Render(v.Amount) + " " + s.Muted.Render(v.BaseCurrency),
	)

	codes := make([]string, len(v.Currencies))
	for i, code := range v.Currencies {
		if code == v.TargetCurrency {
			codes[i] = s.StepActive.Render("[" + code + "]")
		} else {
			codes[i] = s.Muted.Render(code)
		}
	}

	preview := s.Error.Render("--")
	if v.PreviewOK {
		preview = s.Strong.Render(formatReceiver(v.Preview) + " " + v.TargetCurrency)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		recipient,
		"",
		s.Label.Render(a.t(i18n.AmountLabel)),
		input,
		s.Label.Render(a.t(i18n.PayoutCurrency))+"  "+strings.Join(codes, " "),
		s.Label.Render(a.t(i18n.RecipientGets))+"  "+preview,
		"",
		renderKeypad(true),
	)
}

func (a *App) renderReview(v wizard.View) string {
	s := theme.Current().S()
	if v.Summary == nil {
		return ""
	}
	sum := v.Summary
	b := sum.Beneficiary

	row := func(label i18n.Label, value string) string {
		l := s.Label.Width(22).Render(a.t(label))
		return l + s.Value.Render(value)
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		row(i18n.RecipientLabel, b.Name),
		s.Muted.Render(strings.Repeat(" ", 22)+b.BankName+" · "+b.AccountNumber),
		"",
		row(i18n.SentLabel, formatBase(sum.Amount)+" "+sum.BaseCurrency),
		row(i18n.FeeLabel, formatBase(sum.Fee)+" "+sum.BaseCurrency),
		row(i18n.RateLabel, fmt.Sprintf("1 %s = %s %s", sum.BaseCurrency, sum.Rate.String(), b.Currency)),
		row(i18n.NetPayable, s.Strong.Render(formatBase(sum.TotalPayable)+" "+sum.BaseCurrency)),
	)

	total := lipgloss.JoinVertical(lipgloss.Center,
		s.Label.Render(a.t(i18n.TotalDisb)),
		s.Success.Render(formatReceiver(sum.ReceiverGets)+" "+b.Currency),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Panel.Render(details),
		"",
		total,
	)
}

func (a *App) renderSuccess(v wizard.View) string {
	s := theme.Current().S()
	if v.Receipt == nil {
		return ""
	}
	r := v.Receipt

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Success.Render("✓"),
		s.Title.Render(a.t(i18n.DoneTitle)),
		s.Subtitle.Width(56).Align(lipgloss.Center).Render(a.t(i18n.DoneDesc)),
		"",
		s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Label.Width(18).Render(a.t(i18n.RefID))+s.Strong.Render(strings.ToUpper(r.Reference)),
			s.Label.Width(18).Render(a.t(i18n.SettledAmt))+s.Value.Render(
				formatReceiver(r.Summary.ReceiverGets)+" "+r.Summary.Beneficiary.Currency),
		)),
	)
}

// actions returns the action bar buttons for the step.
func (a *App) actions(v wizard.View) []Button {
	switch v.Step {
	case wizard.StepWelcome:
		return []Button{{Label: a.t(i18n.StartBtn) + " →", State: ButtonPrimary}}
	case wizard.StepLogin:
		return backNext(a.t(i18n.Back), a.t(i18n.VerifyBtn), v.CanSubmit)
	case wizard.StepOtp:
		return backNext(a.t(i18n.Back), a.t(i18n.VerifyProceedBtn), false)
	case wizard.StepBeneficiary:
		return backNext(a.t(i18n.Back), a.t(i18n.NextStep), len(a.ctrl.Beneficiaries()) > 0)
	case wizard.StepAmount:
		return backNext(a.t(i18n.Back), a.t(i18n.NextStep), v.CanSubmit)
	case wizard.StepReview:
		return backNext(a.t(i18n.Edit), a.t(i18n.SendNow), v.CanSubmit)
	case wizard.StepSuccess:
		return []Button{{Label: a.t(i18n.CloseSession), State: ButtonPrimary}}
	}
	return nil
}

func (a *App) hints(v wizard.View) string {
	switch v.Step {
	case wizard.StepWelcome:
		return RenderHintBar(KeyEnter, a.t(i18n.HintStart), KeyCtrlL, a.t(i18n.HintLanguage))
	case wizard.StepLogin:
		return RenderHintBar(KeyDigits, a.t(i18n.HintType), KeyBksp, a.t(i18n.HintDelete),
			KeyEnter, a.t(i18n.HintVerify), KeyEsc, a.t(i18n.HintBack))
	case wizard.StepOtp:
		return RenderHintBar(KeyDigits, a.t(i18n.HintType), KeyBksp, a.t(i18n.HintDelete), KeyEsc, a.t(i18n.HintBack))
	case wizard.StepBeneficiary:
		return RenderHintBar(KeyUpDown, a.t(i18n.HintChoose), KeyEnter, a.t(i18n.HintSelect), KeyEsc, a.t(i18n.HintBack))
	case wizard.StepAmount:
		return RenderHintBar(KeyDigits+KeyDot, a.t(i18n.HintType), KeyCurrency, a.t(i18n.HintCurrency),
			KeyEnter, a.t(i18n.HintReview), KeyEsc, a.t(i18n.HintBack))
	case wizard.StepReview:
		return RenderHintBar(KeyEnter, a.t(i18n.HintSend), KeyEsc, a.t(i18n.HintEdit))
	case wizard.StepSuccess:
		return RenderHintBar(KeyEnter, a.t(i18n.HintClose))
	}
	return ""
}

// formatBase formats an amount in the kiosk base currency.
func formatBase(d decimal.Decimal) string {
	return d.StringFixed(3)
}

// formatReceiver formats an amount in the payout currency.
func formatReceiver(d decimal.Decimal) string {
	return d.StringFixed(2)
}
