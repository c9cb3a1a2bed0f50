// Package kiosk is the Bubble Tea front end of the transfer wizard. It maps
// keys onto controller operations, renders controller snapshots and owns
// every timer: OTP verification, promo rotation and toasts.
package kiosk

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/remitkiosk/internal/hooks"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/journal"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/state"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/mark3labs/remitkiosk/internal/wizard"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultOtpDelay      = 300 * time.Millisecond
	DefaultPromoInterval = 5 * time.Second
	promoCount           = 3
)

// Options configures the kiosk App.
type Options struct {
	Labels   *i18n.Provider
	Language i18n.Lang

	KioskID string
	Version string

	OtpDelay      time.Duration
	PromoInterval time.Duration

	// Recorder receives every controller event. Nil disables the journal.
	Recorder journal.Recorder
	// Hooks run after each sent transfer, from WorkDir.
	Hooks   []*hooks.HookConfig
	WorkDir string
	// DataDir holds the UI preferences file. Empty disables saving.
	DataDir string
}

// App is the main Bubbletea model of the kiosk.
type App struct {
	ctx   context.Context
	ctrl  *wizard.Controller
	opts  Options
	keys  KeyMap
	lang  i18n.Lang
	pub   *publisher
	toast *Toast

	spinner   spinner.Model
	scheduled wizard.Ticket
	hasTicket bool

	promoIdx int
	promoGen int

	cursor int // highlighted beneficiary

	width    int
	height   int
	quitting bool
}

// NewApp creates the kiosk model around a controller positioned at Welcome.
func NewApp(ctx context.Context, ctrl *wizard.Controller, opts Options) *App {
	if opts.Labels == nil {
		opts.Labels = i18n.MustLoad()
	}
	if opts.Language == "" {
		opts.Language = i18n.English
	}
	if opts.OtpDelay <= 0 {
		opts.OtpDelay = DefaultOtpDelay
	}
	if opts.PromoInterval <= 0 {
		opts.PromoInterval = DefaultPromoInterval
	}
	if opts.Recorder == nil {
		opts.Recorder = journal.Nop{}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Accent))

	return &App{
		ctx:     ctx,
		ctrl:    ctrl,
		opts:    opts,
		keys:    DefaultKeyMap(),
		lang:    opts.Language,
		pub:     newPublisher(ctx, opts.Recorder),
		toast:   NewToast(),
		spinner: s,
		width:   100,
		height:  34,
	}
}

// Init starts the promo rotation on the Welcome screen.
func (a *App) Init() tea.Cmd {
	return a.promoTick()
}

// Close flushes pending journal events. Safe to call more than once.
func (a *App) Close() {
	a.pub.close()
}

// Language returns the active display language.
func (a *App) Language() i18n.Lang {
	return a.lang
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyPressMsg:
		cmd := a.handleKeyPress(msg)
		if a.quitting {
			return a, cmd
		}
		return a, tea.Batch(cmd, a.afterAction())

	case OtpAdvanceMsg:
		if msg.Ticket == a.scheduled {
			a.hasTicket = false
		}
		a.ctrl.AutoAdvance(msg.Ticket)
		return a, a.afterAction()

	case PromoTickMsg:
		if msg.Gen != a.promoGen || a.ctrl.Step() != wizard.StepWelcome {
			return a, nil
		}
		a.promoIdx = (a.promoIdx + 1) % promoCount
		return a, a.promoTick()

	case spinner.TickMsg:
		if !a.ctrl.Snapshot().Verifying {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case HookCompleteMsg:
		if msg.Err != nil {
			logger.Warn("Receipt hooks for %s interrupted: %v", msg.Reference, msg.Err)
		} else if msg.Output != "" {
			logger.Debug("Receipt hooks for %s: %s", msg.Reference, msg.Output)
		}
		return a, nil
	}

	return a, nil
}

// handleKeyPress maps a key onto the controller operation for the current
// step.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, a.keys.Language):
		a.toggleLanguage()
		return nil

	case key.Matches(msg, a.keys.EndSession):
		a.ctrl.EndSession()
		return nil

	case key.Matches(msg, a.keys.Back):
		a.ctrl.Back()
		return nil

	case key.Matches(msg, a.keys.Delete):
		a.ctrl.Delete()
		return nil

	case key.Matches(msg, a.keys.Submit):
		return a.submit()
	}

	step := a.ctrl.Step()
	switch step {
	case wizard.StepBeneficiary:
		switch {
		case key.Matches(msg, a.keys.Up):
			a.moveCursor(-1)
			return nil
		case key.Matches(msg, a.keys.Down):
			a.moveCursor(1)
			return nil
		}
	case wizard.StepAmount:
		switch {
		case key.Matches(msg, a.keys.CurrencyNext):
			a.ctrl.CycleCurrency(1)
			return nil
		case key.Matches(msg, a.keys.CurrencyPrev):
			a.ctrl.CycleCurrency(-1)
			return nil
		}
	}

	if r := []rune(msg.Text); len(r) == 1 {
		a.ctrl.Press(r[0])
	}
	return nil
}

// submit performs the primary action of the current step.
func (a *App) submit() tea.Cmd {
	switch a.ctrl.Step() {
	case wizard.StepWelcome:
		a.ctrl.Start()
	case wizard.StepLogin:
		a.ctrl.SubmitIdentifier()
	case wizard.StepBeneficiary:
		list := a.ctrl.Beneficiaries()
		if a.cursor >= 0 && a.cursor < len(list) {
			a.ctrl.SelectBeneficiary(list[a.cursor].ID)
		}
	case wizard.StepAmount:
		if _, err := a.ctrl.Confirm(); err != nil {
			return a.toast.Show(a.t(i18n.FaultUnknownCurrency))
		}
	case wizard.StepReview:
		a.ctrl.Send()
	case wizard.StepSuccess:
		a.ctrl.CloseSession()
	}
	return nil
}

func (a *App) moveCursor(delta int) {
	n := len(a.ctrl.Beneficiaries())
	if n == 0 {
		return
	}
	a.cursor = (a.cursor + delta + n) % n
}

// afterAction drains controller events into the journal and schedules the
// timers the new state needs.
func (a *App) afterAction() tea.Cmd {
	var cmds []tea.Cmd

	events := a.ctrl.DrainEvents()
	a.pub.enqueue(events)

	for _, e := range events {
		switch e.Kind {
		case wizard.EventStep:
			if e.To == wizard.StepWelcome {
				cmds = append(cmds, a.restartPromos())
			}
		case wizard.EventReset:
			a.cursor = 0
			cmds = append(cmds, a.restartPromos())
		case wizard.EventTransfer:
			if e.Receipt != nil {
				cmds = append(cmds, a.runHooks(*e.Receipt))
			}
		}
	}

	if t, ok := a.ctrl.PendingAdvance(); ok && (!a.hasTicket || t != a.scheduled) {
		a.scheduled = t
		a.hasTicket = true
		cmds = append(cmds,
			tea.Tick(a.opts.OtpDelay, func(time.Time) tea.Msg { return OtpAdvanceMsg{Ticket: t} }),
			a.spinner.Tick,
		)
	}

	return tea.Batch(cmds...)
}

func (a *App) restartPromos() tea.Cmd {
	a.promoGen++
	a.promoIdx = 0
	return a.promoTick()
}

func (a *App) promoTick() tea.Cmd {
	gen := a.promoGen
	return tea.Tick(a.opts.PromoInterval, func(time.Time) tea.Msg {
		return PromoTickMsg{Gen: gen}
	})
}

func (a *App) runHooks(r wizard.Receipt) tea.Cmd {
	if len(a.opts.Hooks) == 0 {
		return nil
	}
	ctx := a.ctx
	hookList := a.opts.Hooks
	workDir := a.opts.WorkDir
	return func() tea.Msg {
		out, err := hooks.ExecuteAll(ctx, hookList, workDir, hooks.ReceiptVariables(r))
		return HookCompleteMsg{Reference: r.Reference, Output: out, Err: err}
	}
}

func (a *App) toggleLanguage() {
	a.lang = a.lang.Next()
	logger.Debug("Language switched to %s", a.lang)
	if a.opts.DataDir == "" {
		return
	}
	ui := state.Load(a.opts.DataDir)
	ui.Language = string(a.lang)
	if err := state.Save(a.opts.DataDir, ui); err != nil {
		logger.Warn("failed to save UI state: %v", err)
	}
}

func (a *App) t(label i18n.Label) string {
	return a.opts.Labels.T(a.lang, label)
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgCrust)
	return view
}

// Draw renders the screen and overlays to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	uv.NewStyledString(a.Render()).Draw(scr, area)
	a.toast.Draw(scr, area)
}
