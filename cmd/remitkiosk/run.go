package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/remitkiosk/internal/config"
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/mark3labs/remitkiosk/internal/hooks"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/journal"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/state"
	"github.com/mark3labs/remitkiosk/internal/tui/kiosk"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/spf13/cobra"
)

var runFlags struct {
	skin         string
	lang         string
	directory    string
	kioskID      string
	fee          string
	baseCurrency string
	noJournal    bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the kiosk",
	Long: `Start the full-screen transfer wizard.

Settings come from remitkiosk.yml (global, then project), REMITKIOSK_* environment
variables and finally the flags below. The display language and skin last used
on this kiosk are remembered in the data directory.`,
	RunE: runKiosk,
}

func init() {
	runCmd.Flags().StringVar(&runFlags.skin, "skin", "", "Skin: unimoni, midnight, desert, mocha")
	runCmd.Flags().StringVar(&runFlags.lang, "lang", "", "Display language: en, ar")
	runCmd.Flags().StringVar(&runFlags.directory, "directory", "", "Beneficiary directory file (default: bundled)")
	runCmd.Flags().StringVar(&runFlags.kioskID, "kiosk-id", "", "Kiosk identifier shown in the header")
	runCmd.Flags().StringVar(&runFlags.fee, "fee", "", "Flat transfer fee in the base currency")
	runCmd.Flags().StringVar(&runFlags.baseCurrency, "base-currency", "", "Currency the customer pays in")
	runCmd.Flags().BoolVar(&runFlags.noJournal, "no-journal", false, "Disable the activity journal")
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ui := state.Load(cfg.DataDir)
	if ui.Language != "" {
		cfg.Language = ui.Language
	}
	if ui.Skin != "" {
		cfg.Skin = ui.Skin
	}

	flags := cmd.Flags()
	if flags.Changed("skin") {
		cfg.Skin = runFlags.skin
	}
	if flags.Changed("lang") {
		cfg.Language = runFlags.lang
	}
	if flags.Changed("directory") {
		cfg.DirectoryFile = runFlags.directory
	}
	if flags.Changed("kiosk-id") {
		cfg.KioskID = runFlags.kioskID
	}
	if flags.Changed("fee") {
		cfg.Fee = runFlags.fee
	}
	if flags.Changed("base-currency") {
		cfg.BaseCurrency = runFlags.baseCurrency
	}
	if flags.Changed("no-journal") {
		cfg.Journal.Enabled = !runFlags.noJournal
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runKiosk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logger.Default.SetPrefix(cfg.KioskID)

	lang, err := i18n.ParseLang(cfg.Language)
	if err != nil {
		return err
	}
	if err := theme.SetCurrent(cfg.Skin); err != nil {
		return err
	}
	if cmd.Flags().Changed("skin") {
		ui := state.Load(cfg.DataDir)
		ui.Skin = cfg.Skin
		if err := state.Save(cfg.DataDir, ui); err != nil {
			logger.Warn("failed to save UI state: %v", err)
		}
	}

	labels, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("failed to load labels: %w", err)
	}

	dir, err := directory.Load(cfg.DirectoryFile)
	if err != nil {
		return err
	}
	if err := cfg.CheckRates(dir.Rates()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fee, err := cfg.FeeAmount()
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		return err
	}
	var receiptHooks []*hooks.HookConfig
	if hooksCfg != nil {
		receiptHooks = hooksCfg.Hooks.OnTransferSent
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorder journal.Recorder = journal.Nop{}
	if cfg.Journal.Enabled {
		j, err := openJournal(ctx, cfg, filepath.Join(cfg.DataDir, "journal"))
		if err != nil {
			// The kiosk keeps serving customers without a journal.
			logger.Error("Journal unavailable: %v", err)
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					logger.Warn("Journal shutdown: %v", err)
				}
			}()
			recorder = j
		}
	}

	ctrl := wizard.New(dir, dir.Rates(), wizard.Options{
		Fee:             fee,
		BaseCurrency:    cfg.BaseCurrency,
		DefaultCurrency: cfg.DefaultCurrency,
		AmountMaxLen:    cfg.AmountMaxLength,
		KioskID:         cfg.KioskID,
	})

	app := kiosk.NewApp(ctx, ctrl, kiosk.Options{
		Labels:        labels,
		Language:      lang,
		KioskID:       cfg.KioskID,
		Version:       version,
		OtpDelay:      cfg.OtpAdvanceDelay,
		PromoInterval: cfg.PromoInterval,
		Recorder:      recorder,
		Hooks:         receiptHooks,
		WorkDir:       workDir,
		DataDir:       cfg.DataDir,
	})
	defer app.Close()

	logger.Info("Kiosk %s starting (skin=%s lang=%s journal=%t)", cfg.KioskID, cfg.Skin, lang, cfg.Journal.Enabled)

	p := tea.NewProgram(app, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("kiosk exited: %w", err)
	}

	logger.Info("Kiosk %s stopped", cfg.KioskID)
	return nil
}

// openJournal starts the embedded journal for the configured kiosk.
func openJournal(ctx context.Context, cfg *config.Config, storeDir string) (*journal.Journal, error) {
	return journal.Open(ctx, journal.Options{KioskID: cfg.KioskID, StoreDir: storeDir})
}
