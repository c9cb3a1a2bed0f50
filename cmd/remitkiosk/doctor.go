package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/remitkiosk/internal/config"
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/mark3labs/remitkiosk/internal/hooks"
	"github.com/mark3labs/remitkiosk/internal/i18n"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the kiosk is ready to serve customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := runChecks(cmd.Context())
		fmt.Print(formatChecks(results))
		for _, r := range results {
			if r.Err != nil {
				return fmt.Errorf("%d check(s) failed", countFailed(results))
			}
		}
		return nil
	},
}

// checkResult is the outcome of one doctor check. Notes are informational.
type checkResult struct {
	Name  string
	Err   error
	Notes []string
}

func runChecks(ctx context.Context) []checkResult {
	var results []checkResult

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	results = append(results, checkResult{Name: "config", Err: err})
	if err != nil {
		// Nothing else can be checked without a usable config.
		return results
	}

	results = append(results, checkDirectory(cfg))
	results = append(results, checkDisplay(cfg))
	results = append(results, checkHooks())
	if cfg.Journal.Enabled {
		results = append(results, checkJournal(ctx, cfg))
	}
	return results
}

func checkDirectory(cfg *config.Config) checkResult {
	r := checkResult{Name: "directory"}
	dir, err := directory.Load(cfg.DirectoryFile)
	if err != nil {
		r.Err = err
		return r
	}
	r.Notes = append(r.Notes, fmt.Sprintf("%d beneficiaries, %d currencies",
		len(dir.Beneficiaries()), dir.Rates().Len()))
	r.Notes = append(r.Notes, dir.Problems()...)
	r.Err = cfg.CheckRates(dir.Rates())
	return r
}

func checkDisplay(cfg *config.Config) checkResult {
	r := checkResult{Name: "display"}
	if _, err := theme.Get(cfg.Skin); err != nil {
		r.Err = err
		return r
	}
	if _, err := i18n.ParseLang(cfg.Language); err != nil {
		r.Err = err
		return r
	}
	labels, err := i18n.Load()
	if err != nil {
		r.Err = err
		return r
	}
	if missing := labels.Missing(i18n.Arabic); len(missing) > 0 {
		r.Notes = append(r.Notes, fmt.Sprintf("%d labels fall back to English in Arabic", len(missing)))
	}
	return r
}

func checkHooks() checkResult {
	r := checkResult{Name: "hooks"}
	workDir, err := os.Getwd()
	if err != nil {
		r.Err = err
		return r
	}
	cfg, err := hooks.LoadConfig(workDir)
	switch {
	case err != nil:
		r.Err = err
	case cfg == nil:
		r.Notes = append(r.Notes, "no "+hooks.ConfigFileName)
	default:
		r.Notes = append(r.Notes, fmt.Sprintf("%d on_transfer_sent hook(s)", len(cfg.Hooks.OnTransferSent)))
	}
	return r
}

// checkJournal starts a throwaway journal and replays one event through it.
func checkJournal(ctx context.Context, cfg *config.Config) checkResult {
	r := checkResult{Name: "journal"}

	storeDir, err := os.MkdirTemp("", "remitkiosk-doctor-")
	if err != nil {
		r.Err = err
		return r
	}
	defer os.RemoveAll(storeDir)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	j, err := openJournal(ctx, cfg, storeDir)
	if err != nil {
		r.Err = err
		return r
	}
	defer j.Close()

	if err := j.Record(ctx, wizard.Event{Kind: wizard.EventReset, SessionID: "doctor", At: time.Now()}); err != nil {
		r.Err = err
		return r
	}
	entries, err := j.Load(ctx, cfg.KioskID)
	if err != nil {
		r.Err = err
		return r
	}
	if len(entries) != 1 {
		r.Err = fmt.Errorf("expected 1 journal entry, got %d", len(entries))
	}
	return r
}

func countFailed(results []checkResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func formatChecks(results []checkResult) string {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "✗ %s: %v\n", r.Name, r.Err)
		} else {
			fmt.Fprintf(&b, "✓ %s\n", r.Name)
		}
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "    %s\n", n)
		}
	}
	return b.String()
}
