package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ █▀▀ █▀▄▀█ █ ▀█▀   █▄▀ █ █▀█ █▀ █▄▀"
	logoText2 = "█▀▄ ██▄ █ ▀ █ █  █    █ █ █ █▄█ ▄█ █ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "remitkiosk",
	Short: "Self-service money transfer kiosk for the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewUnimoni()
	line1 := theme.ApplyGradient(logoText1, t.Secondary, t.Accent)
	line2 := theme.ApplyGradient(logoText2, t.Secondary, t.Accent)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

remitkiosk runs a touch-style money transfer wizard in the terminal: identify,
verify a one-time code, pick a beneficiary, enter an amount, review and send.
Every transfer is priced against a local rate table with a flat fee, kiosk
activity is journaled to an embedded NATS JetStream stream, and receipt hooks
can hand each sent transfer to a printer or any other command.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(directoryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
}
