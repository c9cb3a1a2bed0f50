package main

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/mark3labs/remitkiosk/internal/config"
	"github.com/mark3labs/remitkiosk/internal/directory"
	"github.com/spf13/cobra"
)

var directoryFlags struct {
	file string
	raw  bool
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "List beneficiaries and exchange rates",
	Long: `Print the beneficiary directory and rate table the kiosk prices against.

Uses the configured directory_file, or the bundled directory when none is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := directoryFlags.file
		if !cmd.Flags().Changed("file") {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.DirectoryFile
		}

		dir, err := directory.Load(path)
		if err != nil {
			return err
		}

		md := directoryMarkdown(dir)
		if directoryFlags.raw {
			fmt.Print(md)
			return nil
		}
		fmt.Println(renderMarkdown(md, 100))
		return nil
	},
}

func init() {
	directoryCmd.Flags().StringVarP(&directoryFlags.file, "file", "f", "", "Directory file (default: configured or bundled)")
	directoryCmd.Flags().BoolVar(&directoryFlags.raw, "raw", false, "Print markdown without rendering")
}

// directoryMarkdown renders beneficiaries and rates as markdown tables.
func directoryMarkdown(dir *directory.Directory) string {
	var b strings.Builder

	b.WriteString("## Beneficiaries\n\n")
	b.WriteString("| ID | Name | Country | Bank | Account | Currency |\n")
	b.WriteString("|----|------|---------|------|---------|----------|\n")
	for _, ben := range dir.Beneficiaries() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			ben.ID, ben.Name, ben.Country, ben.BankName, ben.AccountNumber, ben.Currency)
	}

	b.WriteString("\n## Exchange rates\n\n")
	b.WriteString("| Currency | Rate |\n")
	b.WriteString("|----------|------|\n")
	rates := dir.Rates()
	for _, code := range rates.Currencies() {
		rate, _ := rates.Rate(code)
		fmt.Fprintf(&b, "| %s | %s |\n", code, rate.String())
	}

	if problems := dir.Problems(); len(problems) > 0 {
		b.WriteString("\n## Problems\n\n")
		for _, p := range problems {
			b.WriteString("- " + p + "\n")
		}
	}

	return b.String()
}

// renderMarkdown renders markdown for the terminal using glamour.
// Falls back to the raw markdown if rendering fails.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}
