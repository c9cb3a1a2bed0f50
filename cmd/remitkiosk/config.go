package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/remitkiosk/internal/config"
	"github.com/spf13/cobra"
)

var configFlags struct {
	plain  bool
	global bool
	force  bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit kiosk configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		if configFlags.plain {
			fmt.Print(string(data))
			return nil
		}
		fmt.Println(highlightYAML(string(data)))
		return nil
	},
}

var configDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show how the effective configuration differs from the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		diff, err := diffConfigs(config.Defaults(), cfg)
		if err != nil {
			return err
		}
		if diff == "" {
			fmt.Println("No differences from defaults")
			return nil
		}
		fmt.Print(diff)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !configFlags.force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := writeConfig(config.Defaults()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := writeConfig(config.Defaults()); err != nil {
				return err
			}
		}

		c, err := editor.Command("remitkiosk", path)
		if err != nil {
			return fmt.Errorf("failed to prepare editor: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("editor exited: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config no longer loads: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config saved but invalid: %w", err)
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configFlags.plain, "plain", false, "Print without syntax highlighting")
	configInitCmd.Flags().BoolVar(&configFlags.force, "force", false, "Overwrite an existing file")
	configCmd.PersistentFlags().BoolVar(&configFlags.global, "global", false, "Use the global config file instead of ./remitkiosk.yml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDiffCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
}

func configPath() string {
	if configFlags.global {
		return config.GlobalPath()
	}
	return config.ProjectPath()
}

func writeConfig(cfg *config.Config) error {
	if configFlags.global {
		return config.WriteGlobal(cfg)
	}
	return config.WriteProject(cfg)
}

// diffConfigs returns a unified diff between two configurations, or ""
// when they render identically.
func diffConfigs(base, effective *config.Config) (string, error) {
	a, err := base.Marshal()
	if err != nil {
		return "", err
	}
	b, err := effective.Marshal()
	if err != nil {
		return "", err
	}
	return udiff.Unified("defaults", "effective", string(a), string(b)), nil
}

// highlightYAML colors YAML for true color terminals. Returns the input
// unchanged if highlighting fails.
func highlightYAML(source string) string {
	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}
