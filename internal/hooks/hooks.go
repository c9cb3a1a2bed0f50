package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".remitkiosk.hooks.yml"

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", configPath)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d, on_transfer_sent: %d)",
		configPath, cfg.Version, len(cfg.Hooks.OnTransferSent))
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Reference      string
	Kiosk          string
	Session        string
	Beneficiary    string
	Amount         string
	Currency       string
	ReceiverGets   string
	TargetCurrency string
}

// ReceiptVariables builds hook variables from a sent transfer. Amounts use
// the same fraction digits as the Review screen.
func ReceiptVariables(r wizard.Receipt) Variables {
	s := r.Summary
	return Variables{
		Reference:      r.Reference,
		Kiosk:          r.KioskID,
		Session:        r.SessionID,
		Beneficiary:    s.Beneficiary.Name,
		Amount:         s.Amount.StringFixed(3),
		Currency:       s.BaseCurrency,
		ReceiverGets:   s.ReceiverGets.StringFixed(2),
		TargetCurrency: s.Beneficiary.Currency,
	}
}

// Execute runs a hook command and returns its output.
// Template variables in the command ({{reference}}, {{amount}}, ...) are
// expanded as quoted shell words before execution and also exported as
// REMITKIOSK_* environment variables. On error, returns an error message as output
// and nil error (graceful degradation). Only returns error for context
// cancellation.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), vars.Env()...)
	// Children of sh may keep the output pipes open past the kill.
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()), nil
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		output := stdout.String()
		if stderr.Len() > 0 {
			output += "\n[stderr]\n" + stderr.String()
		}
		return fmt.Sprintf("[Hook command failed: %v]\n%s", err, output), nil
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return output, nil
}

// ExecuteAll runs hooks in order and concatenates their output. A failing
// hook does not stop the ones after it.
func ExecuteAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var outputs []string
	for _, hook := range hooks {
		out, err := Execute(ctx, hook, workDir, vars)
		if err != nil {
			return strings.Join(outputs, "\n"), err
		}
		if out != "" {
			outputs = append(outputs, out)
		}
	}
	return strings.Join(outputs, "\n"), nil
}

// placeholders pairs each {{name}} with its value and environment variable.
func (v Variables) placeholders() [][3]string {
	return [][3]string{
		{"reference", v.Reference, "REMITKIOSK_REFERENCE"},
		{"kiosk", v.Kiosk, "REMITKIOSK_KIOSK"},
		{"session", v.Session, "REMITKIOSK_SESSION"},
		{"beneficiary", v.Beneficiary, "REMITKIOSK_BENEFICIARY"},
		{"amount", v.Amount, "REMITKIOSK_AMOUNT"},
		{"currency", v.Currency, "REMITKIOSK_CURRENCY"},
		{"receiver_gets", v.ReceiverGets, "REMITKIOSK_RECEIVER_GETS"},
		{"target_currency", v.TargetCurrency, "REMITKIOSK_TARGET_CURRENCY"},
	}
}

// Env returns the variables as REMITKIOSK_* environment entries.
func (v Variables) Env() []string {
	ph := v.placeholders()
	env := make([]string, 0, len(ph))
	for _, p := range ph {
		env = append(env, p[2]+"="+p[1])
	}
	return env
}

// expandVariables replaces {{variable}} placeholders in the command string.
// Each value becomes one single-quoted shell word, so directory data never
// reaches the shell as syntax. Quotes written around a placeholder are
// absorbed: '{{beneficiary}}' and "{{beneficiary}}" expand like
// {{beneficiary}}. Inside a longer quoted string use the environment
// variable instead, e.g. "Sent to $REMITKIOSK_BENEFICIARY".
func expandVariables(command string, vars Variables) string {
	var pairs []string
	for _, p := range vars.placeholders() {
		name, quoted := "{{"+p[0]+"}}", shellQuote(p[1])
		pairs = append(pairs,
			"'"+name+"'", quoted,
			`"`+name+`"`, quoted,
			name, quoted,
		)
	}
	return strings.NewReplacer(pairs...).Replace(command)
}

// shellQuote wraps s in single quotes for sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
