package hooks

// Config is the top-level configuration for hooks loaded from .remitkiosk.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// OnTransferSent runs after a transfer reaches the Success step,
	// e.g. to print a paper receipt.
	OnTransferSent []*HookConfig `yaml:"on_transfer_sent"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 30
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
