package theme

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the skin used when none is configured.
const DefaultName = "unimoni"

var (
	mu       sync.RWMutex
	registry = map[string]func() *Theme{}
	current  *Theme
)

func init() {
	Register("unimoni", NewUnimoni)
	Register("midnight", NewMidnight)
	Register("desert", NewDesert)
	Register("mocha", NewCatppuccinMocha)
}

// Register adds a skin constructor under name, replacing any previous one.
func Register(name string, fn func() *Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

// Names returns the registered skin names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds a fresh theme for the named skin.
func Get(name string) (*Theme, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown skin %q (available: %v)", name, Names())
	}
	return fn(), nil
}

// SetCurrent makes the named skin current.
func SetCurrent(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	mu.Lock()
	current = t
	mu.Unlock()
	return nil
}

// Current returns the active theme, falling back to the default skin.
func Current() *Theme {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = registry[DefaultName]()
	}
	return current
}
