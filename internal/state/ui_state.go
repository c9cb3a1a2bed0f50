// Package state keeps the kiosk's display preferences between runs.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/remitkiosk/internal/logger"
)

const fileName = "ui-state.json"

// UIState holds kiosk display preferences that survive restarts. It never
// holds customer or transfer data.
type UIState struct {
	Language string `json:"language,omitempty"`
	Skin     string `json:"skin,omitempty"`
}

// DefaultUIState returns an empty state; empty fields defer to config.
func DefaultUIState() *UIState {
	return &UIState{}
}

func (s *UIState) normalize() {
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))
	s.Skin = strings.ToLower(strings.TrimSpace(s.Skin))
}

// Path returns the preferences file inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Load reads the preferences saved in dataDir. A missing or unreadable file
// yields the default state.
func Load(dataDir string) *UIState {
	data, err := os.ReadFile(Path(dataDir))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DefaultUIState()
	case err != nil:
		logger.Warn("Ignoring UI state: %v", err)
		return DefaultUIState()
	}

	s := DefaultUIState()
	if err := json.Unmarshal(data, s); err != nil {
		logger.Warn("Ignoring malformed UI state in %s: %v", dataDir, err)
		return DefaultUIState()
	}
	s.normalize()
	return s
}

// Save writes the preferences to dataDir, creating it if needed. The file
// is replaced atomically so a kiosk losing power never leaves half a file.
func Save(dataDir string, s *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	out := *s
	out.normalize()
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	tmp, err := os.CreateTemp(dataDir, fileName+".*")
	if err != nil {
		return fmt.Errorf("writing UI state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing UI state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing UI state: %w", err)
	}
	if err := os.Rename(tmp.Name(), Path(dataDir)); err != nil {
		return fmt.Errorf("replacing UI state: %w", err)
	}

	logger.Debug("UI state saved (language=%q skin=%q)", out.Language, out.Skin)
	return nil
}
