package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// UserConfig holds the player's preferences, kept apart from config.yaml so the
// CLI can rewrite it without touching deployment settings
type UserConfig struct {
	DefaultProduct string   `json:"default_product,omitempty"`
	UnlockedMixers []string `json:"unlocked_mixers,omitempty"` // empty means every mixer
}

// UserConfigHandler reads and rewrites the preferences file
type UserConfigHandler struct {
	path string
}

// NewUserConfigHandler uses ~/.schedule1/preferences.json
func NewUserConfigHandler() (*UserConfigHandler, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(home, ".schedule1", "preferences.json")), nil
}

func NewUserConfigHandlerAt(path string) *UserConfigHandler {
	return &UserConfigHandler{path: path}
}

// Path is the preferences file location
func (h *UserConfigHandler) Path() string {
	return h.path
}

// Load returns empty preferences when the file does not exist yet
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	prefs := &UserConfig{}
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", h.path, err)
	}
	return prefs, nil
}

// Save replaces the file through a rename so readers never see a partial write
func (h *UserConfigHandler) Save(prefs *UserConfig) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.json")
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}

func (h *UserConfigHandler) update(change func(*UserConfig)) error {
	prefs, err := h.Load()
	if err != nil {
		return err
	}
	change(prefs)
	return h.Save(prefs)
}

func (h *UserConfigHandler) SetDefaultProduct(product string) error {
	return h.update(func(p *UserConfig) { p.DefaultProduct = product })
}

// SetUnlockedMixers replaces the unlocked list, dropping repeats
func (h *UserConfigHandler) SetUnlockedMixers(mixers []string) error {
	seen := make(map[string]bool, len(mixers))
	unique := make([]string, 0, len(mixers))
	for _, m := range mixers {
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}
	return h.update(func(p *UserConfig) { p.UnlockedMixers = unique })
}

func (h *UserConfigHandler) Clear() error {
	return h.Save(&UserConfig{})
}
