package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ShowcaseSettings are persisted across runs. They are global, not
// per-user.
type ShowcaseSettings struct {
	// Display settings
	Fullscreen bool `yaml:"fullscreen"`

	// Paused restores the play/pause state from the previous session.
	Paused bool `yaml:"paused"`
}

// DefaultShowcaseSettings returns the settings used on first run.
func DefaultShowcaseSettings() *ShowcaseSettings {
	return &ShowcaseSettings{
		Fullscreen: false,
		Paused:     false,
	}
}

// SettingsManager loads and saves showcase settings through gdata.
// A nil gdata manager puts it in degraded mode: settings live in
// memory only and Save becomes a no-op.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *ShowcaseSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "showcase"
)

// NewSettingsManager creates a settings manager and loads any
// previously saved settings. A load failure is not fatal; defaults
// are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultShowcaseSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads settings from gdata. Missing storage or a missing file
// falls back to defaults without error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultShowcaseSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultShowcaseSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultShowcaseSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ShowcaseSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultShowcaseSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to gdata. In degraded mode it
// silently succeeds.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Settings returns the in-memory settings. Mutations require Save to
// persist.
func (sm *SettingsManager) Settings() *ShowcaseSettings {
	return sm.settings
}
