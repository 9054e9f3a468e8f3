package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "contact-form"
	configFile = "config.yaml"
)

var fileMutex sync.Mutex

// Prefs holds user preferences for the contact form application. It never
// stores form answers - submitted or in-progress form state is deliberately
// not persisted anywhere.
type Prefs struct {
	Version int       `yaml:"version"`
	UI      *UIPrefs  `yaml:"ui,omitempty"`
	Logging *LogPrefs `yaml:"logging,omitempty"`
}

// UIPrefs controls the terminal presentation of the form.
type UIPrefs struct {
	// AccentColor overrides the accent used for the caret, borders, and
	// highlights. Any lipgloss-compatible color string ("#F25D94", "205").
	AccentColor string `yaml:"accent_color,omitempty"`
	// AltScreen controls whether the form takes over the whole terminal.
	AltScreen bool `yaml:"alt_screen"`
	// Mouse enables click-to-refocus on the form surface.
	Mouse bool `yaml:"mouse"`
}

// LogPrefs mirrors the CONTACT_FORM_LOG_LEVEL environment variable for
// users who prefer a config file over env vars. The env var wins when both
// are set.
type LogPrefs struct {
	Level string `yaml:"level,omitempty"`
}

// NewPrefs returns preferences with defaults applied.
func NewPrefs() *Prefs {
	return &Prefs{
		Version: 1,
		UI: &UIPrefs{
			AltScreen: true,
			Mouse:     true,
		},
		Logging: &LogPrefs{},
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the
// application:
//   - Linux: $XDG_CONFIG_HOME/contact-form or $HOME/.config/contact-form
//   - macOS: $HOME/.config/contact-form
//   - Windows: %LOCALAPPDATA%\contact-form
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads preferences from disk. A missing file yields defaults; an
// unreadable or unparseable file is an error so the caller can decide
// whether to warn and continue.
func Load() (*Prefs, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return loadFromFile(configPath)
}

func loadFromFile(path string) (*Prefs, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewPrefs(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var prefs Prefs
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if prefs.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", prefs.Version)
	}

	if prefs.UI == nil {
		prefs.UI = NewPrefs().UI
	}
	if prefs.Logging == nil {
		prefs.Logging = &LogPrefs{}
	}

	return &prefs, nil
}

// Save writes the preferences to disk atomically.
func (p *Prefs) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return p.saveToFile(configPath)
}

func (p *Prefs) saveToFile(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Contact form preferences.
# This file stores presentation preferences only. Form answers are never
# written to disk.

`)
	data = append(header, data...)

	// Write to temporary file first, then rename (atomic on all platforms).
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefault writes a default preferences file, for first-time setup.
func CreateDefault() error {
	return NewPrefs().Save()
}
