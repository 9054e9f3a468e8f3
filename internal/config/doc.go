// Package config provides user preferences for the contact form.
//
// This package manages a small YAML file holding presentation preferences
// (accent color, alt-screen, mouse support) and an optional log level. The
// file lives in the platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/contact-form/config.yaml or $HOME/.config/contact-form/config.yaml
//   - macOS: $HOME/.config/contact-form/config.yaml
//   - Windows: %LOCALAPPDATA%\contact-form\config.yaml
//
// Form answers are never persisted here or anywhere else: the file stores
// how the form looks, not what was typed into it.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    // warn and fall back to defaults
//	    prefs = config.NewPrefs()
//	}
//	if prefs.UI.AccentColor != "" {
//	    tui.SetAccentColor(prefs.UI.AccentColor)
//	}
package config
