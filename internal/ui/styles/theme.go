// Package styles provides shared lipgloss styles for ghqmv output.
//
// Colors come from the active [Theme]; call [SetTheme] once at startup with
// the configured theme name.
package styles

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for styled output
type Theme struct {
	Primary color.Color // labels, prompt text
	Success color.Color // success line
	Error   color.Color // error messages
	Warning color.Color // warnings (force fallback)
	Muted   color.Color // secondary text
}

var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Muted:   lipgloss.Color("240"), // dark gray
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#ebcb8b"),
		Muted:   lipgloss.Color("#4c566a"),
	}

	// NoneTheme renders without colors, keeping bold
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	"default": DefaultTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"default", "nord", "none"}

var current = DefaultTheme

// SetTheme activates the named theme. Empty selects the default.
func SetTheme(name string) error {
	if name == "" {
		current = DefaultTheme
		return nil
	}
	t, ok := themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	current = t
	return nil
}

// Current returns the active theme.
func Current() Theme {
	return current
}

// LabelStyle is used for "Source path:" style labels.
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(current.Primary)
}

// SuccessStyle is used for the final confirmation line.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Success)
}

// WarningStyle is used for warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Warning)
}

// MutedStyle is used for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Muted)
}
