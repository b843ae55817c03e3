package domain

import "strconv"

// Theme is the light/dark presentation flag.
type Theme struct {
	Dark bool `json:"dark"`
}

// ParseTheme reads the persisted flag. Anything but "true" is light.
func ParseTheme(raw string) Theme {
	return Theme{Dark: raw == "true"}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme { return Theme{Dark: !t.Dark} }

// String is the persisted form.
func (t Theme) String() string { return strconv.FormatBool(t.Dark) }

// Class is the body CSS class for the theme.
func (t Theme) Class() string {
	if t.Dark {
		return "dark-mode"
	}
	return ""
}

// Icon is the toggle button glyph; it shows the mode a click switches to.
func (t Theme) Icon() string {
	if t.Dark {
		return "☀️"
	}
	return "🌙"
}
