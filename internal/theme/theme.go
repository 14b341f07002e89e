// Package theme resolves light and dark display styles.
package theme

import (
	"encoding/json"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskpad/internal/kvstore"
)

// ModeKey is the persistence key for the theme flag (true means dark).
const ModeKey = "theme_mode"

// Palette holds the colors for one mode.
type Palette struct {
	Primary  lipgloss.Color
	Text     lipgloss.Color
	Subtle   lipgloss.Color
	Danger   lipgloss.Color
	Low      lipgloss.Color
	Medium   lipgloss.Color
	High     lipgloss.Color
	BarText  lipgloss.Color
	BarFill  lipgloss.Color
}

// Styles holds the rendered lipgloss styles derived from a palette.
type Styles struct {
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Done      lipgloss.Style
	Normal    lipgloss.Style
	Hint      lipgloss.Style
	Status    lipgloss.Style
	Filter    lipgloss.Style
	Danger    lipgloss.Style
	Priority  map[string]lipgloss.Style
}

var lightPalette = Palette{
	Primary: lipgloss.Color("63"),
	Text:    lipgloss.Color("235"),
	Subtle:  lipgloss.Color("245"),
	Danger:  lipgloss.Color("160"),
	Low:     lipgloss.Color("28"),
	Medium:  lipgloss.Color("130"),
	High:    lipgloss.Color("124"),
	BarText: lipgloss.Color("255"),
	BarFill: lipgloss.Color("63"),
}

var darkPalette = Palette{
	Primary: lipgloss.Color("105"),
	Text:    lipgloss.Color("252"),
	Subtle:  lipgloss.Color("243"),
	Danger:  lipgloss.Color("203"),
	Low:     lipgloss.Color("78"),
	Medium:  lipgloss.Color("214"),
	High:    lipgloss.Color("204"),
	BarText: lipgloss.Color("236"),
	BarFill: lipgloss.Color("105"),
}

func buildStyles(p Palette) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Done:   lipgloss.NewStyle().Foreground(p.Subtle).Strikethrough(true),
		Normal: lipgloss.NewStyle().Foreground(p.Text),
		Hint:   lipgloss.NewStyle().Foreground(p.Subtle).Italic(true),
		Status: lipgloss.NewStyle().Foreground(p.BarText).Background(p.BarFill).Padding(0, 1),
		Filter: lipgloss.NewStyle().Foreground(p.Primary).Italic(true),
		Danger: lipgloss.NewStyle().Foreground(p.Danger).Bold(true),
		Priority: map[string]lipgloss.Style{
			"low":    lipgloss.NewStyle().Foreground(p.Low),
			"medium": lipgloss.NewStyle().Foreground(p.Medium),
			"high":   lipgloss.NewStyle().Foreground(p.High).Bold(true),
		},
	}
}

// Manager owns the theme flag and persists it independently of tasks.
type Manager struct {
	store  kvstore.Store
	logger *log.Logger
	dark   bool
}

// NewManager loads the persisted theme flag. Absent or corrupt values
// fall back to the configured default.
func NewManager(store kvstore.Store, logger *log.Logger, defaultDark bool) *Manager {
	m := &Manager{store: store, logger: logger, dark: defaultDark}

	data, found, err := store.Get(ModeKey)
	if err != nil {
		logger.Warn("could not read saved theme, using default", "err", err)
		return m
	}
	if !found {
		return m
	}
	if err := json.Unmarshal(data, &m.dark); err != nil {
		logger.Warn("saved theme is unreadable, using default", "err", err)
		m.dark = defaultDark
	}
	return m
}

// Dark reports whether dark mode is active.
func (m *Manager) Dark() bool {
	return m.dark
}

// Name returns the display name of the active mode.
func (m *Manager) Name() string {
	if m.dark {
		return "dark"
	}
	return "light"
}

// Flip toggles the mode and persists the new value. Write failures are
// logged and swallowed.
func (m *Manager) Flip() {
	m.dark = !m.dark
	data, err := json.Marshal(m.dark)
	if err != nil {
		m.logger.Warn("could not encode theme", "err", err)
		return
	}
	if err := m.store.Put(ModeKey, data); err != nil {
		m.logger.Warn("could not save theme", "err", err)
	}
}

// Styles returns the styles for the active mode.
func (m *Manager) Styles() Styles {
	if m.dark {
		return buildStyles(darkPalette)
	}
	return buildStyles(lightPalette)
}
