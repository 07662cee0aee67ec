package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles shared by every screen.
type Styles struct {
	noColor bool

	AppTitle   lipgloss.Style
	PaneTitle  lipgloss.Style
	FocusTitle lipgloss.Style
	Question   lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Score      lipgloss.Style
	Muted      lipgloss.Style
	Status     lipgloss.Style
	StatusWarn lipgloss.Style
	Help       lipgloss.Style
	Preview    lipgloss.Style
	ResultBox  lipgloss.Style
}

// NewStyles builds the style set, honoring the no-color preference.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
		return Styles{
			noColor:    true,
			AppTitle:   plain,
			PaneTitle:  plain,
			FocusTitle: plain,
			Question:   plain,
			Correct:    plain,
			Incorrect:  plain,
			Score:      plain,
			Muted:      plain,
			Status:     plain,
			StatusWarn: plain,
			Help:       plain,
			Preview:    box,
			ResultBox:  box,
		}
	}
	return Styles{
		AppTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		PaneTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		FocusTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Question:   lipgloss.NewStyle().Bold(true),
		Correct:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Incorrect:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Score:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Preview:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		ResultBox:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// tableStyles returns the shared styles for the quiz and question tables.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	return styles
}
