package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pathMode selects what the path prompt will do with its input.
type pathMode int

const (
	pathImport pathMode = iota
	pathExport
)

// pathPromptState prompts for a quiz file path.
type pathPromptState struct {
	input       textinput.Model
	mode        pathMode
	exportIndex int
}

// openPathPrompt opens the import or export path prompt.
func (m Model) openPathPrompt(mode pathMode, exportIndex int) (tea.Model, tea.Cmd) {
	input := textinput.New()
	input.Placeholder = "path/to/quiz.json"
	input.CharLimit = 400
	input.Width = 60
	cmd := input.Focus()

	m.pathPrompt = pathPromptState{input: input, mode: mode, exportIndex: exportIndex}
	m.screen = screenPathPrompt
	return m, cmd
}

// updatePathPrompt handles the file path prompt.
func (m Model) updatePathPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenBrowse
			return m, nil
		case "enter":
			return m.submitPathPrompt()
		}
	}

	var cmd tea.Cmd
	m.pathPrompt.input, cmd = m.pathPrompt.input.Update(msg)
	return m, cmd
}

// submitPathPrompt runs the import or export against the entered path.
func (m Model) submitPathPrompt() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathPrompt.input.Value())
	if path == "" {
		return m, nil
	}
	m.screen = screenBrowse

	switch m.pathPrompt.mode {
	case pathImport:
		quiz, err := m.library.Import(path)
		if err != nil {
			m.setStatus(statusWarn, fmt.Sprintf("Failed to load quiz file: %s", err))
			return m, nil
		}
		m.refreshQuizRows()
		m.refreshQuestionRows()
		m.setStatus(statusInfo, fmt.Sprintf("Quiz '%s' loaded successfully!", quiz.Title))
	case pathExport:
		if err := m.library.Export(m.pathPrompt.exportIndex, path); err != nil {
			m.setStatus(statusWarn, fmt.Sprintf("Failed to export quiz: %s", err))
			return m, nil
		}
		m.setStatus(statusInfo, fmt.Sprintf("Quiz exported to %s", path))
	}
	return m, nil
}

// viewPathPrompt renders the import or export path prompt.
func (m Model) viewPathPrompt() string {
	header := "Open Quiz File"
	if m.pathPrompt.mode == pathExport {
		header = "Export Quiz File"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AppTitle.Render(header),
		"",
		"File path:",
		m.pathPrompt.input.View(),
		m.styles.Muted.Render("Quiz Files (*.json)"),
		"",
		m.statusLine(),
		m.styles.Help.Render("enter confirm  esc cancel"),
	)
}
