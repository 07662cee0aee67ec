package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"quizdesk/internal/service"
)

// screen identifies which view the model is presenting.
type screen int

const (
	screenBrowse screen = iota
	screenQuizForm
	screenQuestionForm
	screenConfirm
	screenPathPrompt
	screenTake
	screenResults
)

// statusKind distinguishes informational from warning status messages.
type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
)

// statusMessage is the transient feedback line under the active view.
type statusMessage struct {
	text string
	kind statusKind
}

// Model is the root Bubble Tea model for the application. All quiz state
// lives in the library; the model only holds view state. Service calls run
// synchronously inside Update, which Bubble Tea serializes, so the whole
// session stays single-threaded.
type Model struct {
	library *service.QuizLibrary
	styles  Styles

	width  int
	height int

	screen screen
	status statusMessage

	browse       browseState
	quizForm     quizFormState
	questionForm questionFormState
	confirm      confirmState
	pathPrompt   pathPromptState
	take         takeState
	results      resultsState
}

// New constructs the root model over a loaded quiz library.
func New(library *service.QuizLibrary, noColor bool) Model {
	styles := NewStyles(noColor)
	m := Model{
		library: library,
		styles:  styles,
		screen:  screenBrowse,
		browse:  newBrowseState(styles.noColor),
	}
	m.refreshQuizRows()
	m.refreshQuestionRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model, dispatching to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenQuizForm:
		return m.updateQuizForm(msg)
	case screenQuestionForm:
		return m.updateQuestionForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenPathPrompt:
		return m.updatePathPrompt(msg)
	case screenTake:
		return m.updateTake(msg)
	case screenResults:
		return m.updateResults(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenBrowse:
		return m.viewBrowse()
	case screenQuizForm:
		return m.viewQuizForm()
	case screenQuestionForm:
		return m.viewQuestionForm()
	case screenConfirm:
		return m.viewConfirm()
	case screenPathPrompt:
		return m.viewPathPrompt()
	case screenTake:
		return m.viewTake()
	case screenResults:
		return m.viewResults()
	}
	return ""
}

// resize adapts the tables and the results viewport to the terminal size.
func (m *Model) resize() {
	quizWidth := max(24, m.width/3)
	questionWidth := max(30, m.width-quizWidth-4)
	tableHeight := max(5, m.height-14)

	m.browse.quizTable.SetColumns([]table.Column{{Title: "Quizzes", Width: quizWidth - 2}})
	m.browse.quizTable.SetWidth(quizWidth)
	m.browse.quizTable.SetHeight(tableHeight)

	m.browse.questionTable.SetColumns([]table.Column{{Title: "Questions", Width: questionWidth - 2}})
	m.browse.questionTable.SetWidth(questionWidth)
	m.browse.questionTable.SetHeight(tableHeight)

	m.results.viewport.Width = max(40, m.width-4)
	m.results.viewport.Height = max(10, m.height-7)
}

// setStatus replaces the status line.
func (m *Model) setStatus(kind statusKind, text string) {
	m.status = statusMessage{text: text, kind: kind}
}

// clearStatus removes the status line.
func (m *Model) clearStatus() {
	m.status = statusMessage{}
}

// statusLine renders the transient status message, if any.
func (m Model) statusLine() string {
	if m.status.text == "" {
		return ""
	}
	if m.status.kind == statusWarn {
		return m.styles.StatusWarn.Render(m.status.text)
	}
	return m.styles.Status.Render(m.status.text)
}

// Messages shared by the guard paths, matching the desktop-era wording.
const (
	msgSelectQuiz     = "Please select a quiz first!"
	msgSelectQuestion = "Please select a question first!"
	msgNoQuestions    = "Selected quiz has no questions!"
	msgAllSaved       = "All quizzes saved successfully!"
)
