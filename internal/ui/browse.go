package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/domain"
)

const (
	defaultQuizPaneWidth     = 34
	defaultQuestionPaneWidth = 58
	defaultTableHeight       = 12
)

// browseState holds the two list panes of the main screen.
type browseState struct {
	quizTable      table.Model
	questionTable  table.Model
	focusQuestions bool
}

// newBrowseState constructs the quiz and question tables.
func newBrowseState(noColor bool) browseState {
	quizzes := table.New(
		table.WithColumns([]table.Column{{Title: "Quizzes", Width: defaultQuizPaneWidth}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	quizzes.SetStyles(tableStyles(noColor))

	questions := table.New(
		table.WithColumns([]table.Column{{Title: "Questions", Width: defaultQuestionPaneWidth}}),
		table.WithRows([]table.Row{}),
		table.WithHeight(defaultTableHeight),
	)
	questions.SetStyles(tableStyles(noColor))

	return browseState{quizTable: quizzes, questionTable: questions}
}

// selectedQuiz returns the quiz under the cursor, or nil when the list is empty.
func (m Model) selectedQuiz() *domain.Quiz {
	return m.library.GetQuiz(m.browse.quizTable.Cursor())
}

// refreshQuizRows rebuilds the quiz table rows from the library.
func (m *Model) refreshQuizRows() {
	rows := make([]table.Row, 0, m.library.Count())
	for _, quiz := range m.library.Quizzes() {
		rows = append(rows, table.Row{QuizListLabel(quiz.Title, quiz.QuestionCount())})
	}
	m.browse.quizTable.SetRows(rows)
	if c := m.browse.quizTable.Cursor(); c < 0 || c >= len(rows) {
		m.browse.quizTable.SetCursor(max(0, len(rows)-1))
	}
}

// refreshQuestionRows rebuilds the question table rows for the selected quiz.
func (m *Model) refreshQuestionRows() {
	rows := []table.Row{}
	if quiz := m.selectedQuiz(); quiz != nil {
		rows = make([]table.Row, 0, quiz.QuestionCount())
		for i, question := range quiz.Questions {
			rows = append(rows, table.Row{QuestionListLabel(i, question.QuestionText)})
		}
	}
	m.browse.questionTable.SetRows(rows)
	if c := m.browse.questionTable.Cursor(); c < 0 || c >= len(rows) {
		m.browse.questionTable.SetCursor(max(0, len(rows)-1))
	}
}

// toggleFocus switches between the quiz and question panes.
func (m *Model) toggleFocus() {
	m.browse.focusQuestions = !m.browse.focusQuestions
	if m.browse.focusQuestions {
		m.browse.quizTable.Blur()
		m.browse.questionTable.Focus()
	} else {
		m.browse.questionTable.Blur()
		m.browse.quizTable.Focus()
	}
}

// updateBrowse handles keys on the two-pane main screen. Action keys are
// matched before the tables see the message; the table keymap binds "d"
// for paging and would otherwise swallow the delete key.
func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}
	m.clearStatus()

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.toggleFocus()
		return m, nil
	case "s":
		if err := m.library.SaveAll(); err != nil {
			m.setStatus(statusWarn, "Failed to save quizzes: "+err.Error())
		} else {
			m.setStatus(statusInfo, msgAllSaved)
		}
		return m, nil
	case "o":
		return m.openPathPrompt(pathImport, -1)
	case "x":
		if m.library.Count() == 0 {
			m.setStatus(statusWarn, msgSelectQuiz)
			return m, nil
		}
		return m.openPathPrompt(pathExport, m.browse.quizTable.Cursor())
	case "t":
		return m.startTake()
	case "a":
		if m.browse.focusQuestions {
			return m.openQuestionForm(-1)
		}
		return m.openQuizForm(-1)
	case "e":
		if m.browse.focusQuestions {
			return m.openQuestionFormForSelected()
		}
		return m.openQuizFormForSelected()
	case "d":
		if m.browse.focusQuestions {
			return m.askDeleteQuestion()
		}
		return m.askDeleteQuiz()
	case "enter":
		if !m.browse.focusQuestions {
			m.toggleFocus()
			return m, nil
		}
		return m.openQuestionFormForSelected()
	}

	if m.browse.focusQuestions {
		var cmd tea.Cmd
		m.browse.questionTable, cmd = m.browse.questionTable.Update(msg)
		return m, cmd
	}
	before := m.browse.quizTable.Cursor()
	var cmd tea.Cmd
	m.browse.quizTable, cmd = m.browse.quizTable.Update(msg)
	if m.browse.quizTable.Cursor() != before {
		m.browse.questionTable.SetCursor(0)
		m.refreshQuestionRows()
	}
	return m, cmd
}

// viewBrowse renders the two-pane main screen.
func (m Model) viewBrowse() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.paneTitle("Quizzes:", !m.browse.focusQuestions),
		m.browse.quizTable.View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.paneTitle("Questions:", m.browse.focusQuestions),
		m.browse.questionTable.View(),
		m.viewPreview(),
	)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AppTitle.Render("Quiz Manager"),
		panes,
		m.statusLine(),
		m.browseHelp(),
	)
}

// paneTitle highlights the caption of the focused pane.
func (m Model) paneTitle(caption string, focused bool) string {
	if focused {
		return m.styles.FocusTitle.Render(caption)
	}
	return m.styles.PaneTitle.Render(caption)
}

// viewPreview renders the preview box for the highlighted question.
func (m Model) viewPreview() string {
	if !m.browse.focusQuestions {
		return ""
	}
	quiz := m.selectedQuiz()
	if quiz == nil {
		return ""
	}
	question := quiz.QuestionAt(m.browse.questionTable.Cursor())
	if question == nil {
		return ""
	}

	lines := make([]string, 0, domain.NumOptions+2)
	lines = append(lines, m.styles.Question.Render("Q: "+question.QuestionText))
	for i, option := range question.Options {
		line := PreviewOptionLine(option, i == question.CorrectIndex)
		if i == question.CorrectIndex {
			line = m.styles.Correct.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, m.styles.Correct.Render(PreviewCorrectLine(question.CorrectIndex)))
	return m.styles.Preview.Render(strings.Join(lines, "\n"))
}

// browseHelp renders the key hints for the focused pane.
func (m Model) browseHelp() string {
	if m.browse.focusQuestions {
		return m.styles.Help.Render("a add  e edit  d delete  tab quizzes  q quit")
	}
	return m.styles.Help.Render("a add  e edit  d delete  t take  o open  x export  s save  tab questions  q quit")
}
