package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/domain"
)

// quizFormState edits a quiz's title and description.
type quizFormState struct {
	title       textinput.Model
	description textinput.Model
	focusIndex  int
	editIndex   int
}

// openQuizForm opens the quiz form; an editIndex of -1 creates a new quiz.
func (m Model) openQuizForm(editIndex int) (tea.Model, tea.Cmd) {
	title := textinput.New()
	title.Placeholder = "Quiz title"
	title.CharLimit = 200
	title.Width = 44

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 500
	description.Width = 44

	if editIndex >= 0 {
		quiz := m.library.GetQuiz(editIndex)
		if quiz == nil {
			m.setStatus(statusWarn, msgSelectQuiz)
			return m, nil
		}
		title.SetValue(quiz.Title)
		description.SetValue(quiz.Description)
	}

	cmd := title.Focus()
	m.quizForm = quizFormState{title: title, description: description, editIndex: editIndex}
	m.screen = screenQuizForm
	return m, cmd
}

// openQuizFormForSelected opens the quiz form for the cursor row.
func (m Model) openQuizFormForSelected() (tea.Model, tea.Cmd) {
	if m.library.Count() == 0 {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}
	return m.openQuizForm(m.browse.quizTable.Cursor())
}

// updateQuizForm handles the quiz title and description form.
func (m Model) updateQuizForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenBrowse
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.quizForm.focusIndex = 1 - m.quizForm.focusIndex
			var cmd tea.Cmd
			if m.quizForm.focusIndex == 0 {
				m.quizForm.description.Blur()
				cmd = m.quizForm.title.Focus()
			} else {
				m.quizForm.title.Blur()
				cmd = m.quizForm.description.Focus()
			}
			return m, cmd
		case "enter":
			return m.saveQuizForm()
		}
	}

	var cmd tea.Cmd
	if m.quizForm.focusIndex == 0 {
		m.quizForm.title, cmd = m.quizForm.title.Update(msg)
	} else {
		m.quizForm.description, cmd = m.quizForm.description.Update(msg)
	}
	return m, cmd
}

// saveQuizForm commits the form, requiring a non-empty title.
func (m Model) saveQuizForm() (tea.Model, tea.Cmd) {
	title := m.quizForm.title.Value()
	if title == "" {
		m.setStatus(statusWarn, "Quiz title cannot be empty!")
		return m, nil
	}
	description := m.quizForm.description.Value()

	if m.quizForm.editIndex >= 0 {
		if quiz := m.library.GetQuiz(m.quizForm.editIndex); quiz != nil {
			quiz.Title = title
			quiz.Description = description
		}
	} else {
		m.library.AddQuiz(domain.NewQuiz(title, description))
	}

	m.refreshQuizRows()
	if m.quizForm.editIndex < 0 {
		m.browse.quizTable.SetCursor(m.library.Count() - 1)
		m.refreshQuestionRows()
	}
	m.screen = screenBrowse
	return m, nil
}

// viewQuizForm renders the quiz form.
func (m Model) viewQuizForm() string {
	header := "New Quiz"
	if m.quizForm.editIndex >= 0 {
		header = "Edit Quiz"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AppTitle.Render(header),
		"",
		"Enter quiz title:",
		m.quizForm.title.View(),
		"",
		"Description:",
		m.quizForm.description.View(),
		"",
		m.statusLine(),
		m.styles.Help.Render("enter save  tab switch field  esc cancel"),
	)
}
