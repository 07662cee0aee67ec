package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmKind identifies what a confirmation will delete.
type confirmKind int

const (
	confirmQuiz confirmKind = iota
	confirmQuestion
)

// confirmState is a modal yes/no prompt.
type confirmState struct {
	kind   confirmKind
	index  int
	prompt string
}

// askDeleteQuiz opens the delete confirmation for the selected quiz.
func (m Model) askDeleteQuiz() (tea.Model, tea.Cmd) {
	if m.library.Count() == 0 {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}
	m.confirm = confirmState{
		kind:   confirmQuiz,
		index:  m.browse.quizTable.Cursor(),
		prompt: "Are you sure you want to delete this quiz?",
	}
	m.screen = screenConfirm
	return m, nil
}

// askDeleteQuestion opens the delete confirmation for the selected question.
func (m Model) askDeleteQuestion() (tea.Model, tea.Cmd) {
	quiz := m.selectedQuiz()
	if quiz == nil {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}
	if quiz.QuestionCount() == 0 {
		m.setStatus(statusWarn, msgSelectQuestion)
		return m, nil
	}
	m.confirm = confirmState{
		kind:   confirmQuestion,
		index:  m.browse.questionTable.Cursor(),
		prompt: "Are you sure you want to delete this question?",
	}
	m.screen = screenConfirm
	return m, nil
}

// updateConfirm handles the yes/no dialog.
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.applyConfirmed()
		m.screen = screenBrowse
	case "n", "N", "esc":
		m.screen = screenBrowse
	}
	return m, nil
}

// applyConfirmed performs the confirmed deletion and resets the selection.
func (m *Model) applyConfirmed() {
	switch m.confirm.kind {
	case confirmQuiz:
		m.library.RemoveQuiz(m.confirm.index)
		m.browse.quizTable.SetCursor(0)
	case confirmQuestion:
		if quiz := m.selectedQuiz(); quiz != nil {
			quiz.RemoveQuestion(m.confirm.index)
		}
	}
	m.refreshQuizRows()
	m.refreshQuestionRows()
}

// viewConfirm renders the delete confirmation dialog.
func (m Model) viewConfirm() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AppTitle.Render("Confirm Delete"),
		"",
		m.confirm.prompt,
		"",
		m.styles.Help.Render("y yes  n no"),
	)
}
