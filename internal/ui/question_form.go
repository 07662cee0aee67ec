package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/domain"
)

// correctFieldIndex is the focus slot of the correct-answer selector,
// after the question textarea (0) and the four option inputs (1..4).
const correctFieldIndex = domain.NumOptions + 1

// questionFormState edits one question's text, options and correct answer.
type questionFormState struct {
	text      textarea.Model
	options   [domain.NumOptions]textinput.Model
	correct   int
	focus     int
	editIndex int
}

// openQuestionForm opens the question editor; an editIndex of -1 adds a
// question to the selected quiz. Blank fields are accepted as-is.
func (m Model) openQuestionForm(editIndex int) (tea.Model, tea.Cmd) {
	quiz := m.selectedQuiz()
	if quiz == nil {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}

	text := textarea.New()
	text.Placeholder = "Question text"
	text.SetWidth(60)
	text.SetHeight(4)
	text.ShowLineNumbers = false

	var options [domain.NumOptions]textinput.Model
	for i := range options {
		input := textinput.New()
		input.Placeholder = "Option " + OptionLetter(i)
		input.CharLimit = 200
		input.Width = 50
		options[i] = input
	}

	question := domain.NewEmptyQuestion()
	if editIndex >= 0 {
		question = quiz.QuestionAt(editIndex)
		if question == nil {
			m.setStatus(statusWarn, msgSelectQuestion)
			return m, nil
		}
	}
	text.SetValue(question.QuestionText)
	for i, option := range question.Options {
		options[i].SetValue(option)
	}
	correct := question.CorrectIndex

	cmd := text.Focus()
	m.questionForm = questionFormState{text: text, options: options, correct: correct, editIndex: editIndex}
	m.screen = screenQuestionForm
	return m, cmd
}

// openQuestionFormForSelected opens the editor for the highlighted question.
func (m Model) openQuestionFormForSelected() (tea.Model, tea.Cmd) {
	quiz := m.selectedQuiz()
	if quiz == nil {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}
	if quiz.QuestionCount() == 0 {
		m.setStatus(statusWarn, msgSelectQuestion)
		return m, nil
	}
	return m.openQuestionForm(m.browse.questionTable.Cursor())
}

// updateQuestionForm handles the question editor keys.
func (m Model) updateQuestionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenBrowse
			return m, nil
		case "ctrl+s":
			return m.saveQuestionForm()
		case "tab":
			return m.focusQuestionField(m.questionForm.focus + 1)
		case "shift+tab":
			return m.focusQuestionField(m.questionForm.focus - 1)
		case "enter":
			if m.questionForm.focus == correctFieldIndex {
				return m.saveQuestionForm()
			}
			if m.questionForm.focus > 0 {
				return m.focusQuestionField(m.questionForm.focus + 1)
			}
			// enter in the textarea inserts a newline
		case "left", "right", "1", "2", "3", "4":
			if m.questionForm.focus == correctFieldIndex {
				m.moveCorrectSelection(keyMsg.String())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.questionForm.focus == 0:
		m.questionForm.text, cmd = m.questionForm.text.Update(msg)
	case m.questionForm.focus <= domain.NumOptions:
		i := m.questionForm.focus - 1
		m.questionForm.options[i], cmd = m.questionForm.options[i].Update(msg)
	}
	return m, cmd
}

// focusQuestionField moves focus to the field at target, wrapping around.
func (m Model) focusQuestionField(target int) (tea.Model, tea.Cmd) {
	const fieldCount = correctFieldIndex + 1
	target = (target + fieldCount) % fieldCount

	m.questionForm.text.Blur()
	for i := range m.questionForm.options {
		m.questionForm.options[i].Blur()
	}
	m.questionForm.focus = target

	switch {
	case target == 0:
		cmd := m.questionForm.text.Focus()
		return m, cmd
	case target <= domain.NumOptions:
		cmd := m.questionForm.options[target-1].Focus()
		return m, cmd
	}
	return m, nil
}

// moveCorrectSelection adjusts the correct-answer choice on the selector row.
func (m *Model) moveCorrectSelection(key string) {
	switch key {
	case "left":
		if m.questionForm.correct > 0 {
			m.questionForm.correct--
		}
	case "right":
		if m.questionForm.correct < domain.NumOptions-1 {
			m.questionForm.correct++
		}
	default:
		m.questionForm.correct = int(key[0] - '1')
	}
}

// saveQuestionForm commits the editor into the selected quiz.
func (m Model) saveQuestionForm() (tea.Model, tea.Cmd) {
	quiz := m.selectedQuiz()
	if quiz == nil {
		m.screen = screenBrowse
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}

	options := make([]string, domain.NumOptions)
	for i := range m.questionForm.options {
		options[i] = m.questionForm.options[i].Value()
	}
	question := domain.NewQuestion(m.questionForm.text.Value(), options, m.questionForm.correct)

	if m.questionForm.editIndex >= 0 {
		quiz.SetQuestion(m.questionForm.editIndex, question)
	} else {
		quiz.AddQuestion(question)
	}

	m.refreshQuizRows()
	m.refreshQuestionRows()
	if m.questionForm.editIndex >= 0 {
		m.browse.questionTable.SetCursor(m.questionForm.editIndex)
	} else {
		m.browse.questionTable.SetCursor(quiz.QuestionCount() - 1)
	}
	m.screen = screenBrowse
	return m, nil
}

// viewQuestionForm renders the question editor.
func (m Model) viewQuestionForm() string {
	parts := []string{
		m.styles.AppTitle.Render("Edit Question"),
		"",
		"Question:",
		m.questionForm.text.View(),
		"",
		"Options (select correct answer):",
	}
	for i := range m.questionForm.options {
		marker := "( )"
		if m.questionForm.correct == i {
			marker = m.styles.Correct.Render("(*)")
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, marker+" ", m.questionForm.options[i].View()))
	}

	selector := "Correct answer: " + OptionLetter(m.questionForm.correct)
	if m.questionForm.focus == correctFieldIndex {
		selector = m.styles.FocusTitle.Render("> " + selector + "  (left/right or 1-4)")
	} else {
		selector = m.styles.Muted.Render(selector)
	}
	parts = append(parts,
		"",
		selector,
		"",
		m.statusLine(),
		m.styles.Help.Render("tab next field  ctrl+s save  esc cancel"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
