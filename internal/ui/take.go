package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/domain"
)

// takeState is the active quiz-taking session plus the highlighted option.
type takeState struct {
	attempt *domain.Attempt
	cursor  int
}

// startTake begins an attempt on the selected quiz.
func (m Model) startTake() (tea.Model, tea.Cmd) {
	if m.library.Count() == 0 {
		m.setStatus(statusWarn, msgSelectQuiz)
		return m, nil
	}
	attempt, err := m.library.StartAttempt(m.browse.quizTable.Cursor())
	if err != nil {
		m.setStatus(statusWarn, msgNoQuestions)
		return m, nil
	}
	m.take = takeState{attempt: attempt}
	m.syncTakeCursor()
	m.screen = screenTake
	return m, nil
}

// syncTakeCursor points the option cursor at the recorded answer, if any.
func (m *Model) syncTakeCursor() {
	answer := m.take.attempt.Answer(m.take.attempt.CurrentIndex())
	if answer == domain.UnansweredIndex {
		m.take.cursor = 0
		return
	}
	m.take.cursor = answer
}

// updateTake handles the quiz-taking screen. Answering the last question
// submits the attempt, as does "S" from anywhere in the quiz.
func (m Model) updateTake(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}
	switch keyMsg.String() {
	case "esc":
		m.screen = screenBrowse
		return m, nil
	case "up", "k":
		if m.take.cursor > 0 {
			m.take.cursor--
		}
	case "down", "j":
		if m.take.cursor < domain.NumOptions-1 {
			m.take.cursor++
		}
	case "enter", " ":
		m.take.attempt.Select(m.take.cursor)
		if m.take.attempt.AtLast() {
			return m.finishTake()
		}
		m.take.attempt.Next()
		m.syncTakeCursor()
	case "a", "b", "c", "d":
		m.take.attempt.Select(int(keyMsg.String()[0] - 'a'))
		if m.take.attempt.AtLast() {
			return m.finishTake()
		}
		m.take.attempt.Next()
		m.syncTakeCursor()
	case "left", "p":
		if m.take.attempt.Prev() {
			m.syncTakeCursor()
		}
	case "right", "n":
		if m.take.attempt.AtLast() {
			return m.finishTake()
		}
		m.take.attempt.Next()
		m.syncTakeCursor()
	case "S":
		return m.finishTake()
	}
	return m, nil
}

// finishTake submits the attempt and switches to the results screen.
func (m Model) finishTake() (tea.Model, tea.Cmd) {
	result := m.take.attempt.Submit()
	m.results = newResultsState(result, m.styles, m.width, m.height)
	m.screen = screenResults
	return m, nil
}

// viewTake renders the quiz-taking screen.
func (m Model) viewTake() string {
	attempt := m.take.attempt
	question := attempt.Current()

	parts := []string{m.styles.AppTitle.Render("Take Quiz: " + attempt.Quiz.Title)}
	if attempt.Quiz.Description != "" {
		parts = append(parts, m.styles.Muted.Render(attempt.Quiz.Description))
	}
	parts = append(parts,
		"",
		ProgressLine(attempt.CurrentIndex(), attempt.Total()),
		"",
		m.styles.Question.Render(question.QuestionText),
		"",
	)

	answer := attempt.Answer(attempt.CurrentIndex())
	for i, option := range question.Options {
		cursor := "  "
		if m.take.cursor == i {
			cursor = "> "
		}
		marker := "( ) "
		if answer == i {
			marker = "(*) "
		}
		line := cursor + marker + OptionLine(i, option)
		if answer == i {
			line = m.styles.FocusTitle.Render(line)
		}
		parts = append(parts, line)
	}

	next := "n next"
	if attempt.AtLast() {
		next = "n finish"
	}
	parts = append(parts,
		"",
		m.statusLine(),
		m.styles.Help.Render("up/down choose  enter answer  p prev  "+next+"  S submit  esc cancel"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
