package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdesk/internal/domain"
)

// resultsState shows a submitted attempt inside a scrollable viewport.
type resultsState struct {
	result   *domain.Result
	viewport viewport.Model
}

// newResultsState builds the results view sized to the current window.
func newResultsState(result *domain.Result, styles Styles, width, height int) resultsState {
	vp := viewport.New(max(40, width-4), max(10, height-7))
	vp.SetContent(renderResultDetails(result, styles))
	vp.GotoTop()
	return resultsState{result: result, viewport: vp}
}

// renderResultDetails formats the per-question breakdown. The correct
// answer is only spelled out for questions answered incorrectly.
func renderResultDetails(result *domain.Result, styles Styles) string {
	var b strings.Builder
	for _, question := range result.Questions {
		b.WriteString(styles.Question.Render(fmt.Sprintf("Q%d: %s", question.Index+1, question.QuestionText)))
		b.WriteString("\n")

		answer := AnswerLine(question)
		if question.Correct {
			b.WriteString(styles.Correct.Render(answer))
		} else {
			b.WriteString(styles.Incorrect.Render(answer))
		}
		b.WriteString("\n")

		if !question.Correct {
			b.WriteString(styles.Correct.Render(CorrectAnswerLine(question)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// updateResults handles the results screen.
func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			m.screen = screenBrowse
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.results.viewport, cmd = m.results.viewport.Update(msg)
	return m, cmd
}

// viewResults renders the score and the scrollable breakdown.
func (m Model) viewResults() string {
	result := m.results.result
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AppTitle.Render("Quiz Results"),
		m.styles.ResultBox.Render(m.styles.Score.Render(ScoreLine(result.Score, result.Total))),
		m.results.viewport.View(),
		m.styles.Help.Render("up/down scroll  enter close"),
	)
}
