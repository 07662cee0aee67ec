package domain

// NumOptions is the fixed number of answer options on every question.
// Option positions map onto the answer labels A through D.
const NumOptions = 4

// Question represents a single four-option multiple-choice question
type Question struct {
	QuestionText string
	Options      []string
	CorrectIndex int
}

// NewQuestion creates a new Question instance. Construction always succeeds:
// the options are normalized to exactly NumOptions entries and an
// out-of-range correct index falls back to 0.
func NewQuestion(questionText string, options []string, correctIndex int) *Question {
	return &Question{
		QuestionText: questionText,
		Options:      NormalizeOptions(options),
		CorrectIndex: NormalizeCorrectIndex(correctIndex),
	}
}

// NewEmptyQuestion creates a blank question for an editor to fill in.
func NewEmptyQuestion() *Question {
	return NewQuestion("", nil, 0)
}

// NormalizeOptions copies options into a slice of exactly NumOptions entries,
// right-padding with empty strings or truncating as needed.
func NormalizeOptions(options []string) []string {
	normalized := make([]string, NumOptions)
	copy(normalized, options)
	return normalized
}

// NormalizeCorrectIndex resets an out-of-range correct index to 0.
func NormalizeCorrectIndex(index int) int {
	if index < 0 || index >= NumOptions {
		return 0
	}
	return index
}

// IsCorrect reports whether the selected option index is the correct answer.
// No bounds check: an unanswered sentinel such as -1 never matches because
// the correct index always lies within [0, NumOptions).
func (q *Question) IsCorrect(selectedIndex int) bool {
	return selectedIndex == q.CorrectIndex
}
