package repository

import (
	"strconv"

	"quizdesk/internal/domain"
	"quizdesk/internal/logger"

	"go.uber.org/zap"
)

// questionRecord is the wire form of a question. Field order matches the
// on-disk layout.
type questionRecord struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// quizRecord is the wire form of a quiz, also the layout of a standalone
// quiz file.
type quizRecord struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []questionRecord `json:"questions"`
}

// libraryRecord is the wire form of the aggregate quizzes file.
type libraryRecord struct {
	Quizzes []quizRecord `json:"quizzes"`
}

func toQuestionRecord(q *domain.Question) questionRecord {
	return questionRecord{
		QuestionText: q.QuestionText,
		Options:      append([]string(nil), q.Options...),
		CorrectIndex: q.CorrectIndex,
	}
}

func toQuizRecord(quiz *domain.Quiz) quizRecord {
	record := quizRecord{
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   make([]questionRecord, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		record.Questions = append(record.Questions, toQuestionRecord(q))
	}
	return record
}

func toLibraryRecord(quizzes []*domain.Quiz) libraryRecord {
	record := libraryRecord{
		Quizzes: make([]quizRecord, 0, len(quizzes)),
	}
	for _, quiz := range quizzes {
		record.Quizzes = append(record.Quizzes, toQuizRecord(quiz))
	}
	return record
}

// stringFromValue coerces a decoded JSON scalar to a string. Numbers keep a
// canonical decimal form and booleans become "true"/"false"; null, arrays
// and objects are not coercible.
func stringFromValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// intFromValue coerces a decoded JSON value to an int, truncating toward
// zero. Non-numeric values are not coercible.
func intFromValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// questionFromRecord decodes one question record. It never fails: missing or
// malformed fields fall back to their defaults, and the result is always a
// fully normalized question.
func questionFromRecord(record map[string]any) *domain.Question {
	text := ""
	if v, ok := record["question_text"]; ok {
		text, _ = stringFromValue(v)
	}

	options := make([]string, 0, domain.NumOptions)
	if v, ok := record["options"]; ok {
		// a non-array options value is replaced wholesale with empty defaults
		if list, isList := v.([]any); isList {
			for _, elem := range list {
				s, _ := stringFromValue(elem)
				options = append(options, s)
			}
		}
	}

	correctIndex := 0
	if v, ok := record["correct_index"]; ok {
		correctIndex, _ = intFromValue(v)
	}

	return domain.NewQuestion(text, options, correctIndex)
}

// quizFromRecord decodes one quiz record. Malformed fields degrade per
// field; a question entry that is not an object is skipped with a logged
// warning while its siblings still load.
func quizFromRecord(record map[string]any) *domain.Quiz {
	title := domain.DefaultQuizTitle
	if v, ok := record["title"]; ok {
		if s, coercible := stringFromValue(v); coercible {
			title = s
		}
	}

	description := ""
	if v, ok := record["description"]; ok {
		description, _ = stringFromValue(v)
	}

	quiz := domain.NewQuiz(title, description)

	v, ok := record["questions"]
	if !ok {
		return quiz
	}
	list, isList := v.([]any)
	if !isList {
		logger.Get().Warn("quiz record has a non-array questions field, ignoring it",
			zap.String("quiz", title))
		return quiz
	}
	for i, elem := range list {
		q, isObject := elem.(map[string]any)
		if !isObject {
			logger.Get().Warn("skipping malformed question record",
				zap.String("quiz", title),
				zap.Int("index", i))
			continue
		}
		quiz.AddQuestion(questionFromRecord(q))
	}
	return quiz
}
