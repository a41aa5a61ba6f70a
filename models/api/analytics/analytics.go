package analyticsapimodels

import (
	"impar-backend/models"
)

// SurveySummary - агрегат по всем ответам одного опроса.
// Чистая проекция на момент чтения, ничего не хранится и не инкрементируется.
type SurveySummary struct {
	SurveyID       string            `json:"survey_id"`
	TotalResponses int64             `json:"total_responses"`
	Questions      []QuestionSummary `json:"questions"`
}

type QuestionSummary struct {
	QuestionID    string              `json:"question_id"`
	Type          models.QuestionType `json:"type"`
	Text          string              `json:"text"`
	TotalAnswered int64               `json:"total_answered"`
	Options       []OptionCount       `json:"options,omitempty"`
	Rating        *RatingSummary      `json:"rating,omitempty"`
	TextAnswers   []string            `json:"text_answers,omitempty"`
	TextCount     int64               `json:"text_count,omitempty"`
}

type OptionCount struct {
	ID         string  `json:"id"`   // id варианта либо канонический токен Да/Нет
	Text       string  `json:"text"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"` // от числа ответивших на вопрос, один знак
}

type RatingSummary struct {
	Average   float64        `json:"average"` // среднее с одним знаком
	Histogram []RatingBucket `json:"histogram"`
}

type RatingBucket struct {
	Value      int     `json:"value"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PublicView - вариант для анонимной выдачи: свободный текст отдаётся только счётчиком
func (s SurveySummary) PublicView() SurveySummary {
	questions := make([]QuestionSummary, 0, len(s.Questions))
	for _, q := range s.Questions {
		if q.Type == models.QuestionTypeText {
			q.TextCount = int64(len(q.TextAnswers))
			q.TextAnswers = nil
		}
		questions = append(questions, q)
	}
	s.Questions = questions
	return s
}
