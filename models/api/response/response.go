package responseapimodels

import (
	"time"

	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
)

type AnswerData struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

type SubmitRequest struct {
	Answers []AnswerData `json:"answers"`
}

func (r SubmitRequest) Validate() error {
	if len(r.Answers) == 0 {
		return errors.New("не передано ни одного ответа")
	}
	for _, a := range r.Answers {
		if a.QuestionID == "" {
			return errors.New("в одном из ответов отсутствует идентификатор вопроса")
		}
	}
	return nil
}

func (r SubmitRequest) ToAnswerList() dbmodels.AnswerList {
	answers := make(dbmodels.AnswerList, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, dbmodels.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		})
	}
	return answers
}

type ResponseView struct {
	ID          string            `json:"id"`
	SurveyID    string            `json:"survey_id"`
	UserID      *string           `json:"user_id,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Answers     []dbmodels.Answer `json:"answers"`
}

func ResponseConvert(rec dbmodels.SurveyResponse) ResponseView {
	answers := rec.Answers
	if answers == nil {
		answers = []dbmodels.Answer{}
	}
	return ResponseView{
		ID:          rec.ID,
		SurveyID:    rec.SurveyID,
		UserID:      rec.UserID,
		SubmittedAt: rec.SubmittedAt,
		Answers:     answers,
	}
}

// MyResponseView - ответ пользователя вместе с опросом и глобальными результатами
type MyResponseView struct {
	Response       ResponseView  `json:"response"`
	Survey         SurveyBrief   `json:"survey"`
	GlobalResults  interface{}   `json:"global_results"`
	TotalResponses int64         `json:"total_responses"`
}

type SurveyBrief struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Questions   []dbmodels.Question `json:"questions"`
}
