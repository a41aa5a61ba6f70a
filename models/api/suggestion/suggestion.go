package suggestionapimodels

import (
	"strings"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
)

type SuggestionCreateRequest struct {
	Content  string  `json:"content"`
	SurveyID *string `json:"survey_id,omitempty"`
}

func (r SuggestionCreateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("текст предложения не должен быть пустым")
	}
	return nil
}

type SuggestionStatusRequest struct {
	Status models.SuggestionStatus `json:"status"`
}

func (r SuggestionStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("недопустимый статус предложения")
	}
	return nil
}

type SuggestionView struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	UserName  string                  `json:"user_name,omitempty"`
	Content   string                  `json:"content"`
	SurveyID  *string                 `json:"survey_id,omitempty"`
	Status    models.SuggestionStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

func SuggestionConvert(rec dbmodels.Suggestion) SuggestionView {
	return SuggestionView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		Content:   rec.Content,
		SurveyID:  rec.SurveyID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
}
