package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"impar-backend/models"

	"github.com/pkg/errors"
)

type Survey struct {
	BaseModel
	SurveyNumber int             `gorm:"autoIncrement;uniqueIndex"` // сквозной номер для отображения
	Title        string          `gorm:"type:varchar(500);not null"`
	Description  string
	OwnerID      string          `gorm:"type:varchar(36);index;not null"`
	Questions    SurveyQuestions `gorm:"type:jsonb"`
	IsPublished  bool            `gorm:"index;default:false"`
	IsFeatured   bool            `gorm:"index;default:false"`
	EndDate      *time.Time
}

// IsOpenForResponses - опрос принимает ответы: опубликован и срок не истёк
func (s Survey) IsOpenForResponses(now time.Time) bool {
	if !s.IsPublished {
		return false
	}
	if s.EndDate != nil && !now.Before(*s.EndDate) {
		return false
	}
	return true
}

func (s Survey) GetQuestionByID(questionID string) *Question {
	for idx := range s.Questions {
		if s.Questions[idx].ID == questionID {
			return &s.Questions[idx]
		}
	}
	return nil
}

type SurveyQuestions []Question

func (j SurveyQuestions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *SurveyQuestions) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.Errorf("неожиданный тип jsonb значения: %T", value)
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return nil
}

type Question struct {
	ID          string              `json:"id"`
	Type        models.QuestionType `json:"type"`
	Text        string              `json:"text"`
	Required    bool                `json:"required"`
	Highlighted bool                `json:"highlighted"` // флаг подсветки, на проверки не влияет
	Options     []QuestionOption    `json:"options,omitempty"`
	MinRating   int                 `json:"min_rating,omitempty"`
	MaxRating   int                 `json:"max_rating,omitempty"`
	Order       int                 `json:"order"`
}

type QuestionOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

func (q Question) HasOption(optionID string) bool {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
