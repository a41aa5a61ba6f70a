package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// SurveyResponse - полный набор ответов одного респондента, неизменяемый после создания.
// Удаляется только каскадом вместе с опросом.
type SurveyResponse struct {
	BaseModel
	SurveyID    string     `gorm:"type:varchar(36);index;not null"`
	UserID      *string    `gorm:"type:varchar(36);index"` // nil - анонимный респондент
	SubmittedAt time.Time  `gorm:"index"`
	Answers     AnswerList `gorm:"type:jsonb"`
}

type AnswerList []Answer

func (j AnswerList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerList) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.Errorf("неожиданный тип jsonb значения: %T", value)
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return nil
}

// Answer - пара вопрос/значение. Значение всегда строка,
// кодировка зависит от типа вопроса (id варианта, id через запятую, число, Sim/Não, текст).
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

func (l AnswerList) GetByQuestionID(questionID string) *Answer {
	for idx := range l {
		if l[idx].QuestionID == questionID {
			return &l[idx]
		}
	}
	return nil
}
