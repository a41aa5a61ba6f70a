package dbmodels

import (
	"impar-backend/models"
)

type Suggestion struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);index;not null"`
	UserName string
	Content  string                  `gorm:"not null"`
	SurveyID *string                 `gorm:"type:varchar(36);index"`
	Status   models.SuggestionStatus `gorm:"type:varchar(20);index;default:pending"`
}
