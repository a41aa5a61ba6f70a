package dbmodels

import (
	"impar-backend/models"
)

type TeamApplication struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);index;not null"`
	UserName  string
	UserEmail string
	Message   string                       `gorm:"not null"`
	Status    models.TeamApplicationStatus `gorm:"type:varchar(20);index;default:pending"`
}
