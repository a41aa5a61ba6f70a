package dbmodels

import (
	"time"

	"impar-backend/models"
)

// PasswordRecovery - заявка на восстановление пароля.
// Код виден администратору в админке и отправляется на почту, если настроен smtp.
type PasswordRecovery struct {
	BaseModel
	UserID       string `gorm:"type:varchar(36);index;not null"`
	UserEmail    string `gorm:"type:varchar(255);index;not null"`
	RecoveryCode string `gorm:"type:varchar(20);index;not null"`
	Status       models.RecoveryStatus `gorm:"type:varchar(20);index;default:pending"`
	UsedAt       *time.Time
}
