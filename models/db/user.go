package dbmodels

import (
	"impar-backend/models"
)

type User struct {
	BaseModel
	Email               string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string          `gorm:"type:varchar(255);not null"`
	PasswordHash        string          `gorm:"type:varchar(255);not null"`
	Role                models.UserRole `gorm:"type:varchar(20);index;default:user"`
	Bio                 string
	AvatarURL           string
	Phone               string `gorm:"type:varchar(50)"`
	DateOfBirth         string `gorm:"type:varchar(20)"`
	Gender              string `gorm:"type:varchar(50)"`
	Nationality         string
	District            string
	Municipality        string
	Parish              string
	MaritalStatus       string `gorm:"type:varchar(50)"`
	Religion            string
	EducationLevel      string
	Profession          string
	LivedAbroad         *bool
	AcceptNotifications bool `gorm:"default:false"`
}

func (u User) GetRole() models.UserRole {
	if !u.Role.IsValid() {
		return models.UserRoleUser
	}
	return u.Role
}
