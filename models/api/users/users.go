package usersapimodels

import (
	"strings"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
)

type UserView struct {
	ID                  string          `json:"id"`
	Email               string          `json:"email"`
	Name                string          `json:"name"`
	Role                models.UserRole `json:"role"`
	Bio                 string          `json:"bio,omitempty"`
	AvatarURL           string          `json:"avatar_url,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	Phone               string          `json:"phone,omitempty"`
	DateOfBirth         string          `json:"date_of_birth,omitempty"`
	Gender              string          `json:"gender,omitempty"`
	Nationality         string          `json:"nationality,omitempty"`
	District            string          `json:"district,omitempty"`
	Municipality        string          `json:"municipality,omitempty"`
	Parish              string          `json:"parish,omitempty"`
	MaritalStatus       string          `json:"marital_status,omitempty"`
	Religion            string          `json:"religion,omitempty"`
	EducationLevel      string          `json:"education_level,omitempty"`
	Profession          string          `json:"profession,omitempty"`
	LivedAbroad         *bool           `json:"lived_abroad,omitempty"`
	AcceptNotifications bool            `json:"accept_notifications"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:                  rec.ID,
		Email:               rec.Email,
		Name:                rec.Name,
		Role:                rec.GetRole(),
		Bio:                 rec.Bio,
		AvatarURL:           rec.AvatarURL,
		CreatedAt:           rec.CreatedAt,
		Phone:               rec.Phone,
		DateOfBirth:         rec.DateOfBirth,
		Gender:              rec.Gender,
		Nationality:         rec.Nationality,
		District:            rec.District,
		Municipality:        rec.Municipality,
		Parish:              rec.Parish,
		MaritalStatus:       rec.MaritalStatus,
		Religion:            rec.Religion,
		EducationLevel:      rec.EducationLevel,
		Profession:          rec.Profession,
		LivedAbroad:         rec.LivedAbroad,
		AcceptNotifications: rec.AcceptNotifications,
	}
}

type ProfileUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func (r ProfileUpdateRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("имя не должно быть пустым")
	}
	return nil
}

type RoleUpdateRequest struct {
	Role models.UserRole `json:"role"`
}

func (r RoleUpdateRequest) Validate() error {
	if r.Role != models.UserRoleUser && r.Role != models.UserRoleAdmin {
		return errors.New("допустимые роли: user, admin")
	}
	return nil
}
