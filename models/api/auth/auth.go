package authapimodels

import (
	"net/mail"
	"strings"

	usersapimodels "impar-backend/models/api/users"

	"github.com/pkg/errors"
)

const minPasswordLen = 6

type RegisterRequest struct {
	Email               string `json:"email"`
	Name                string `json:"name"`
	Password            string `json:"password"`
	Phone               string `json:"phone,omitempty"`
	DateOfBirth         string `json:"date_of_birth,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Nationality         string `json:"nationality,omitempty"`
	District            string `json:"district,omitempty"`
	Municipality        string `json:"municipality,omitempty"`
	Parish              string `json:"parish,omitempty"`
	MaritalStatus       string `json:"marital_status,omitempty"`
	Religion            string `json:"religion,omitempty"`
	EducationLevel      string `json:"education_level,omitempty"`
	Profession          string `json:"profession,omitempty"`
	LivedAbroad         *bool  `json:"lived_abroad,omitempty"`
	AcceptNotifications bool   `json:"accept_notifications,omitempty"`
}

func (r RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано имя пользователя")
	}
	if len(r.Password) < minPasswordLen {
		return errors.New("пароль должен содержать минимум 6 символов")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	TokenType    string                  `json:"token_type"`
	User         usersapimodels.UserView `json:"user"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errors.New("refresh token не должен быть пустым")
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return errors.New("не указан текущий пароль")
	}
	if len(r.NewPassword) < minPasswordLen {
		return errors.New("новый пароль должен содержать минимум 6 символов")
	}
	return nil
}

type PasswordRecoveryRequest struct {
	Email string `json:"email"`
}

func (r PasswordRecoveryRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	return nil
}

type ResetWithCodeRequest struct {
	Email        string `json:"email"`
	RecoveryCode string `json:"recovery_code"`
	NewPassword  string `json:"new_password"`
}

func (r ResetWithCodeRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if strings.TrimSpace(r.RecoveryCode) == "" {
		return errors.New("получен некорректный код для сброса")
	}
	if len(r.NewPassword) < minPasswordLen {
		return errors.New("новый пароль должен содержать минимум 6 символов")
	}
	return nil
}
