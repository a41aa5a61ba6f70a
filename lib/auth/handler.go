package authhandler

import (
	"impar-backend/db"
	usersstore "impar-backend/lib/users/store"
	authutils "impar-backend/lib/utils/auth-utils"
	initchecker "impar-backend/lib/utils/init-checker"
	"impar-backend/models"
	authapimodels "impar-backend/models/api/auth"
	usersapimodels "impar-backend/models/api/users"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (response authapimodels.TokenResponse, err error)
	Login(email, password string) (response authapimodels.TokenResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.TokenResponse, err error)
	Me(userID string) (view usersapimodels.UserView, err error)
	UpdateProfile(userID string, request usersapimodels.ProfileUpdateRequest) (view usersapimodels.UserView, err error)
	ChangePassword(userID string, request authapimodels.ChangePasswordRequest) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.TokenResponse, error) {
	logger := log.WithField("email", request.Email)
	passwordHash, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return authapimodels.TokenResponse{}, err
	}

	// первый зарегистрированный пользователь становится владельцем платформы
	role := models.UserRoleUser
	ownerExist, err := i.usersStore.ExistByRole(models.UserRoleOwner)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if !ownerExist {
		role = models.UserRoleOwner
	}

	rec := dbmodels.User{
		Email:               request.Email,
		Name:                request.Name,
		PasswordHash:        passwordHash,
		Role:                role,
		Phone:               request.Phone,
		DateOfBirth:         request.DateOfBirth,
		Gender:              request.Gender,
		Nationality:         request.Nationality,
		District:            request.District,
		Municipality:        request.Municipality,
		Parish:              request.Parish,
		MaritalStatus:       request.MaritalStatus,
		Religion:            request.Religion,
		EducationLevel:      request.EducationLevel,
		Profession:          request.Profession,
		LivedAbroad:         request.LivedAbroad,
		AcceptNotifications: request.AcceptNotifications,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	logger.
		WithField("user_id", id).
		WithField("role", role).
		Info("зарегистрирован пользователь")

	user, err := i.usersStore.GetByID(id)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if user == nil {
		return authapimodels.TokenResponse{}, errors.New("пользователь не найден после регистрации")
	}
	return i.newTokenResponse(*user)
}

func (i impl) Login(email, password string) (authapimodels.TokenResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.TokenResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.TokenResponse{}, errors.New("неверная почта или пароль")
	}
	if !authutils.CheckPassword(password, user.PasswordHash) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.TokenResponse{}, errors.New("неверная почта или пароль")
	}
	return i.newTokenResponse(*user)
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.TokenResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.TokenResponse{}, errors.New("невалидный refresh token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return authapimodels.TokenResponse{}, errors.New("невалидный refresh token")
	}
	user, err := i.usersStore.GetByID(sub)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if user == nil {
		return authapimodels.TokenResponse{}, errors.New("пользователь не найден")
	}
	return i.newTokenResponse(*user)
}

func (i impl) Me(userID string) (usersapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if user == nil {
		return usersapimodels.UserView{}, errors.New("пользователь не найден")
	}
	return usersapimodels.UserConvert(*user), nil
}

func (i impl) UpdateProfile(userID string, request usersapimodels.ProfileUpdateRequest) (usersapimodels.UserView, error) {
	updMap := map[string]interface{}{}
	if request.Name != nil {
		updMap["name"] = *request.Name
	}
	if request.Bio != nil {
		updMap["bio"] = *request.Bio
	}
	if request.AvatarURL != nil {
		updMap["avatar_url"] = *request.AvatarURL
	}
	if err := i.usersStore.Update(userID, updMap); err != nil {
		return usersapimodels.UserView{}, err
	}
	log.WithField("user_id", userID).Info("обновлён профиль пользователя")
	return i.Me(userID)
}

func (i impl) ChangePassword(userID string, request authapimodels.ChangePasswordRequest) error {
	logger := log.WithField("user_id", userID)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("пользователь не найден")
	}
	if !authutils.CheckPassword(request.CurrentPassword, user.PasswordHash) {
		logger.Debug("текущий пароль не прошел проверку")
		return errors.New("текущий пароль указан неверно")
	}
	passwordHash, err := authutils.HashPassword(request.NewPassword)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return err
	}
	err = i.usersStore.Update(userID, map[string]interface{}{
		"password_hash": passwordHash,
	})
	if err != nil {
		return err
	}
	logger.Info("пароль изменён")
	return nil
}

func (i impl) newTokenResponse(user dbmodels.User) (authapimodels.TokenResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, user.GetRole())
	if err != nil {
		log.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.TokenResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.Name)
	if err != nil {
		log.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.TokenResponse{}, err
	}
	return authapimodels.TokenResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         usersapimodels.UserConvert(user),
	}, nil
}
