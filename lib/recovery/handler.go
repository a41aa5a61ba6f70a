package recoveryhandler

import (
	"fmt"
	"time"

	"impar-backend/config"
	"impar-backend/db"
	recoverystore "impar-backend/lib/recovery/store"
	"impar-backend/lib/smtp"
	usersstore "impar-backend/lib/users/store"
	authutils "impar-backend/lib/utils/auth-utils"
	helpers "impar-backend/lib/utils/helpers"
	initchecker "impar-backend/lib/utils/init-checker"
	recoveryapimodels "impar-backend/models/api/recovery"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const recoveryCodeLen = 6

var (
	ErrNotFound    = errors.New("заявка не найдена")
	ErrInvalidCode = errors.New("код восстановления недействителен")
)

type Provider interface {
	RequestRecovery(email string) error
	ResetWithCode(email, code, newPassword string) error
	List() (list []recoveryapimodels.RecoveryRequestView, err error)
	Delete(id string) error
	ExpireStale() (int64, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		recoveryStore: recoverystore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
		codeTTL:       time.Duration(config.Conf.Recovery.CodeTTLInSec) * time.Second,
	}
	initchecker.CheckInit(
		"recoveryStore", instance.recoveryStore,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	recoveryStore recoverystore.Provider
	usersStore    usersstore.Provider
	codeTTL       time.Duration
}

// RequestRecovery создаёт заявку с кодом и шлёт его на почту, если настроен smtp.
// Для незарегистрированной почты отвечаем так же, чтобы не раскрывать список адресов.
func (i impl) RequestRecovery(email string) error {
	logger := log.WithField("email", email)
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		logger.Debug("запрос восстановления для неизвестной почты")
		return nil
	}
	code, err := helpers.GenerateNumericCode(recoveryCodeLen)
	if err != nil {
		return errors.Wrap(err, "ошибка генерации кода восстановления")
	}
	rec := dbmodels.PasswordRecovery{
		UserID:       user.ID,
		UserEmail:    user.Email,
		RecoveryCode: code,
	}
	id, err := i.recoveryStore.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения заявки на восстановление")
	}
	logger.WithField("recovery_id", id).Info("создана заявка на восстановление пароля")

	message := fmt.Sprintf("Ваш код восстановления пароля: %s\r\nКод действует %d часов.", code, int(i.codeTTL.Hours()))
	if err = smtp.Instance.SendEMail(user.Email, message, "восстановление пароля"); err != nil {
		// код остаётся доступен администратору, письмо не критично
		logger.WithError(err).Error("ошибка отправки кода восстановления")
	}
	return nil
}

func (i impl) ResetWithCode(email, code, newPassword string) error {
	logger := log.WithField("email", email)
	rec, err := i.recoveryStore.GetPendingByEmailAndCode(email, code)
	if err != nil {
		return err
	}
	if rec == nil {
		logger.Debug("код восстановления не найден")
		return ErrInvalidCode
	}
	if time.Since(rec.CreatedAt) > i.codeTTL {
		logger.Debug("код восстановления просрочен")
		return ErrInvalidCode
	}
	passwordHash, err := authutils.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "ошибка хеширования пароля")
	}
	err = i.usersStore.Update(rec.UserID, map[string]interface{}{
		"password_hash": passwordHash,
	})
	if err != nil {
		return err
	}
	if err = i.recoveryStore.MarkUsed(rec.ID, time.Now()); err != nil {
		return err
	}
	logger.WithField("user_id", rec.UserID).Info("пароль сброшен по коду восстановления")
	return nil
}

func (i impl) List() ([]recoveryapimodels.RecoveryRequestView, error) {
	recs, err := i.recoveryStore.List()
	if err != nil {
		return nil, err
	}
	list := make([]recoveryapimodels.RecoveryRequestView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, recoveryapimodels.RecoveryConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.recoveryStore.Delete(id)
}

func (i impl) ExpireStale() (int64, error) {
	return i.recoveryStore.ExpirePendingOlderThan(time.Now().Add(-i.codeTTL))
}
