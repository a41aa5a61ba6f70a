package usershandler

import (
	"impar-backend/db"
	usersstore "impar-backend/lib/users/store"
	initchecker "impar-backend/lib/utils/init-checker"
	usersapimodels "impar-backend/models/api/users"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound       = errors.New("пользователь не найден")
	ErrOwnerImmutable = errors.New("учётная запись владельца платформы не может быть изменена")
)

type Provider interface {
	List() (list []usersapimodels.UserView, err error)
	Get(userID string) (view usersapimodels.UserView, err error)
	ChangeRole(userID string, request usersapimodels.RoleUpdateRequest) (view usersapimodels.UserView, err error)
	Delete(userID, actorID string) error
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

func (i impl) List() ([]usersapimodels.UserView, error) {
	recs, err := i.usersStore.List()
	if err != nil {
		return nil, err
	}
	list := make([]usersapimodels.UserView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Get(userID string) (usersapimodels.UserView, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, ErrNotFound
	}
	return usersapimodels.UserConvert(*rec), nil
}

// ChangeRole переключает роль между user и admin, роль владельца не трогается
func (i impl) ChangeRole(userID string, request usersapimodels.RoleUpdateRequest) (usersapimodels.UserView, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, ErrNotFound
	}
	if rec.GetRole().IsOwner() {
		return usersapimodels.UserView{}, ErrOwnerImmutable
	}
	err = i.usersStore.Update(userID, map[string]interface{}{
		"role": string(request.Role),
	})
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	log.
		WithField("user_id", userID).
		WithField("role", request.Role).
		Info("изменена роль пользователя")
	return i.Get(userID)
}

func (i impl) Delete(userID, actorID string) error {
	if userID == actorID {
		return errors.New("нельзя удалить собственную учётную запись")
	}
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.GetRole().IsOwner() {
		return ErrOwnerImmutable
	}
	if err = i.usersStore.Delete(userID); err != nil {
		return err
	}
	log.WithField("user_id", userID).Info("удалён пользователь")
	return nil
}
