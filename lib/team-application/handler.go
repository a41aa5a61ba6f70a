package teamapplicationhandler

import (
	"impar-backend/db"
	teamstore "impar-backend/lib/team-application/store"
	initchecker "impar-backend/lib/utils/init-checker"
	teamapimodels "impar-backend/models/api/team"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound       = errors.New("заявка не найдена")
	ErrAlreadyPending = errors.New("ваша заявка уже на рассмотрении")
)

type Provider interface {
	Create(userID, userName, userEmail string, request teamapimodels.TeamApplicationCreateRequest) (view teamapimodels.TeamApplicationView, err error)
	List() (list []teamapimodels.TeamApplicationView, err error)
	SetStatus(id string, request teamapimodels.TeamApplicationStatusRequest) (view teamapimodels.TeamApplicationView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: teamstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store teamstore.Provider
}

// Create - одна нерассмотренная заявка на пользователя
func (i impl) Create(userID, userName, userEmail string, request teamapimodels.TeamApplicationCreateRequest) (teamapimodels.TeamApplicationView, error) {
	exist, err := i.store.ExistPendingByUser(userID)
	if err != nil {
		return teamapimodels.TeamApplicationView{}, err
	}
	if exist {
		return teamapimodels.TeamApplicationView{}, ErrAlreadyPending
	}
	rec := dbmodels.TeamApplication{
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
		Message:   request.Message,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return teamapimodels.TeamApplicationView{}, errors.Wrap(err, "ошибка сохранения заявки")
	}
	log.
		WithField("application_id", id).
		WithField("user_id", userID).
		Info("создана заявка в команду")
	return i.get(id)
}

func (i impl) List() ([]teamapimodels.TeamApplicationView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]teamapimodels.TeamApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, teamapimodels.TeamApplicationConvert(rec))
	}
	return list, nil
}

func (i impl) SetStatus(id string, request teamapimodels.TeamApplicationStatusRequest) (teamapimodels.TeamApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return teamapimodels.TeamApplicationView{}, err
	}
	if rec == nil {
		return teamapimodels.TeamApplicationView{}, ErrNotFound
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": string(request.Status),
	})
	if err != nil {
		return teamapimodels.TeamApplicationView{}, err
	}
	log.
		WithField("application_id", id).
		WithField("status", request.Status).
		Info("изменён статус заявки в команду")
	return i.get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Delete(id)
}

func (i impl) get(id string) (teamapimodels.TeamApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return teamapimodels.TeamApplicationView{}, err
	}
	if rec == nil {
		return teamapimodels.TeamApplicationView{}, ErrNotFound
	}
	return teamapimodels.TeamApplicationConvert(*rec), nil
}
