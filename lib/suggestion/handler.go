package suggestionhandler

import (
	"impar-backend/db"
	suggestionstore "impar-backend/lib/suggestion/store"
	initchecker "impar-backend/lib/utils/init-checker"
	suggestionapimodels "impar-backend/models/api/suggestion"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("предложение не найдено")

type Provider interface {
	Create(userID, userName string, request suggestionapimodels.SuggestionCreateRequest) (view suggestionapimodels.SuggestionView, err error)
	List() (list []suggestionapimodels.SuggestionView, err error)
	SetStatus(id string, request suggestionapimodels.SuggestionStatusRequest) (view suggestionapimodels.SuggestionView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: suggestionstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store suggestionstore.Provider
}

func (i impl) Create(userID, userName string, request suggestionapimodels.SuggestionCreateRequest) (suggestionapimodels.SuggestionView, error) {
	rec := dbmodels.Suggestion{
		UserID:   userID,
		UserName: userName,
		Content:  request.Content,
		SurveyID: request.SurveyID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return suggestionapimodels.SuggestionView{}, errors.Wrap(err, "ошибка сохранения предложения")
	}
	log.
		WithField("suggestion_id", id).
		WithField("user_id", userID).
		Info("создано предложение")
	return i.get(id)
}

func (i impl) List() ([]suggestionapimodels.SuggestionView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]suggestionapimodels.SuggestionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, suggestionapimodels.SuggestionConvert(rec))
	}
	return list, nil
}

func (i impl) SetStatus(id string, request suggestionapimodels.SuggestionStatusRequest) (suggestionapimodels.SuggestionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return suggestionapimodels.SuggestionView{}, err
	}
	if rec == nil {
		return suggestionapimodels.SuggestionView{}, ErrNotFound
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": string(request.Status),
	})
	if err != nil {
		return suggestionapimodels.SuggestionView{}, err
	}
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

func (i impl) get(id string) (suggestionapimodels.SuggestionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return suggestionapimodels.SuggestionView{}, err
	}
	if rec == nil {
		return suggestionapimodels.SuggestionView{}, ErrNotFound
	}
	return suggestionapimodels.SuggestionConvert(*rec), nil
}
