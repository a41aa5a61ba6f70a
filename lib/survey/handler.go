package survey

import (
	"impar-backend/db"
	responsestore "impar-backend/lib/response/store"
	surveystore "impar-backend/lib/survey/store"
	usersstore "impar-backend/lib/users/store"
	initchecker "impar-backend/lib/utils/init-checker"
	"impar-backend/models"
	surveyapimodels "impar-backend/models/api/survey"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound  = errors.New("опрос не найден")
	ErrForbidden = errors.New("операция недоступна")
)

type Provider interface {
	Create(ownerID string, request surveyapimodels.SurveyCreateRequest) (view surveyapimodels.SurveyView, err error)
	Update(surveyID, actorID string, actorRole models.UserRole, request surveyapimodels.SurveyUpdateRequest) (view surveyapimodels.SurveyView, err error)
	Delete(surveyID, actorID string, actorRole models.UserRole) error
	Get(surveyID, viewerID string) (view surveyapimodels.SurveyView, err error)
	GetPublished(surveyID, viewerID string) (view surveyapimodels.SurveyView, err error)
	List(filter surveystore.Filter, viewerID string) (list []surveyapimodels.SurveyView, err error)
	ListPublished(featured *bool, viewerID string) (list []surveyapimodels.SurveyView, err error)
	My(ownerID string) (list []surveyapimodels.SurveyView, err error)
	SetPublished(surveyID, actorID string, actorRole models.UserRole, published bool) (view surveyapimodels.SurveyView, err error)
	ToggleFeatured(surveyID string) (view surveyapimodels.SurveyView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		surveyStore:   surveystore.NewInstance(db.DB),
		responseStore: responsestore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"surveyStore", instance.surveyStore,
		"responseStore", instance.responseStore,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	surveyStore   surveystore.Provider
	responseStore responsestore.Provider
	usersStore    usersstore.Provider
}

func (i impl) Create(ownerID string, request surveyapimodels.SurveyCreateRequest) (surveyapimodels.SurveyView, error) {
	questions, cErr := BuildQuestions(request.Questions)
	if cErr != nil {
		return surveyapimodels.SurveyView{}, cErr
	}
	rec := dbmodels.Survey{
		Title:       request.Title,
		Description: request.Description,
		OwnerID:     ownerID,
		Questions:   questions,
		IsFeatured:  request.IsFeatured,
		EndDate:     request.EndDate,
	}
	id, err := i.surveyStore.Create(rec)
	if err != nil {
		return surveyapimodels.SurveyView{}, errors.Wrap(err, "ошибка сохранения опроса")
	}
	log.
		WithField("survey_id", id).
		WithField("owner_id", ownerID).
		Info("создан опрос")
	return i.Get(id, ownerID)
}

func (i impl) Update(surveyID, actorID string, actorRole models.UserRole, request surveyapimodels.SurveyUpdateRequest) (surveyapimodels.SurveyView, error) {
	rec, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	updMap := map[string]interface{}{}
	if request.Title != nil {
		updMap["title"] = *request.Title
	}
	if request.Description != nil {
		updMap["description"] = *request.Description
	}
	if request.Questions != nil {
		questions, cErr := BuildQuestions(*request.Questions)
		if cErr != nil {
			return surveyapimodels.SurveyView{}, cErr
		}
		updMap["questions"] = questions
	}
	if request.IsPublished != nil {
		updMap["is_published"] = *request.IsPublished
	}
	// признак избранного меняет только персонал платформы
	if request.IsFeatured != nil && actorRole.IsStaff() {
		updMap["is_featured"] = *request.IsFeatured
	}
	if request.EndDate != nil {
		updMap["end_date"] = *request.EndDate
	}
	if err = i.surveyStore.Update(rec.ID, updMap); err != nil {
		return surveyapimodels.SurveyView{}, errors.Wrap(err, "ошибка обновления опроса")
	}
	log.WithField("survey_id", rec.ID).Info("обновлён опрос")
	return i.Get(rec.ID, actorID)
}

func (i impl) Delete(surveyID, actorID string, actorRole models.UserRole) error {
	rec, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return err
	}
	if err = i.surveyStore.Delete(rec.ID); err != nil {
		return errors.Wrap(err, "ошибка удаления опроса")
	}
	log.WithField("survey_id", rec.ID).Info("удалён опрос вместе с ответами")
	return nil
}

func (i impl) Get(surveyID, viewerID string) (surveyapimodels.SurveyView, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	if rec == nil {
		return surveyapimodels.SurveyView{}, ErrNotFound
	}
	return i.toView(*rec, viewerID)
}

// GetPublished отдаёт опрос только если он опубликован, для публичной части
func (i impl) GetPublished(surveyID, viewerID string) (surveyapimodels.SurveyView, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	if rec == nil || !rec.IsPublished {
		return surveyapimodels.SurveyView{}, ErrNotFound
	}
	return i.toView(*rec, viewerID)
}

func (i impl) List(filter surveystore.Filter, viewerID string) ([]surveyapimodels.SurveyView, error) {
	recs, err := i.surveyStore.List(filter)
	if err != nil {
		return nil, err
	}
	return i.toViews(recs, viewerID)
}

func (i impl) ListPublished(featured *bool, viewerID string) ([]surveyapimodels.SurveyView, error) {
	published := true
	return i.List(surveystore.Filter{
		Published: &published,
		Featured:  featured,
	}, viewerID)
}

func (i impl) My(ownerID string) ([]surveyapimodels.SurveyView, error) {
	recs, err := i.surveyStore.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return i.toViews(recs, ownerID)
}

func (i impl) SetPublished(surveyID, actorID string, actorRole models.UserRole, published bool) (surveyapimodels.SurveyView, error) {
	rec, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	err = i.surveyStore.Update(rec.ID, map[string]interface{}{
		"is_published": published,
	})
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	log.
		WithField("survey_id", rec.ID).
		WithField("is_published", published).
		Info("изменён статус публикации опроса")
	return i.Get(rec.ID, actorID)
}

func (i impl) ToggleFeatured(surveyID string) (surveyapimodels.SurveyView, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	if rec == nil {
		return surveyapimodels.SurveyView{}, ErrNotFound
	}
	err = i.surveyStore.Update(rec.ID, map[string]interface{}{
		"is_featured": !rec.IsFeatured,
	})
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	return i.Get(rec.ID, "")
}

// getManaged - опрос, который актор вправе менять: автор или персонал платформы
func (i impl) getManaged(surveyID, actorID string, actorRole models.UserRole) (*dbmodels.Survey, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	if rec.OwnerID != actorID && !actorRole.IsStaff() {
		return nil, ErrForbidden
	}
	return rec, nil
}

func (i impl) toView(rec dbmodels.Survey, viewerID string) (surveyapimodels.SurveyView, error) {
	ownerName := ""
	owner, err := i.usersStore.GetByID(rec.OwnerID)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	if owner != nil {
		ownerName = owner.Name
	}
	responseCount, err := i.responseStore.CountBySurvey(rec.ID)
	if err != nil {
		return surveyapimodels.SurveyView{}, err
	}
	hasResponded := false
	if viewerID != "" {
		hasResponded, err = i.responseStore.ExistByUserAndSurvey(viewerID, rec.ID)
		if err != nil {
			return surveyapimodels.SurveyView{}, err
		}
	}
	return surveyapimodels.SurveyConvert(rec, ownerName, responseCount, hasResponded), nil
}

func (i impl) toViews(recs []dbmodels.Survey, viewerID string) ([]surveyapimodels.SurveyView, error) {
	list := make([]surveyapimodels.SurveyView, 0, len(recs))
	for _, rec := range recs {
		view, err := i.toView(rec, viewerID)
		if err != nil {
			return nil, err
		}
		list = append(list, view)
	}
	return list, nil
}
