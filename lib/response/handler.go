package responsehandler

import (
	"time"

	"impar-backend/db"
	analytics "impar-backend/lib/analytics"
	responsestore "impar-backend/lib/response/store"
	surveylib "impar-backend/lib/survey"
	surveystore "impar-backend/lib/survey/store"
	initchecker "impar-backend/lib/utils/init-checker"
	connectionhub "impar-backend/lib/ws/hub/connection-hub"
	"impar-backend/models"
	responseapimodels "impar-backend/models/api/response"
	dbmodels "impar-backend/models/db"
	wsmodels "impar-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrAlreadyResponded = errors.New("вы уже ответили на этот опрос")

type Provider interface {
	Submit(surveyID string, userID *string, request responseapimodels.SubmitRequest) (view responseapimodels.ResponseView, validationErrs []models.ValidationError, err error)
	ListBySurvey(surveyID, actorID string, actorRole models.UserRole) (list []responseapimodels.ResponseView, err error)
	MyResponses(userID string) (list []responseapimodels.MyResponseView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		responseStore: responsestore.NewInstance(db.DB),
		surveyStore:   surveystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"responseStore", instance.responseStore,
		"surveyStore", instance.surveyStore,
	)
	Instance = instance
}

type impl struct {
	responseStore responsestore.Provider
	surveyStore   surveystore.Provider
}

// Submit принимает набор ответов целиком: либо всё сохраняется, либо ничего.
// Ошибки проверки возвращаются списком отдельно от системных ошибок.
func (i impl) Submit(surveyID string, userID *string, request responseapimodels.SubmitRequest) (responseapimodels.ResponseView, []models.ValidationError, error) {
	logger := log.WithField("survey_id", surveyID)
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return responseapimodels.ResponseView{}, nil, err
	}
	if rec == nil || !rec.IsPublished {
		return responseapimodels.ResponseView{}, nil, surveylib.ErrNotFound
	}
	if userID != nil {
		exist, err := i.responseStore.ExistByUserAndSurvey(*userID, surveyID)
		if err != nil {
			return responseapimodels.ResponseView{}, nil, err
		}
		if exist {
			return responseapimodels.ResponseView{}, nil, ErrAlreadyResponded
		}
	}

	answers := request.ToAnswerList()
	validationErrs := surveylib.ValidateSubmission(*rec, answers, time.Now())
	if len(validationErrs) != 0 {
		logger.WithField("errors", len(validationErrs)).Debug("ответы не прошли проверку")
		return responseapimodels.ResponseView{}, validationErrs, nil
	}

	response := dbmodels.SurveyResponse{
		SurveyID:    surveyID,
		UserID:      userID,
		SubmittedAt: time.Now(),
		Answers:     answers,
	}
	id, err := i.responseStore.Create(response)
	if err != nil {
		return responseapimodels.ResponseView{}, nil, errors.Wrap(err, "ошибка сохранения ответа")
	}
	response.ID = id
	logger.WithField("response_id", id).Info("сохранён ответ на опрос")

	// уведомляем автора опроса о новом ответе, если он онлайн
	connectionhub.Instance.SendMessage(newResponseNotification(rec.OwnerID, surveyID, time.Now()))
	return responseapimodels.ResponseConvert(response), nil, nil
}

func newResponseNotification(ownerID, surveyID string, now time.Time) wsmodels.ServerMessage {
	return wsmodels.ServerMessage{
		ToUserID: ownerID,
		Code:     wsmodels.CodeNewResponse,
		Time:     now.Format("02.01.2006 15:04:05"),
		Msg:      "получен новый ответ на опрос",
		SurveyID: surveyID,
	}
}

func (i impl) ListBySurvey(surveyID, actorID string, actorRole models.UserRole) ([]responseapimodels.ResponseView, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, surveylib.ErrNotFound
	}
	if rec.OwnerID != actorID && !actorRole.IsStaff() {
		return nil, surveylib.ErrForbidden
	}
	recs, err := i.responseStore.ListBySurvey(surveyID)
	if err != nil {
		return nil, err
	}
	list := make([]responseapimodels.ResponseView, 0, len(recs))
	for _, r := range recs {
		list = append(list, responseapimodels.ResponseConvert(r))
	}
	return list, nil
}

// MyResponses - ответы пользователя с глобальными результатами по каждому опросу
func (i impl) MyResponses(userID string) ([]responseapimodels.MyResponseView, error) {
	recs, err := i.responseStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]responseapimodels.MyResponseView, 0, len(recs))
	for _, r := range recs {
		rec, err := i.surveyStore.GetByID(r.SurveyID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			// опрос удалён вместе с ответами, сюда попадать не должны
			continue
		}
		all, err := i.responseStore.ListBySurvey(r.SurveyID)
		if err != nil {
			return nil, err
		}
		summary := analytics.Aggregate(*rec, all)
		questions := rec.Questions
		if questions == nil {
			questions = []dbmodels.Question{}
		}
		list = append(list, responseapimodels.MyResponseView{
			Response: responseapimodels.ResponseConvert(r),
			Survey: responseapimodels.SurveyBrief{
				ID:          rec.ID,
				Title:       rec.Title,
				Description: rec.Description,
				Questions:   questions,
			},
			GlobalResults:  summary.PublicView(),
			TotalResponses: summary.TotalResponses,
		})
	}
	return list, nil
}
