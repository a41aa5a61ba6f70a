package analytics

import (
	"bytes"

	"impar-backend/db"
	pdfexport "impar-backend/lib/export/pdf"
	xlsexport "impar-backend/lib/export/xls"
	responsestore "impar-backend/lib/response/store"
	surveylib "impar-backend/lib/survey"
	surveystore "impar-backend/lib/survey/store"
	initchecker "impar-backend/lib/utils/init-checker"
	"impar-backend/models"
	analyticsapimodels "impar-backend/models/api/analytics"
	dbmodels "impar-backend/models/db"
)

type Provider interface {
	SurveyAnalytics(surveyID, actorID string, actorRole models.UserRole) (summary analyticsapimodels.SurveySummary, err error)
	PublicResults(surveyID string) (summary analyticsapimodels.SurveySummary, err error)
	ExportXls(surveyID, actorID string, actorRole models.UserRole) (fileName string, file *bytes.Buffer, err error)
	ExportPdf(surveyID, actorID string, actorRole models.UserRole) (fileName string, file []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		surveyStore:   surveystore.NewInstance(db.DB),
		responseStore: responsestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"surveyStore", instance.surveyStore,
		"responseStore", instance.responseStore,
	)
	Instance = instance
}

type impl struct {
	surveyStore   surveystore.Provider
	responseStore responsestore.Provider
}

// SurveyAnalytics - полная сводка для автора опроса и персонала, с текстами ответов
func (i impl) SurveyAnalytics(surveyID, actorID string, actorRole models.UserRole) (analyticsapimodels.SurveySummary, error) {
	rec, responses, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return analyticsapimodels.SurveySummary{}, err
	}
	return Aggregate(*rec, responses), nil
}

// PublicResults - сводка по опубликованному опросу для всех: текст только счётчиком
func (i impl) PublicResults(surveyID string) (analyticsapimodels.SurveySummary, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return analyticsapimodels.SurveySummary{}, err
	}
	if rec == nil || !rec.IsPublished {
		return analyticsapimodels.SurveySummary{}, surveylib.ErrNotFound
	}
	responses, err := i.responseStore.ListBySurvey(surveyID)
	if err != nil {
		return analyticsapimodels.SurveySummary{}, err
	}
	return Aggregate(*rec, responses).PublicView(), nil
}

func (i impl) ExportXls(surveyID, actorID string, actorRole models.UserRole) (string, *bytes.Buffer, error) {
	rec, responses, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return "", nil, err
	}
	file, err := xlsexport.Instance.ExportResponseList(*rec, responses)
	if err != nil {
		return "", nil, err
	}
	return exportFileName(*rec, "xlsx"), file, nil
}

func (i impl) ExportPdf(surveyID, actorID string, actorRole models.UserRole) (string, []byte, error) {
	rec, responses, err := i.getManaged(surveyID, actorID, actorRole)
	if err != nil {
		return "", nil, err
	}
	file, err := pdfexport.GenerateResultsReport(*rec, Aggregate(*rec, responses))
	if err != nil {
		return "", nil, err
	}
	return exportFileName(*rec, "pdf"), file, nil
}

func (i impl) getManaged(surveyID, actorID string, actorRole models.UserRole) (*dbmodels.Survey, []dbmodels.SurveyResponse, error) {
	rec, err := i.surveyStore.GetByID(surveyID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, surveylib.ErrNotFound
	}
	if rec.OwnerID != actorID && !actorRole.IsStaff() {
		return nil, nil, surveylib.ErrForbidden
	}
	responses, err := i.responseStore.ListBySurvey(surveyID)
	if err != nil {
		return nil, nil, err
	}
	return rec, responses, nil
}

func exportFileName(rec dbmodels.Survey, ext string) string {
	return "survey_" + rec.ID + "." + ext
}
