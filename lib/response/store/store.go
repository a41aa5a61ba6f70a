package store

import (
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SurveyResponse) (id string, err error)
	ListBySurvey(surveyID string) (list []dbmodels.SurveyResponse, err error)
	ListByUser(userID string) (list []dbmodels.SurveyResponse, err error)
	CountBySurvey(surveyID string) (int64, error)
	ExistByUserAndSurvey(userID, surveyID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SurveyResponse) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListBySurvey(surveyID string) (list []dbmodels.SurveyResponse, err error) {
	list = []dbmodels.SurveyResponse{}
	err = i.db.
		Where("survey_id = ?", surveyID).
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.SurveyResponse, err error) {
	list = []dbmodels.SurveyResponse{}
	err = i.db.
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountBySurvey - производный счётчик ответов, всегда считается по записям
func (i impl) CountBySurvey(surveyID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.SurveyResponse{}).
		Where("survey_id = ?", surveyID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчёта ответов")
	}
	return rowCount, nil
}

func (i impl) ExistByUserAndSurvey(userID, surveyID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.SurveyResponse{}).
		Where("user_id = ?", userID).
		Where("survey_id = ?", surveyID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки наличия ответа")
	}
	return rowCount != 0, nil
}
