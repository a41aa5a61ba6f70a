package survey

import (
	"testing"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/stretchr/testify/require"
)

func testSurvey() dbmodels.Survey {
	return dbmodels.Survey{
		IsPublished: true,
		Questions: dbmodels.SurveyQuestions{
			{
				ID:       "q-choice",
				Type:     models.QuestionTypeMultipleChoice,
				Text:     "Любимый цвет",
				Required: true,
				Options: []dbmodels.QuestionOption{
					{ID: "opt-red", Text: "Красный", Order: 0},
					{ID: "opt-blue", Text: "Синий", Order: 1},
				},
				Order: 0,
			},
			{
				ID:   "q-check",
				Type: models.QuestionTypeCheckbox,
				Text: "Какие фрукты нравятся",
				Options: []dbmodels.QuestionOption{
					{ID: "opt-apple", Text: "Яблоко", Order: 0},
					{ID: "opt-pear", Text: "Груша", Order: 1},
				},
				Order: 1,
			},
			{
				ID:        "q-rating",
				Type:      models.QuestionTypeRating,
				Text:      "Оцените сервис",
				MinRating: 1,
				MaxRating: 5,
				Order:     2,
			},
			{
				ID:    "q-yesno",
				Type:  models.QuestionTypeYesNo,
				Text:  "Порекомендуете нас",
				Order: 3,
			},
			{
				ID:    "q-text",
				Type:  models.QuestionTypeText,
				Text:  "Комментарий",
				Order: 4,
			},
		},
	}
}

func findByCode(errs []models.ValidationError, code models.ValidationCode) *models.ValidationError {
	for i := range errs {
		if errs[i].Code == code {
			return &errs[i]
		}
	}
	return nil
}

func TestValidateSubmission(t *testing.T) {
	now := time.Now()

	t.Run(`полный корректный набор ответов проходит`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-check", Value: "opt-apple,opt-pear"},
			{QuestionID: "q-rating", Value: "4"},
			{QuestionID: "q-yesno", Value: models.YesNoAnswerYes},
			{QuestionID: "q-text", Value: "всё отлично"},
		}, now)
		require.Empty(t, errs)
	})

	t.Run(`необязательные вопросы можно пропустить`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-blue"},
		}, now)
		require.Empty(t, errs)
	})

	t.Run(`неопубликованный опрос не принимает ответы`, func(t *testing.T) {
		rec := testSurvey()
		rec.IsPublished = false
		errs := ValidateSubmission(rec, dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
		}, now)
		require.Len(t, errs, 1)
		require.Equal(t, models.ValidationSurveyClosed, errs[0].Code)
	})

	t.Run(`истёкший срок закрывает опрос`, func(t *testing.T) {
		rec := testSurvey()
		endDate := now.Add(-time.Hour)
		rec.EndDate = &endDate
		errs := ValidateSubmission(rec, dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
		}, now)
		require.Len(t, errs, 1)
		require.Equal(t, models.ValidationSurveyClosed, errs[0].Code)
	})

	t.Run(`пропуск обязательного вопроса`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-text", Value: "коммент"},
		}, now)
		missing := findByCode(errs, models.ValidationMissingRequiredAnswer)
		require.NotNil(t, missing)
		require.Equal(t, "q-choice", missing.QuestionID)
	})

	t.Run(`пустое значение считается отсутствием ответа`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: ""},
		}, now)
		missing := findByCode(errs, models.ValidationMissingRequiredAnswer)
		require.NotNil(t, missing)
		require.Equal(t, "q-choice", missing.QuestionID)
	})

	t.Run(`чужой вопрос отклоняется`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-alien", Value: "что-то"},
		}, now)
		unknown := findByCode(errs, models.ValidationUnknownQuestion)
		require.NotNil(t, unknown)
		require.Equal(t, "q-alien", unknown.QuestionID)
	})

	t.Run(`несуществующий вариант отклоняется`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-green"},
		}, now)
		invalid := findByCode(errs, models.ValidationInvalidOption)
		require.NotNil(t, invalid)
		require.Equal(t, "q-choice", invalid.QuestionID)
	})

	t.Run(`повтор варианта в множественном выборе`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-check", Value: "opt-apple,opt-apple"},
		}, now)
		dup := findByCode(errs, models.ValidationDuplicateOption)
		require.NotNil(t, dup)
		require.Equal(t, "q-check", dup.QuestionID)
	})

	t.Run(`оценка вне шкалы отклоняется`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-rating", Value: "7"},
		}, now)
		outOfRange := findByCode(errs, models.ValidationOutOfRange)
		require.NotNil(t, outOfRange)
		require.Equal(t, "q-rating", outOfRange.QuestionID)
	})

	t.Run(`нечисловая оценка отклоняется`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-rating", Value: "отлично"},
		}, now)
		require.NotNil(t, findByCode(errs, models.ValidationOutOfRange))
	})

	t.Run(`да-нет принимает только канонические значения`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-yesno", Value: "да"},
		}, now)
		invalid := findByCode(errs, models.ValidationInvalidValue)
		require.NotNil(t, invalid)
		require.Equal(t, "q-yesno", invalid.QuestionID)
	})

	t.Run(`двойной ответ на один вопрос отклоняется`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-choice", Value: "opt-red"},
			{QuestionID: "q-choice", Value: "opt-blue"},
		}, now)
		require.NotNil(t, findByCode(errs, models.ValidationInvalidValue))
	})

	t.Run(`все ошибки возвращаются разом`, func(t *testing.T) {
		errs := ValidateSubmission(testSurvey(), dbmodels.AnswerList{
			{QuestionID: "q-rating", Value: "100"},
			{QuestionID: "q-yesno", Value: "maybe"},
		}, now)
		require.NotNil(t, findByCode(errs, models.ValidationOutOfRange))
		require.NotNil(t, findByCode(errs, models.ValidationInvalidValue))
		require.NotNil(t, findByCode(errs, models.ValidationMissingRequiredAnswer))
	})
}
