package survey

import (
	"testing"

	"impar-backend/models"
	surveyapimodels "impar-backend/models/api/survey"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestBuildQuestions(t *testing.T) {
	t.Run(`порядок вопросов переиндексируется плотно с нуля`, func(t *testing.T) {
		questions, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeText, Text: "Первый"},
			{Type: models.QuestionTypeYesNo, Text: "Второй"},
			{Type: models.QuestionTypeRating, Text: "Третий"},
		})
		require.Nil(t, cErr)
		require.Len(t, questions, 3)
		for i, q := range questions {
			require.Equal(t, i, q.Order)
			require.NotEmpty(t, q.ID)
		}
	})

	t.Run(`шкала получает границы по умолчанию`, func(t *testing.T) {
		questions, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeRating, Text: "Оцените"},
		})
		require.Nil(t, cErr)
		require.Equal(t, models.DefaultMinRating, questions[0].MinRating)
		require.Equal(t, models.DefaultMaxRating, questions[0].MaxRating)
	})

	t.Run(`явные границы шкалы сохраняются`, func(t *testing.T) {
		questions, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeRating, Text: "Оцените", MinRating: intPtr(0), MaxRating: intPtr(10)},
		})
		require.Nil(t, cErr)
		require.Equal(t, 0, questions[0].MinRating)
		require.Equal(t, 10, questions[0].MaxRating)
	})

	t.Run(`вырожденная шкала отклоняется`, func(t *testing.T) {
		_, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeRating, Text: "Оцените", MinRating: intPtr(5), MaxRating: intPtr(5)},
		})
		require.NotNil(t, cErr)
		require.Equal(t, "questions[0].min_rating", cErr.Field)
	})

	t.Run(`неизвестный тип вопроса отклоняется`, func(t *testing.T) {
		_, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: "dropdown", Text: "Выберите"},
		})
		require.NotNil(t, cErr)
		require.Equal(t, "questions[0].type", cErr.Field)
	})

	t.Run(`пустой текст вопроса отклоняется`, func(t *testing.T) {
		_, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeText, Text: "   "},
		})
		require.NotNil(t, cErr)
		require.Equal(t, "questions[0].text", cErr.Field)
	})

	t.Run(`варианты получают идентификаторы и плотный порядок`, func(t *testing.T) {
		questions, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeMultipleChoice, Text: "Выберите", Options: []surveyapimodels.OptionData{
				{Text: "Один"},
				{Text: "  "},
				{Text: "Два"},
			}},
		})
		require.Nil(t, cErr)
		require.Len(t, questions[0].Options, 2)
		require.Equal(t, 0, questions[0].Options[0].Order)
		require.Equal(t, 1, questions[0].Options[1].Order)
		require.NotEqual(t, questions[0].Options[0].ID, questions[0].Options[1].ID)
	})

	t.Run(`меньше двух непустых вариантов отклоняется`, func(t *testing.T) {
		_, cErr := BuildQuestions([]surveyapimodels.QuestionData{
			{Type: models.QuestionTypeText, Text: "Вопрос"},
			{Type: models.QuestionTypeCheckbox, Text: "Выберите", Options: []surveyapimodels.OptionData{
				{Text: "Один"},
				{Text: ""},
			}},
		})
		require.NotNil(t, cErr)
		require.Equal(t, "questions[1].options", cErr.Field)
	})
}
