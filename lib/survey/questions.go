package survey

import (
	"fmt"
	"strings"

	"impar-backend/models"
	surveyapimodels "impar-backend/models/api/survey"
	dbmodels "impar-backend/models/db"

	"github.com/google/uuid"
)

// BuildQuestions собирает список вопросов из формы автора.
// Порядок всегда переиндексируется по позиции в списке (плотный, с нуля),
// вариантам и вопросам назначаются новые идентификаторы.
// Любое нарушение структуры возвращается как ConstructionError с именем поля.
func BuildQuestions(list []surveyapimodels.QuestionData) (dbmodels.SurveyQuestions, *models.ConstructionError) {
	questions := make(dbmodels.SurveyQuestions, 0, len(list))
	for i, q := range list {
		field := fmt.Sprintf("questions[%d]", i)
		if !q.Type.IsValid() {
			return nil, models.NewConstructionError(field+".type", "неизвестный тип вопроса")
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, models.NewConstructionError(field+".text", "текст вопроса не должен быть пустым")
		}
		question := dbmodels.Question{
			ID:          uuid.NewString(),
			Type:        q.Type,
			Text:        q.Text,
			Required:    q.Required,
			Highlighted: q.Highlighted,
			Order:       i,
		}
		if q.Type.HasOptions() {
			options, cErr := buildOptions(field, q.Options)
			if cErr != nil {
				return nil, cErr
			}
			question.Options = options
		}
		if q.Type == models.QuestionTypeRating {
			minRating := models.DefaultMinRating
			maxRating := models.DefaultMaxRating
			if q.MinRating != nil {
				minRating = *q.MinRating
			}
			if q.MaxRating != nil {
				maxRating = *q.MaxRating
			}
			if minRating >= maxRating {
				return nil, models.NewConstructionError(field+".min_rating", "нижняя граница шкалы должна быть меньше верхней")
			}
			question.MinRating = minRating
			question.MaxRating = maxRating
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func buildOptions(field string, list []surveyapimodels.OptionData) ([]dbmodels.QuestionOption, *models.ConstructionError) {
	options := make([]dbmodels.QuestionOption, 0, len(list))
	for _, opt := range list {
		if strings.TrimSpace(opt.Text) == "" {
			continue
		}
		options = append(options, dbmodels.QuestionOption{
			ID:    uuid.NewString(),
			Text:  opt.Text,
			Order: len(options),
		})
	}
	if len(options) < 2 {
		return nil, models.NewConstructionError(field+".options", "нужно минимум два непустых варианта ответа")
	}
	return options, nil
}
