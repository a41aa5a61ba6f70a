package analytics

import (
	"strconv"
	"strings"

	helpers "impar-backend/lib/utils/helpers"
	"impar-backend/models"
	analyticsapimodels "impar-backend/models/api/analytics"
	dbmodels "impar-backend/models/db"
)

// Aggregate сводит все ответы опроса в повопросные распределения.
// Чистая функция от своих аргументов: повторный вызов на тех же данных
// даёт идентичный результат.
func Aggregate(rec dbmodels.Survey, responses []dbmodels.SurveyResponse) analyticsapimodels.SurveySummary {
	summary := analyticsapimodels.SurveySummary{
		SurveyID:       rec.ID,
		TotalResponses: int64(len(responses)),
		Questions:      make([]analyticsapimodels.QuestionSummary, 0, len(rec.Questions)),
	}
	for _, question := range rec.Questions {
		summary.Questions = append(summary.Questions, aggregateQuestion(question, responses))
	}
	return summary
}

func aggregateQuestion(question dbmodels.Question, responses []dbmodels.SurveyResponse) analyticsapimodels.QuestionSummary {
	values := collectValues(question.ID, responses)
	result := analyticsapimodels.QuestionSummary{
		QuestionID:    question.ID,
		Type:          question.Type,
		Text:          question.Text,
		TotalAnswered: int64(len(values)),
	}

	switch question.Type {
	case models.QuestionTypeMultipleChoice:
		result.Options = countOptions(question.Options, values, false)
	case models.QuestionTypeCheckbox:
		// один респондент пополняет несколько корзин, поэтому сумма процентов
		// может превышать 100: знаменателем остаётся число ответивших
		result.Options = countOptions(question.Options, values, true)
	case models.QuestionTypeYesNo:
		result.Options = countYesNo(values)
	case models.QuestionTypeRating:
		result.Rating, result.TotalAnswered = summarizeRatings(question, values)
	case models.QuestionTypeText:
		// свободный текст не агрегируется, значения отдаются как есть
		result.TextAnswers = values
		result.TextCount = int64(len(values))
	}
	return result
}

// collectValues - непустые значения ответов на вопрос в порядке поступления ответов
func collectValues(questionID string, responses []dbmodels.SurveyResponse) []string {
	values := []string{}
	for _, resp := range responses {
		answer := resp.Answers.GetByQuestionID(questionID)
		if answer == nil || answer.Value == "" {
			continue
		}
		values = append(values, answer.Value)
	}
	return values
}

func countOptions(options []dbmodels.QuestionOption, values []string, multi bool) []analyticsapimodels.OptionCount {
	counts := map[string]int64{}
	for _, value := range values {
		if !multi {
			counts[value]++
			continue
		}
		seen := map[string]bool{}
		for _, token := range strings.Split(value, ",") {
			if seen[token] {
				continue
			}
			seen[token] = true
			counts[token]++
		}
	}
	totalAnswered := int64(len(values))
	result := make([]analyticsapimodels.OptionCount, 0, len(options))
	for _, opt := range options {
		result = append(result, analyticsapimodels.OptionCount{
			ID:         opt.ID,
			Text:       opt.Text,
			Count:      counts[opt.ID],
			Percentage: percentage(counts[opt.ID], totalAnswered),
		})
	}
	return result
}

func countYesNo(values []string) []analyticsapimodels.OptionCount {
	var yes, no int64
	for _, value := range values {
		switch value {
		case models.YesNoAnswerYes:
			yes++
		case models.YesNoAnswerNo:
			no++
		}
	}
	totalAnswered := int64(len(values))
	return []analyticsapimodels.OptionCount{
		{ID: models.YesNoAnswerYes, Text: models.YesNoAnswerYes, Count: yes, Percentage: percentage(yes, totalAnswered)},
		{ID: models.YesNoAnswerNo, Text: models.YesNoAnswerNo, Count: no, Percentage: percentage(no, totalAnswered)},
	}
}

func summarizeRatings(question dbmodels.Question, values []string) (*analyticsapimodels.RatingSummary, int64) {
	minRating := question.MinRating
	maxRating := question.MaxRating
	if minRating == 0 && maxRating == 0 {
		minRating = models.DefaultMinRating
		maxRating = models.DefaultMaxRating
	}

	ratings := []int{}
	for _, value := range values {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		ratings = append(ratings, parsed)
	}
	totalAnswered := int64(len(ratings))

	var sum int64
	counts := map[int]int64{}
	for _, rating := range ratings {
		sum += int64(rating)
		counts[rating]++
	}
	average := 0.0
	if totalAnswered > 0 {
		average = helpers.RoundTo1(float64(sum) / float64(totalAnswered))
	}

	histogram := make([]analyticsapimodels.RatingBucket, 0, maxRating-minRating+1)
	for value := minRating; value <= maxRating; value++ {
		histogram = append(histogram, analyticsapimodels.RatingBucket{
			Value:      value,
			Count:      counts[value],
			Percentage: percentage(counts[value], totalAnswered),
		})
	}
	return &analyticsapimodels.RatingSummary{
		Average:   average,
		Histogram: histogram,
	}, totalAnswered
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return helpers.RoundTo1(float64(count) / float64(total) * 100)
}
