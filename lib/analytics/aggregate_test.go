package analytics

import (
	"testing"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/stretchr/testify/require"
)

func response(userID string, answers ...dbmodels.Answer) dbmodels.SurveyResponse {
	var uid *string
	if userID != "" {
		uid = &userID
	}
	return dbmodels.SurveyResponse{
		UserID:      uid,
		SubmittedAt: time.Now(),
		Answers:     dbmodels.AnswerList(answers),
	}
}

func TestAggregate(t *testing.T) {
	rec := dbmodels.Survey{
		BaseModel: dbmodels.BaseModel{ID: "survey-1"},
		Questions: dbmodels.SurveyQuestions{
			{
				ID:   "q-choice",
				Type: models.QuestionTypeMultipleChoice,
				Text: "Любимый цвет",
				Options: []dbmodels.QuestionOption{
					{ID: "opt-red", Text: "Красный", Order: 0},
					{ID: "opt-blue", Text: "Синий", Order: 1},
					{ID: "opt-green", Text: "Зелёный", Order: 2},
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

	responses := []dbmodels.SurveyResponse{
		response("user-1",
			dbmodels.Answer{QuestionID: "q-choice", Value: "opt-red"},
			dbmodels.Answer{QuestionID: "q-check", Value: "opt-apple,opt-pear"},
			dbmodels.Answer{QuestionID: "q-rating", Value: "5"},
			dbmodels.Answer{QuestionID: "q-yesno", Value: models.YesNoAnswerYes},
			dbmodels.Answer{QuestionID: "q-text", Value: "отлично"},
		),
		response("",
			dbmodels.Answer{QuestionID: "q-choice", Value: "opt-red"},
			dbmodels.Answer{QuestionID: "q-check", Value: "opt-apple"},
			dbmodels.Answer{QuestionID: "q-rating", Value: "4"},
			dbmodels.Answer{QuestionID: "q-yesno", Value: models.YesNoAnswerNo},
		),
		response("user-2",
			dbmodels.Answer{QuestionID: "q-choice", Value: "opt-blue"},
			dbmodels.Answer{QuestionID: "q-text", Value: "нормально"},
		),
	}

	summary := Aggregate(rec, responses)

	t.Run(`общие счётчики`, func(t *testing.T) {
		require.Equal(t, "survey-1", summary.SurveyID)
		require.Equal(t, int64(3), summary.TotalResponses)
		require.Len(t, summary.Questions, 5)
	})

	t.Run(`одиночный выбор: проценты от ответивших`, func(t *testing.T) {
		q := summary.Questions[0]
		require.Equal(t, int64(3), q.TotalAnswered)
		require.Len(t, q.Options, 3)
		require.Equal(t, int64(2), q.Options[0].Count)
		require.InDelta(t, 66.7, q.Options[0].Percentage, 0.001)
		require.Equal(t, int64(1), q.Options[1].Count)
		require.InDelta(t, 33.3, q.Options[1].Percentage, 0.001)
		require.Equal(t, int64(0), q.Options[2].Count)
		require.InDelta(t, 0.0, q.Options[2].Percentage, 0.001)
	})

	t.Run(`множественный выбор: знаменатель - ответившие, сумма может превышать 100`, func(t *testing.T) {
		q := summary.Questions[1]
		require.Equal(t, int64(2), q.TotalAnswered)
		require.Equal(t, int64(2), q.Options[0].Count)
		require.InDelta(t, 100.0, q.Options[0].Percentage, 0.001)
		require.Equal(t, int64(1), q.Options[1].Count)
		require.InDelta(t, 50.0, q.Options[1].Percentage, 0.001)
	})

	t.Run(`шкала: среднее с одним знаком и гистограмма по всем значениям`, func(t *testing.T) {
		q := summary.Questions[2]
		require.Equal(t, int64(2), q.TotalAnswered)
		require.NotNil(t, q.Rating)
		require.InDelta(t, 4.5, q.Rating.Average, 0.001)
		require.Len(t, q.Rating.Histogram, 5)
		require.Equal(t, 1, q.Rating.Histogram[0].Value)
		require.Equal(t, int64(0), q.Rating.Histogram[0].Count)
		require.Equal(t, int64(1), q.Rating.Histogram[3].Count)
		require.Equal(t, int64(1), q.Rating.Histogram[4].Count)
		require.InDelta(t, 50.0, q.Rating.Histogram[4].Percentage, 0.001)
	})

	t.Run(`да-нет: фиксированный порядок корзин`, func(t *testing.T) {
		q := summary.Questions[3]
		require.Len(t, q.Options, 2)
		require.Equal(t, models.YesNoAnswerYes, q.Options[0].ID)
		require.Equal(t, int64(1), q.Options[0].Count)
		require.Equal(t, models.YesNoAnswerNo, q.Options[1].ID)
		require.Equal(t, int64(1), q.Options[1].Count)
	})

	t.Run(`текст: значения в порядке поступления`, func(t *testing.T) {
		q := summary.Questions[4]
		require.Equal(t, int64(2), q.TotalAnswered)
		require.Equal(t, []string{"отлично", "нормально"}, q.TextAnswers)
	})

	t.Run(`публичная сводка скрывает тексты`, func(t *testing.T) {
		public := summary.PublicView()
		q := public.Questions[4]
		require.Nil(t, q.TextAnswers)
		require.Equal(t, int64(2), q.TextCount)
		// остальные вопросы не меняются
		require.Equal(t, summary.Questions[0].Options, public.Questions[0].Options)
	})

	t.Run(`повторный вызов даёт идентичный результат`, func(t *testing.T) {
		require.Equal(t, summary, Aggregate(rec, responses))
	})

	t.Run(`опрос без ответов`, func(t *testing.T) {
		empty := Aggregate(rec, nil)
		require.Equal(t, int64(0), empty.TotalResponses)
		q := empty.Questions[2]
		require.NotNil(t, q.Rating)
		require.InDelta(t, 0.0, q.Rating.Average, 0.001)
		for _, bucket := range q.Rating.Histogram {
			require.Equal(t, int64(0), bucket.Count)
		}
	})

	t.Run(`нечисловые значения шкалы игнорируются`, func(t *testing.T) {
		bad := Aggregate(rec, []dbmodels.SurveyResponse{
			response("", dbmodels.Answer{QuestionID: "q-rating", Value: "пять"}),
			response("", dbmodels.Answer{QuestionID: "q-rating", Value: "3"}),
		})
		q := bad.Questions[2]
		require.Equal(t, int64(1), q.TotalAnswered)
		require.InDelta(t, 3.0, q.Rating.Average, 0.001)
	})

	t.Run(`повтор варианта внутри одного ответа считается один раз`, func(t *testing.T) {
		dup := Aggregate(rec, []dbmodels.SurveyResponse{
			response("", dbmodels.Answer{QuestionID: "q-check", Value: "opt-apple,opt-apple"}),
		})
		q := dup.Questions[1]
		require.Equal(t, int64(1), q.Options[0].Count)
	})
}
