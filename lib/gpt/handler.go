package gpthandler

import (
	"encoding/json"
	"fmt"
	"strings"

	"impar-backend/config"
	yagptclient "impar-backend/lib/gpt/yagpt-client"
	"impar-backend/models"
	surveyapimodels "impar-backend/models/api/survey"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const suggestPromt = `Ты помощник платформы опросов. По теме опроса предложи от 3 до 6 вопросов.
Ответ верни строго в виде JSON-массива объектов с полями:
type (multiple_choice | checkbox | rating | yes_no | text), text, required (bool),
options (массив строк, только для multiple_choice и checkbox).
Никакого текста вне JSON.`

var ErrNotConfigured = errors.New("генерация вопросов не настроена")

type Provider interface {
	SuggestQuestions(topic string) (resp surveyapimodels.SuggestQuestionsResponse, err error)
}

type impl struct{}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

func (i impl) SuggestQuestions(topic string) (resp surveyapimodels.SuggestQuestionsResponse, err error) {
	logger := log.WithField("topic", topic)
	if config.Conf.YandexGPT.IAMToken == "" || config.Conf.YandexGPT.CatalogID == "" {
		logger.Warn("запрошена генерация вопросов, но YandexGPT не настроен")
		return resp, ErrNotConfigured
	}
	generated, err := yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(suggestPromt, fmt.Sprintf("Тема опроса: %s", topic))
	if err != nil {
		logger.WithError(err).Error("ошибка генерации вопросов через YandexGPT")
		return resp, err
	}
	questions, err := parseGenerated(generated)
	if err != nil {
		logger.WithError(err).Error("ошибка разбора ответа YandexGPT")
		return resp, err
	}
	resp.Questions = questions
	return resp, nil
}

type generatedQuestion struct {
	Type     string   `json:"type"`
	Text     string   `json:"text"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

// parseGenerated терпим к обёрткам вида ```json ... ``` вокруг массива
func parseGenerated(generated string) ([]surveyapimodels.QuestionData, error) {
	cleaned := strings.TrimSpace(generated)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, errors.Wrap(err, "сгенерированный текст не является JSON-массивом вопросов")
	}
	questions := make([]surveyapimodels.QuestionData, 0, len(parsed))
	for _, q := range parsed {
		qType := models.QuestionType(q.Type)
		if !qType.IsValid() || strings.TrimSpace(q.Text) == "" {
			continue
		}
		question := surveyapimodels.QuestionData{
			Type:     qType,
			Text:     q.Text,
			Required: q.Required,
		}
		if qType.HasOptions() {
			if len(q.Options) < 2 {
				continue
			}
			for _, opt := range q.Options {
				question.Options = append(question.Options, surveyapimodels.OptionData{Text: opt})
			}
		}
		questions = append(questions, question)
	}
	if len(questions) == 0 {
		return nil, errors.New("в сгенерированном тексте нет пригодных вопросов")
	}
	return questions, nil
}
