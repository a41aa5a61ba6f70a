package gpthandler

import (
	"testing"

	"impar-backend/models"

	"github.com/stretchr/testify/require"
)

func TestParseGenerated(t *testing.T) {
	t.Run(`чистый JSON-массив разбирается`, func(t *testing.T) {
		questions, err := parseGenerated(`[
			{"type":"rating","text":"Оцените качество","required":true},
			{"type":"multiple_choice","text":"Как часто пользуетесь","options":["Ежедневно","Редко"]}
		]`)
		require.Nil(t, err)
		require.Len(t, questions, 2)
		require.Equal(t, models.QuestionTypeRating, questions[0].Type)
		require.True(t, questions[0].Required)
		require.Len(t, questions[1].Options, 2)
	})

	t.Run(`обёртка из код-блока срезается`, func(t *testing.T) {
		questions, err := parseGenerated("```json\n[{\"type\":\"text\",\"text\":\"Ваше мнение\"}]\n```")
		require.Nil(t, err)
		require.Len(t, questions, 1)
	})

	t.Run(`вопросы с неизвестным типом пропускаются`, func(t *testing.T) {
		questions, err := parseGenerated(`[
			{"type":"slider","text":"Лишний"},
			{"type":"yes_no","text":"Годный"}
		]`)
		require.Nil(t, err)
		require.Len(t, questions, 1)
		require.Equal(t, models.QuestionTypeYesNo, questions[0].Type)
	})

	t.Run(`выбор без вариантов пропускается`, func(t *testing.T) {
		_, err := parseGenerated(`[{"type":"checkbox","text":"Без вариантов","options":["Один"]}]`)
		require.NotNil(t, err)
	})

	t.Run(`не-JSON отклоняется`, func(t *testing.T) {
		_, err := parseGenerated("вот ваши вопросы: ...")
		require.NotNil(t, err)
	})
}
