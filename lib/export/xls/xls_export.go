package xlsexport

import (
	"bytes"
	"strings"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportResponseList(rec dbmodels.Survey, responses []dbmodels.SurveyResponse) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportResponseList - таблица ответов: строка на ответ, колонка на вопрос.
// Идентификаторы вариантов разворачиваются в тексты, анонимные ответы помечаются.
func (i impl) ExportResponseList(rec dbmodels.Survey, responses []dbmodels.SurveyResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	headers := []string{"Дата отправки", "Респондент"}
	for _, question := range rec.Questions {
		headers = append(headers, question.Text)
	}
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(responses) != 0 {
		row, err = writeResponseData(f, sheet, rec, responses, headers, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Ответы")
	return f.WriteToBuffer()
}

func writeResponseData(f *excelize.File, sheet string, rec dbmodels.Survey, responses []dbmodels.SurveyResponse, headers []string, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(headers), len(responses)+1); err != nil {
		return row, err
	}
	for _, item := range responses {
		row++
		// "Дата отправки"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Респондент"
		col++
		respondent := "аноним"
		if item.UserID != nil {
			respondent = *item.UserID
		}
		if err := writeColumn(f, sheet, col, row, respondent); err != nil {
			return row, err
		}

		for _, question := range rec.Questions {
			col++
			answer := item.Answers.GetByQuestionID(question.ID)
			if answer == nil || answer.Value == "" {
				continue
			}
			if err := writeColumn(f, sheet, col, row, displayValue(question, answer.Value)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func displayValue(question dbmodels.Question, value string) string {
	switch question.Type {
	case models.QuestionTypeMultipleChoice:
		return optionText(question, value)
	case models.QuestionTypeCheckbox:
		tokens := strings.Split(value, ",")
		texts := make([]string, 0, len(tokens))
		for _, token := range tokens {
			texts = append(texts, optionText(question, strings.TrimSpace(token)))
		}
		return strings.Join(texts, "; ")
	}
	return value
}

func optionText(question dbmodels.Question, optionID string) string {
	for _, opt := range question.Options {
		if opt.ID == optionID {
			return opt.Text
		}
	}
	return optionID
}
