package survey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"
)

// ValidateSubmission проверяет полный набор ответов респондента против опроса.
// Ошибки возвращаются списком: UI показывает все проблемы сразу.
// Любая ошибка блокирует сохранение целиком, частичных ответов не бывает.
func ValidateSubmission(rec dbmodels.Survey, answers dbmodels.AnswerList, now time.Time) []models.ValidationError {
	if !rec.IsOpenForResponses(now) {
		return []models.ValidationError{{
			Code:    models.ValidationSurveyClosed,
			Message: "опрос закрыт и ответы не принимаются",
		}}
	}

	errs := []models.ValidationError{}
	answered := map[string]string{}
	for _, answer := range answers {
		if _, seen := answered[answer.QuestionID]; seen {
			errs = append(errs, models.ValidationError{
				Code:       models.ValidationInvalidValue,
				QuestionID: answer.QuestionID,
				Message:    "на вопрос передано больше одного ответа",
			})
			continue
		}
		answered[answer.QuestionID] = answer.Value

		question := rec.GetQuestionByID(answer.QuestionID)
		if question == nil {
			errs = append(errs, models.ValidationError{
				Code:       models.ValidationUnknownQuestion,
				QuestionID: answer.QuestionID,
				Message:    "вопрос не принадлежит опросу",
			})
			continue
		}
		if answer.Value == "" {
			// пустое значение считается отсутствием ответа,
			// обязательность проверяется отдельным проходом
			continue
		}
		errs = append(errs, validateAnswerValue(*question, answer.Value)...)
	}

	for _, question := range rec.Questions {
		if !question.Required {
			continue
		}
		if value, ok := answered[question.ID]; !ok || value == "" {
			errs = append(errs, models.ValidationError{
				Code:       models.ValidationMissingRequiredAnswer,
				QuestionID: question.ID,
				Message:    "на обязательный вопрос не дан ответ",
			})
		}
	}
	return errs
}

func validateAnswerValue(question dbmodels.Question, value string) []models.ValidationError {
	switch question.Type {
	case models.QuestionTypeMultipleChoice:
		if !question.HasOption(value) {
			return []models.ValidationError{{
				Code:       models.ValidationInvalidOption,
				QuestionID: question.ID,
				Message:    "значение не соответствует ни одному варианту ответа",
			}}
		}
	case models.QuestionTypeCheckbox:
		return validateCheckboxValue(question, value)
	case models.QuestionTypeRating:
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < question.MinRating || parsed > question.MaxRating {
			return []models.ValidationError{{
				Code:       models.ValidationOutOfRange,
				QuestionID: question.ID,
				Message:    fmt.Sprintf("оценка должна быть целым числом от %d до %d", question.MinRating, question.MaxRating),
			}}
		}
	case models.QuestionTypeYesNo:
		if value != models.YesNoAnswerYes && value != models.YesNoAnswerNo {
			return []models.ValidationError{{
				Code:       models.ValidationInvalidValue,
				QuestionID: question.ID,
				Message:    fmt.Sprintf("допустимые значения: %q и %q", models.YesNoAnswerYes, models.YesNoAnswerNo),
			}}
		}
	case models.QuestionTypeText:
		// любой непустой текст допустим
	}
	return nil
}

// validateCheckboxValue разбирает значение вида "id1,id2": каждый токен
// должен быть существующим вариантом, повторы запрещены
func validateCheckboxValue(question dbmodels.Question, value string) []models.ValidationError {
	errs := []models.ValidationError{}
	seen := map[string]bool{}
	for _, token := range strings.Split(value, ",") {
		if seen[token] {
			errs = append(errs, models.ValidationError{
				Code:       models.ValidationDuplicateOption,
				QuestionID: question.ID,
				Message:    "вариант ответа выбран повторно",
			})
			continue
		}
		seen[token] = true
		if !question.HasOption(token) {
			errs = append(errs, models.ValidationError{
				Code:       models.ValidationInvalidOption,
				QuestionID: question.ID,
				Message:    "значение не соответствует ни одному варианту ответа",
			})
		}
	}
	return errs
}
