package models

import "fmt"

// ConstructionError - ошибка структуры опроса или вопроса на этапе создания/редактирования.
// Всегда указывает на конкретное поле, чтобы автор мог исправить форму и повторить.
type ConstructionError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewConstructionError(field, message string) *ConstructionError {
	return &ConstructionError{
		Field:   field,
		Message: message,
	}
}

type ValidationCode string

const (
	ValidationMissingRequiredAnswer ValidationCode = "MissingRequiredAnswer"
	ValidationUnknownQuestion       ValidationCode = "UnknownQuestion"
	ValidationInvalidOption         ValidationCode = "InvalidOption"
	ValidationDuplicateOption       ValidationCode = "DuplicateOption"
	ValidationOutOfRange            ValidationCode = "OutOfRange"
	ValidationInvalidValue          ValidationCode = "InvalidValue"
	ValidationSurveyClosed          ValidationCode = "SurveyClosed"
)

// ValidationError - ошибка проверки ответа респондента.
// Возвращается данными (списком), а не исключением: UI показывает все проблемы разом.
type ValidationError struct {
	Code       ValidationCode `json:"code"`
	QuestionID string         `json:"question_id,omitempty"`
	Message    string         `json:"message"`
}

func (e ValidationError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s (вопрос %s): %s", e.Code, e.QuestionID, e.Message)
}
