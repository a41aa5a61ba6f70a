package models

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCheckbox       QuestionType = "checkbox"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeRating         QuestionType = "rating"
	QuestionTypeYesNo          QuestionType = "yes_no"
)

var questionTypeHumanName = map[QuestionType]string{
	QuestionTypeMultipleChoice: "Один вариант из списка",
	QuestionTypeCheckbox:       "Несколько вариантов из списка",
	QuestionTypeText:           "Свободный текст",
	QuestionTypeRating:         "Оценка по шкале",
	QuestionTypeYesNo:          "Да/Нет",
}

func (t QuestionType) ToHuman() string {
	if human, exist := questionTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t QuestionType) IsValid() bool {
	_, exist := questionTypeHumanName[t]
	return exist
}

// HasOptions - тип вопроса с обязательным списком вариантов
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeCheckbox
}

// Канонические значения ответа для вопроса типа Да/Нет
const (
	YesNoAnswerYes = "Sim"
	YesNoAnswerNo  = "Não"
)

// Границы шкалы оценки по умолчанию
const (
	DefaultMinRating = 1
	DefaultMaxRating = 5
)
