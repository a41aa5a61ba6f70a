package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// ValidationResponse - ответ с перечнем ошибок проверки ответов респондента,
// все проблемы возвращаются разом для отображения на форме
type ValidationResponse struct {
	Status string      `json:"status"`
	Errors interface{} `json:"errors"`
}

func NewValidationResponse(errs interface{}) ValidationResponse {
	return ValidationResponse{
		Status: "fail",
		Errors: errs,
	}
}
