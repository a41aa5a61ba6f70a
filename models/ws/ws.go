package wsmodels

// ServerMessage - событие, отправляемое владельцу опроса по websocket
type ServerMessage struct {
	ToUserID string `json:"-"`
	Code     string `json:"code"`
	Time     string `json:"time"`
	Msg      string `json:"msg"`
	SurveyID string `json:"survey_id,omitempty"`
}

const (
	CodeNewResponse = "NEW_RESPONSE"
)
