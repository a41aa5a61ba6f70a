package connectionhub

import (
	"testing"

	wsmodels "impar-backend/models/ws"

	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	newHub := func() (*impl, chan any) {
		hub := &impl{clients: map[string]clientSession{}}
		ch := make(chan any, 1)
		hub.clients["owner-1"] = clientSession{
			sendCh: ch,
			stop:   func() {},
		}
		return hub, ch
	}

	t.Run("подключённый владелец получает пуш", func(t *testing.T) {
		hub, ch := newHub()
		hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: "owner-1",
			Code:     wsmodels.CodeNewResponse,
			SurveyID: "survey-1",
		})
		require.Len(t, ch, 1)
		msg, ok := (<-ch).(wsmodels.ServerMessage)
		require.True(t, ok)
		require.Equal(t, wsmodels.CodeNewResponse, msg.Code)
		require.Equal(t, "survey-1", msg.SurveyID)
	})

	t.Run("сообщение без адресата никуда не уходит", func(t *testing.T) {
		hub, ch := newHub()
		hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: "stranger",
			Code:     wsmodels.CodeNewResponse,
		})
		require.Empty(t, ch)
	})

	t.Run("после отключения клиента пуш не отправляется", func(t *testing.T) {
		hub, ch := newHub()
		hub.DeleteClient("owner-1")
		hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: "owner-1",
			Code:     wsmodels.CodeNewResponse,
		})
		_, opened := <-ch
		require.False(t, opened)
	})
}
