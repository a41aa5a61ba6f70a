package responsehandler

import (
	"testing"
	"time"

	wsmodels "impar-backend/models/ws"

	"github.com/stretchr/testify/require"
)

func TestNewResponseNotification(t *testing.T) {
	t.Run("пуш адресован владельцу и несёт время в формате для отображения", func(t *testing.T) {
		now := time.Date(2026, 3, 5, 10, 7, 9, 0, time.UTC)
		msg := newResponseNotification("owner-1", "survey-1", now)
		require.Equal(t, "owner-1", msg.ToUserID)
		require.Equal(t, wsmodels.CodeNewResponse, msg.Code)
		require.Equal(t, "survey-1", msg.SurveyID)
		require.Equal(t, "05.03.2026 10:07:09", msg.Time)
		require.NotEmpty(t, msg.Msg)
	})
}
