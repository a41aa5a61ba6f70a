package apiv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealthStatus(t *testing.T) {
	t.Run("ответ содержит статус и время в UTC", func(t *testing.T) {
		now := time.Date(2026, 3, 5, 10, 7, 9, 0, time.FixedZone("MSK", 3*60*60))
		view := healthStatus(now)
		require.Equal(t, "ok", view.Status)
		require.Equal(t, "2026-03-05T07:07:09Z", view.Timestamp)
	})
}
