package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`RoundTo1 округляет до одного знака`, func(t *testing.T) {
		require.Equal(t, 66.7, RoundTo1(66.666666))
		require.Equal(t, 33.3, RoundTo1(33.333333))
		require.Equal(t, 4.5, RoundTo1(4.5))
		require.Equal(t, 0.0, RoundTo1(0))
	})

	t.Run(`GenerateNumericCode даёт код нужной длины из цифр`, func(t *testing.T) {
		code, err := GenerateNumericCode(6)
		require.Nil(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9')
		}
	})
}
