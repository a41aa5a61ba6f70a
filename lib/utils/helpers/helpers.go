package helpers

import (
	"context"
	"crypto/rand"
	"math"
	"math/big"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// GenerateNumericCode - случайный числовой код фиксированной длины (для восстановления пароля)
func GenerateNumericCode(length int) (string, error) {
	code := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code = append(code, byte('0'+n.Int64()))
	}
	return string(code), nil
}

// RoundTo1 - округление до одного знака для отображаемых процентов и средних
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
