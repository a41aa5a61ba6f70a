package recoveryapimodels

import (
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"
)

// RecoveryRequestView - заявка с кодом, видна только администратору
type RecoveryRequestView struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	UserEmail    string                `json:"user_email"`
	RecoveryCode string                `json:"recovery_code"`
	Status       models.RecoveryStatus `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UsedAt       *time.Time            `json:"used_at,omitempty"`
}

func RecoveryConvert(rec dbmodels.PasswordRecovery) RecoveryRequestView {
	return RecoveryRequestView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		UserEmail:    rec.UserEmail,
		RecoveryCode: rec.RecoveryCode,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt,
		UsedAt:       rec.UsedAt,
	}
}
