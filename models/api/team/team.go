package teamapimodels

import (
	"strings"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
)

type TeamApplicationCreateRequest struct {
	Message string `json:"message"`
}

func (r TeamApplicationCreateRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("текст заявки не должен быть пустым")
	}
	return nil
}

type TeamApplicationStatusRequest struct {
	Status models.TeamApplicationStatus `json:"status"`
}

func (r TeamApplicationStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("недопустимый статус заявки")
	}
	return nil
}

type TeamApplicationView struct {
	ID        string                       `json:"id"`
	UserID    string                       `json:"user_id"`
	UserName  string                       `json:"user_name"`
	UserEmail string                       `json:"user_email"`
	Message   string                       `json:"message"`
	Status    models.TeamApplicationStatus `json:"status"`
	CreatedAt time.Time                    `json:"created_at"`
}

func TeamApplicationConvert(rec dbmodels.TeamApplication) TeamApplicationView {
	return TeamApplicationView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		UserEmail: rec.UserEmail,
		Message:   rec.Message,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
}
