package store

import (
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PasswordRecovery) (id string, err error)
	GetPendingByEmailAndCode(email, code string) (rec *dbmodels.PasswordRecovery, err error)
	List() (list []dbmodels.PasswordRecovery, err error)
	MarkUsed(id string, usedAt time.Time) error
	ExpirePendingOlderThan(deadline time.Time) (int64, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PasswordRecovery) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetPendingByEmailAndCode(email, code string) (*dbmodels.PasswordRecovery, error) {
	rec := dbmodels.PasswordRecovery{}
	err := i.db.
		Where("user_email = ?", email).
		Where("recovery_code = ?", code).
		Where("status = ?", string(models.RecoveryStatusPending)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.PasswordRecovery, err error) {
	list = []dbmodels.PasswordRecovery{}
	err = i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkUsed(id string, usedAt time.Time) error {
	err := i.db.
		Model(&dbmodels.PasswordRecovery{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(models.RecoveryStatusUsed),
			"used_at": usedAt,
		}).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ExpirePendingOlderThan помечает протухшие заявки, возвращает число затронутых строк
func (i impl) ExpirePendingOlderThan(deadline time.Time) (int64, error) {
	tx := i.db.
		Model(&dbmodels.PasswordRecovery{}).
		Where("status = ?", string(models.RecoveryStatusPending)).
		Where("created_at < ?", deadline).
		Update("status", string(models.RecoveryStatusExpired))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.PasswordRecovery{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
