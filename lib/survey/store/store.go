package store

import (
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Filter struct {
	Featured  *bool
	Published *bool
	OwnerID   string
}

type Provider interface {
	Create(rec dbmodels.Survey) (id string, err error)
	GetByID(id string) (rec *dbmodels.Survey, err error)
	List(filter Filter) (list []dbmodels.Survey, err error)
	ListByOwner(ownerID string) (list []dbmodels.Survey, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Survey) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Survey, error) {
	rec := dbmodels.Survey{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) List(filter Filter) (list []dbmodels.Survey, err error) {
	list = []dbmodels.Survey{}
	tx := i.db.Model(dbmodels.Survey{})
	if filter.Featured != nil {
		tx = tx.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Published != nil {
		tx = tx.Where("is_published = ?", *filter.Published)
	}
	if filter.OwnerID != "" {
		tx = tx.Where("owner_id = ?", filter.OwnerID)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByOwner(ownerID string) (list []dbmodels.Survey, err error) {
	list = []dbmodels.Survey{}
	err = i.db.
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Survey{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// Delete удаляет опрос и каскадом все его ответы одной транзакцией
func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("survey_id = ?", id).
			Delete(&dbmodels.SurveyResponse{}).
			Error; err != nil {
			return err
		}
		return tx.
			Delete(&dbmodels.Survey{BaseModel: dbmodels.BaseModel{ID: id}}).
			Error
	})
}
