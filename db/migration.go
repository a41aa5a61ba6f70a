package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "impar-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Survey{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Survey")
	}
	if err := DB.AutoMigrate(&dbmodels.SurveyResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SurveyResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.Suggestion{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Suggestion")
	}
	if err := DB.AutoMigrate(&dbmodels.TeamApplication{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TeamApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.PasswordRecovery{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PasswordRecovery")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
