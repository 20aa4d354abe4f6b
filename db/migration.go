package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "talent-park-backend/models/db"
)

func AutoMigrateDB(conn *gorm.DB) error {
	conn.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := conn.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := conn.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "failed to migrate Job")
	}
	if err := conn.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	log.Info("migrations finished")
	return nil
}
