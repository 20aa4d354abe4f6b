package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database handle that is passed into every store at
// startup. There is deliberately no package-level singleton; the caller owns
// the lifecycle and closes the handle on shutdown.
func Connect(host, port, database, user, pass string, debugMode, migrate bool) (*gorm.DB, error) {
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	conn, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "database connection failed")
	}
	if debugMode {
		conn.Logger = logger.Default.LogMode(logger.Info)
		conn = conn.Debug()
	}
	if migrate {
		if err = AutoMigrateDB(conn); err != nil {
			return nil, err
		}
	}
	log.Info("database connection established")
	return conn, nil
}

func Close(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err != nil {
		log.WithError(err).Error("failed to resolve sql connection on close")
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.WithError(err).Error("failed to close database connection")
	}
}

func Ping(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
