package initializers

import (
	"gorm.io/gorm"
	"talent-park-backend/config"
	"talent-park-backend/db"
)

func InitDBConnection() *gorm.DB {
	conn, err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return conn
}
