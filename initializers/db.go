package initializers

import (
	"gorm.io/gorm"
	"skill-hire-backend/config"
	"skill-hire-backend/db"
)

func InitDBConnection() *gorm.DB {
	conn, err := db.Connect(config.Conf.DSN(), *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return conn
}
