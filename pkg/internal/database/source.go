package database

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	dialector := postgres.Open(viper.GetString("database.dsn"))
	C, err = gorm.Open(dialector, &gorm.Config{
		// Needed so toggle services can catch unique-constraint races as
		// gorm.ErrDuplicatedKey across drivers.
		TranslateError: true,
		Logger:         logger.New(&log.Logger, logger.Config{}),
	})

	return err
}
