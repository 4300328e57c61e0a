package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) error {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	gormDB, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger:         gorm_logrus.New(),
		TranslateError: true,
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	var migrateFn func() error
	if migrate {
		migrateFn = AutoMigrateDB
	}
	return setDB(gormDB, debugMode, migrateFn)
}

// setDB публикует соединение и при необходимости применяет миграции
func setDB(gormDB *gorm.DB, debugMode bool, migrateFn func() error) error {
	if debugMode {
		gormDB.Logger = logger.Default.LogMode(logger.Info)
		DB = gormDB.Debug()
	} else {
		DB = gormDB
	}
	if migrateFn != nil {
		if err := migrateFn(); err != nil {
			return errors.Wrap(err, "ошибка миграции БД")
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return nil
}

// OpenInMemory отдельная in-memory sqlite база с примененными миграциями
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gorm_logrus.New(),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка открытия sqlite")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite не поддерживает параллельную запись
	sqlDB.SetMaxOpenConns(1)
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
