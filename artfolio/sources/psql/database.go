package psql

import (
	"context"
	"fmt"

	"artfolio/artfolio/config"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/utils/logging"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	logging.AppLogger.Info("connecting to database",
		zap.String("host", cfg.DBHost),
		zap.String("port", cfg.DBPort),
		zap.String("dbname", cfg.DBName),
	)
	return Open(ctx, postgres.Open(cfg.PostgresDSN()))
}

// Open connects through any gorm dialector and migrates the schema.
func Open(ctx context.Context, dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		AutoMigrate(
			&models.User{},
			&models.Portfolio{},
			&models.Image{},
			&models.Event{},
			&models.SocialConnection{},
		)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
