package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"match-chat-api/config/common"
	"match-chat-api/config/logger"
	"match-chat-api/entity"
)

type DBConfig struct {
	*gorm.DB
	log *logger.AppLogger
}

// NewDB opens the postgres pool and migrates the chat schema. Startup cannot continue without it.
func NewDB(cfg *common.Config, log *logger.AppLogger) *DBConfig {
	db, err := openDatabase(cfg)
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("database unavailable")
		panic(err)
	}
	return &DBConfig{DB: db, log: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

// Close releases the pool once the server has stopped.
func (db *DBConfig) Close() {
	conn, err := db.DB.DB()
	if err == nil {
		err = conn.Close()
	}
	if err != nil {
		db.log.Http.Warning.Warn().Err(err).Msg("closing database pool")
		return
	}
	db.log.Http.Info.Info().Msg("database pool closed")
}

func openDatabase(cfg *common.Config) (*gorm.DB, error) {
	host, user, password, name, port, timezone := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		host, user, password, name, port, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: entity.NamingStrategy,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s@%s/%s: %w", user, host, name, err)
	}
	if err := entity.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	conn, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxIdle, maxOpen, maxLifetime := cfg.GetDatabasePool()
	conn.SetMaxIdleConns(maxIdle)
	conn.SetMaxOpenConns(maxOpen)
	conn.SetConnMaxLifetime(maxLifetime)
	return db, nil
}
