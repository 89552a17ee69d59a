package database

import (
	"fmt"
	"time"

	"patient-management-service/internal/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect prepares the GORM handle that request-scoped connections are drawn
// from. It does not dial: an unreachable database surfaces per request, not at
// startup.
func Connect(cfg *config.Config, zl zerolog.Logger) (*gorm.DB, error) {
	dialector := mysql.New(mysql.Config{
		DSN:                       cfg.Database.DSN(),
		SkipInitializeWithVersion: true,
		DefaultStringSize:         255,
	})

	db, err := Open(dialector, NewGormLogger(zl, cfg.Server.IsRelease()))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	// Idle connections default to zero so every request dials and hangs up its own session.
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	zl.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Database).
		Msg("database handle ready")

	return db, nil
}

// Open wraps gorm.Open with the settings every handle in this service shares.
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// NewGormLogger routes GORM's SQL log through zerolog.
func NewGormLogger(zl zerolog.Logger, release bool) logger.Interface {
	level := logger.Info
	if release {
		level = logger.Error
	}
	return logger.New(&zl, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
