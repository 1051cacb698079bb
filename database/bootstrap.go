package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmhub/config"
	"farmhub/entities"
	"farmhub/pkg/logging"
)

// Models is every table farmhub owns, in dependency order.
var Models = []any{
	&entities.Greenhouse{},
	&entities.RaisedBed{},
	&entities.Variety{},
	&entities.Crop{},
	&entities.HarvestRecord{},
	&entities.DailyActivity{},
	&entities.Customer{},
	&entities.SalesOrder{},
	&entities.OrderItem{},
	&entities.OrderFeedback{},
	&entities.User{},
	&entities.Session{},
}

// Open connects to the configured engine and brings the schema up to date.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres")
		}
		dial = postgres.Open(cfg.DatabaseURL)
	case "sqlite", "":
		dial = sqlite.Open(sqliteDSN(cfg.DBPath))
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logging.Component("db").Infof("connected (%s)", db.Dialector.Name())
	return db, nil
}

// Migrate runs AutoMigrate and then rewrites legacy rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := fixLegacyRows(db); err != nil {
		return fmt.Errorf("legacy fix: %w", err)
	}
	return nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logging.Component("gorm"), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// fixLegacyRows rewrites data older clients stored in forms the API no longer
// accepts: the derived "ready" crop status and unnormalized phone numbers.
func fixLegacyRows(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Crop{}).
			Where("status = ?", entities.CropReady).
			Update("status", entities.CropGrowing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			logging.Component("db").Infof("reset %d crops from ready to growing", res.RowsAffected)
		}

		var customers []entities.Customer
		if err := tx.Select("id", "phone").Find(&customers).Error; err != nil {
			return err
		}
		for _, c := range customers {
			norm, ok := entities.NormalizePhone(c.Phone)
			if norm == c.Phone {
				continue
			}
			if !ok {
				logging.Component("db").Warnf("customer %d: phone %q does not normalize to 10 digits, left as is", c.ID, c.Phone)
				continue
			}
			var taken int64
			if err := tx.Model(&entities.Customer{}).Where("phone = ? AND id <> ?", norm, c.ID).Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				logging.Component("db").Warnf("customer %d: normalized phone %s already used, left as is", c.ID, norm)
				continue
			}
			if err := tx.Model(&entities.Customer{}).Where("id = ?", c.ID).Update("phone", norm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
