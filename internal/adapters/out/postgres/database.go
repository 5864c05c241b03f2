package postgres

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"kitchen/internal/adapters/out/postgres/catalogrepo"
	"kitchen/internal/adapters/out/postgres/customerrepo"
	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/reviewrepo"
	"kitchen/internal/adapters/out/postgres/sessionrepo"
	"kitchen/internal/adapters/out/postgres/settingsrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and locates the database.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		path := c.SQLitePath
		if path == "" {
			path = "kitchen.db"
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return "file:" + path + sep + "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// OpenDatabase connects with the configured driver and logs through log.
// Driver errors about duplicate keys are translated into gorm.ErrDuplicatedKey.
func OpenDatabase(c DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch c.Driver {
	case DriverPostgres, "":
		dialector = gorm_postgres.Open(c.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(c.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.Driver, err)
	}

	if c.Driver == DriverSQLite {
		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return nil, sqlErr
		}
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Models lists every table owned by this adapter.
func Models() []any {
	return []any{
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&settingsrepo.SettingsDTO{},
		&catalogrepo.BannerDTO{},
		&catalogrepo.CategoryDTO{},
		&reviewrepo.ReviewDTO{},
		&sessionrepo.SessionDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
