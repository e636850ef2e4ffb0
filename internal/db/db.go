package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mealshare/internal/config"
	"mealshare/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// sqliteParams turns on foreign key enforcement for every pooled connection;
// cascades and SET NULL depend on it.
const sqliteParams = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

// Initialize opens the database described by cfg without migrating it.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("database URL must not be empty")
	}

	dialector, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

// GormConfig is shared by every connection the application opens.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(level),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// IsPostgresURL reports whether url selects the postgres driver. Anything else
// is treated as a sqlite file path.
func IsPostgresURL(url string) bool {
	lower := strings.ToLower(strings.TrimSpace(url))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

func dialectorFor(url string) (gorm.Dialector, error) {
	if IsPostgresURL(url) {
		return postgres.Open(url), nil
	}
	path := strings.TrimPrefix(url, "sqlite://")
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("prepare sqlite directory: %w", err)
	}
	return sqlite.Open(SQLiteDSN(path)), nil
}

// SQLiteDSN appends the connection parameters the schema relies on.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

func ensureDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// NeedsSeed reports whether cfg points at a sqlite file that does not exist
// yet and seeding of fresh databases is enabled.
func NeedsSeed(cfg config.DatabaseConfig) bool {
	if !cfg.SeedEmpty || cfg.UseMock || IsPostgresURL(cfg.URL) {
		return false
	}
	path := strings.TrimPrefix(strings.TrimSpace(cfg.URL), "sqlite://")
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return false
	}
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}

// AutoMigrate creates or updates all nine tables with their constraints.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	return db.AutoMigrate(models.All()...)
}

// Reset drops every table and recreates the schema from scratch.
func Reset(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	return AutoMigrate(db)
}

func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func MustConfigure(cfg config.DatabaseConfig) *gorm.DB {
	database, err := Configure(cfg)
	if err != nil {
		panic(err)
	}

	return database
}

// Close releases the pooled connections behind db. A nil handle is ignored.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
