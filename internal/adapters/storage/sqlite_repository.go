package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/revue/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.SettingsRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SettingsRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the preferences database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI and one-shot commands share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PreferenceModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens state.db inside a REVUE_HOME directory
func NewSQLiteRepositoryForPath(revueHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(revueHomePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// All implements SettingsReader.All
func (r *SQLiteRepository) All(ctx context.Context) (map[string]string, error) {
	var rows []PreferenceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Find(&rows).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// Get implements SettingsReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var row PreferenceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where(&PreferenceModel{Key: key}).First(&row).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load preference %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Set implements SettingsWriter.Set
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	return r.SetMany(ctx, map[string]string{key: value})
}

// SetMany implements SettingsWriter.SetMany, writing all values in one transaction
func (r *SQLiteRepository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for key, value := range values {
				row := PreferenceModel{Key: key, Value: value}
				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "key"}},
					DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
				}).Create(&row).Error
				if err != nil {
					return fmt.Errorf("failed to store preference %s: %w", key, err)
				}
			}
			return nil
		})
	}, maxRetries)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
