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
	"gorm.io/gorm/logger"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
)

// SQLiteRepository implements ports.KeymapRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.KeymapRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the chord logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CHORD_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
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
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&KeymapModel{}, &KeymapEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate keymap schema: %w", err)
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

// NewSQLiteRepositoryForPath creates a new SQLiteRepository inside a CHORD_HOME directory
func NewSQLiteRepositoryForPath(chordHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(chordHomePath, "chord.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements KeymapReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.Keymap, error) {
	var model KeymapModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Entries").
			Where("name = ?", name).
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrKeymapNotFound, name)
		}
		return nil, err
	}

	result := keymapModelToDomain(model)
	return &result, nil
}

// List implements KeymapReader.List
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Keymap, error) {
	var models []KeymapModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Entries").
			Order("name").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Keymap, len(models))
	for i, m := range models {
		result[i] = keymapModelToDomain(m)
	}
	return result, nil
}

// Create implements KeymapWriter.Create
func (r *SQLiteRepository) Create(ctx context.Context, keymap domain.Keymap) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&KeymapModel{}).Where("name = ?", keymap.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: %s", domain.ErrKeymapExists, keymap.Name)
			}

			model := domainToKeymapModel(keymap)
			if err := tx.Omit("Entries").Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create keymap: %w", err)
			}
			return createEntries(tx, keymap)
		})
	}, 3)
}

// Save implements KeymapWriter.Save, replacing any existing entries
func (r *SQLiteRepository) Save(ctx context.Context, keymap domain.Keymap) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := domainToKeymapModel(keymap)
			if err := tx.Omit("Entries").Save(&model).Error; err != nil {
				return fmt.Errorf("failed to save keymap: %w", err)
			}
			if err := tx.Where("keymap_name = ?", keymap.Name).Delete(&KeymapEntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear keymap entries: %w", err)
			}
			return createEntries(tx, keymap)
		})
	}, 3)
}

// Delete implements KeymapWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("keymap_name = ?", name).Delete(&KeymapEntryModel{}).Error; err != nil {
				return err
			}
			result := tx.Where("name = ?", name).Delete(&KeymapModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrKeymapNotFound, name)
			}
			return nil
		})
	}, 3)
}

func createEntries(tx *gorm.DB, keymap domain.Keymap) error {
	entries := domainToEntryModels(keymap)
	if len(entries) == 0 {
		return nil
	}
	if err := tx.Create(&entries).Error; err != nil {
		return fmt.Errorf("failed to create keymap entries: %w", err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
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
