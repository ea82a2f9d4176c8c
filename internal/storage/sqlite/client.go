package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry описывает строку таблицы kv_entries.
type Entry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "kv_entries" }

// Client хранит KV в файле SQLite; сессия CLI переживает перезапуск процесса.
type Client struct {
	db *gorm.DB
}

// DefaultPath возвращает ~/.laplogger/session.db.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".laplogger", "session.db"), nil
}

// Open открывает (или создаёт) базу по пути path и применяет миграции.
// С path ":memory:" база живёт в памяти (для тестов).
func Open(path string) (*Client, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	if path == ":memory:" {
		// каждое новое соединение к :memory: открывает отдельную пустую базу
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Client{db: db}, nil
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	var e Entry
	err := c.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return e.Value, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("sqlite set %s: %w", key, err)
	}
	return nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("sqlite remove %s: %w", key, err)
	}
	return nil
}

func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
