package models

import "time"

// CachedUser mirrors the in-memory user cache entry when a database is
// configured. One row per Telegram user.
type CachedUser struct {
	ID             uint  `gorm:"primarykey"`
	TelegramUserID int64 `gorm:"uniqueIndex"`
	Name           string
	LastSeen       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
