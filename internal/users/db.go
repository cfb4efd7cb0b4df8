package users

import (
	"gorm.io/gorm"

	"github.com/toxzak/teletextplus/internal/models"
)

// DB is a sqlite-backed Store. Still advisory — errors are swallowed, a
// failed write just means a stale or missing entry.
type DB struct {
	conn *gorm.DB
}

func NewDB(conn *gorm.DB) *DB {
	return &DB{conn: conn}
}

func (s *DB) Get(id int64) (Entry, bool) {
	var rec models.CachedUser
	if err := s.conn.Where("telegram_user_id = ?", id).First(&rec).Error; err != nil {
		return Entry{}, false
	}
	return Entry{Name: rec.Name, LastSeen: rec.LastSeen}, true
}

func (s *DB) Put(id int64, e Entry) {
	var rec models.CachedUser
	_ = s.conn.Where("telegram_user_id = ?", id).
		FirstOrCreate(&rec, models.CachedUser{TelegramUserID: id}).Error
	rec.Name = e.Name
	rec.LastSeen = e.LastSeen
	_ = s.conn.Save(&rec).Error
}
