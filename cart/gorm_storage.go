package cart

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

// GormStorage keeps one CartRecord row per session.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Load(sessionID string) ([]byte, bool, error) {
	var rec models.CartRecord
	err := g.db.First(&rec, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Data), true, nil
}

func (g *GormStorage) Save(sessionID string, data []byte) error {
	rec := models.CartRecord{SessionID: sessionID, Data: string(data)}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
}

func (g *GormStorage) Delete(sessionID string) error {
	return g.db.Delete(&models.CartRecord{}, "session_id = ?", sessionID).Error
}
