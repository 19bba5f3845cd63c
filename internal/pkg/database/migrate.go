package database

import (
	"InterVue/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate 同步表结构并写入徽章目录
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Streak{},
		&model.Badge{},
		&model.UserBadge{},
		&model.RewardEvent{},
		&model.Interview{},
		&model.Feedback{},
		&model.PeerInterviewSession{},
		&model.PeerInterviewQuestion{},
		&model.PeerInterviewFeedback{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	badges := model.DefaultBadges()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "image_url", "description"}),
	}).Create(&badges).Error
	if err != nil {
		return fmt.Errorf("seed badges failed: %w", err)
	}

	log.Info("Database schema migrated", "badges", len(badges))
	return nil
}
