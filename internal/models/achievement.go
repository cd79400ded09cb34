package models

import (
	"time"

	"gorm.io/datatypes"
)

type Achievement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:100" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:100" json:"icon"`
	Requirement datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"requirement"`
	Points      int            `gorm:"default:0" json:"points"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	AchievementID uint      `gorm:"not null" json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`
}
