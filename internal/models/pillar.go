package models

import "time"

type HealthPillar struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// UserPillar is a user's self-assessment for one pillar. Score is on a 0-4
// scale. (UserID, PillarID) is unique.
type UserPillar struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_pillars_user_pillar,priority:1" json:"userId"`
	PillarID    uint      `gorm:"not null;uniqueIndex:idx_user_pillars_user_pillar,priority:2" json:"pillarId"`
	Score       int       `gorm:"default:0" json:"score"`
	TotalPoints int       `gorm:"default:0" json:"totalPoints"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// PillarScore is the input to an upsert. A nil Score keeps the stored value
// on update and defaults to 0 on insert.
type PillarScore struct {
	UserID   uint
	PillarID uint
	Score    *int
}
