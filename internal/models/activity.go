package models

import "time"

// Activity contexts used by the seeded catalog.
const (
	ContextMorning   = "morning"
	ContextWorkBreak = "work-break"
	ContextEvening   = "evening"
)

type Activity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:200" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes
	Points      int    `gorm:"not null" json:"points"`
	PillarID    uint   `gorm:"not null;index" json:"pillarId"`
	Context     string `gorm:"not null;size:50;index" json:"context"`
	Level       string `gorm:"size:20;default:'beginner'" json:"level"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

// UserActivity records one completion. Date is an opaque YYYY-MM-DD string.
type UserActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_user_activities_user_date,priority:1" json:"userId"`
	ActivityID   uint      `gorm:"not null" json:"activityId"`
	PointsEarned int       `gorm:"not null" json:"pointsEarned"`
	Date         string    `gorm:"not null;size:10;index:idx_user_activities_user_date,priority:2" json:"date"`
	CompletedAt  time.Time `json:"completedAt"`
}

type NewUserActivity struct {
	UserID       uint
	ActivityID   uint
	PointsEarned int
	Date         string
}
