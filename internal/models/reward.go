package models

import "time"

type Reward struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:200" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	PointCost   int    `gorm:"not null" json:"pointCost"`
	Category    string `gorm:"size:50" json:"category"`
	ImageURL    string `gorm:"type:text" json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

type UserReward struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	RewardID   uint      `gorm:"not null" json:"rewardId"`
	RedeemedAt time.Time `json:"redeemedAt"`
	Status     string    `gorm:"size:20;default:'pending'" json:"status"` // pending, fulfilled, cancelled
}
