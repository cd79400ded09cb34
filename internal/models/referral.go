package models

import "time"

const ReferralPending = "pending"

type Referral struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferrerID    uint      `gorm:"not null;index" json:"referrerId"`
	RefereeEmail  string    `gorm:"size:255" json:"refereeEmail"`
	RefereeID     *uint     `json:"refereeId"`
	Code          string    `gorm:"not null;size:6;uniqueIndex" json:"code"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"` // pending, completed
	PointsAwarded int       `gorm:"default:0" json:"pointsAwarded"`
	CreatedAt     time.Time `json:"createdAt"`
}
