package dto

import "github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"

// UpdateUserRequest is a partial profile update. Email and password cannot
// be changed through it.
type UpdateUserRequest struct {
	FirstName          *string `json:"firstName" validate:"omitempty,max=100"`
	LastName           *string `json:"lastName" validate:"omitempty,max=100"`
	Age                *string `json:"age" validate:"omitempty,max=20"`
	Gender             *string `json:"gender" validate:"omitempty,max=50"`
	Goal               *string `json:"goal"`
	OnboardingComplete *bool   `json:"onboardingComplete"`
	NewsletterOptIn    *bool   `json:"newsletterOptIn"`
	HealthPoints       *int    `json:"healthPoints" validate:"omitempty,min=0"`
	CurrentStreak      *int    `json:"currentStreak" validate:"omitempty,min=0"`
	LongestStreak      *int    `json:"longestStreak" validate:"omitempty,min=0"`
	Level              *int    `json:"level" validate:"omitempty,min=1"`
}

func (r *UpdateUserRequest) ToUpdate() models.UserUpdate {
	return models.UserUpdate{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Age:                r.Age,
		Gender:             r.Gender,
		Goal:               r.Goal,
		OnboardingComplete: r.OnboardingComplete,
		NewsletterOptIn:    r.NewsletterOptIn,
		HealthPoints:       r.HealthPoints,
		CurrentStreak:      r.CurrentStreak,
		LongestStreak:      r.LongestStreak,
		Level:              r.Level,
	}
}

type UpsertPillarRequest struct {
	PillarID uint `json:"pillarId" validate:"required,min=1"`
	Score    *int `json:"score" validate:"omitempty,min=0,max=4"`
}

type RecordActivityRequest struct {
	ActivityID   uint   `json:"activityId" validate:"required,min=1"`
	PointsEarned *int   `json:"pointsEarned" validate:"required,min=0"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreateReferralRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}
