package models

import "time"

// User is an account plus the wellness counters attached to it.
// CurrentStreak and LongestStreak exist for the mobile client; nothing
// server-side computes them yet.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	FirstName          *string   `gorm:"size:100" json:"firstName"`
	LastName           *string   `gorm:"size:100" json:"lastName"`
	Age                *string   `gorm:"size:20" json:"age"`
	Gender             *string   `gorm:"size:50" json:"gender"`
	Goal               *string   `gorm:"type:text" json:"goal"`
	OnboardingComplete bool      `gorm:"default:false" json:"onboardingComplete"`
	NewsletterOptIn    bool      `gorm:"default:false" json:"newsletterOptIn"`
	HealthPoints       int       `gorm:"default:0" json:"healthPoints"`
	CurrentStreak      int       `gorm:"default:0" json:"currentStreak"`
	LongestStreak      int       `gorm:"default:0" json:"longestStreak"`
	Level              int       `gorm:"default:1" json:"level"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewUser carries the fields a caller may supply at signup.
type NewUser struct {
	Email           string
	Password        string
	FirstName       *string
	LastName        *string
	Age             *string
	Gender          *string
	Goal            *string
	NewsletterOptIn *bool
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirstName          *string
	LastName           *string
	Age                *string
	Gender             *string
	Goal               *string
	OnboardingComplete *bool
	NewsletterOptIn    *bool
	HealthPoints       *int
	CurrentStreak      *int
	LongestStreak      *int
	Level              *int
}

// Apply merges the non-nil fields of u over user.
func (u UserUpdate) Apply(user *User) {
	if u.FirstName != nil {
		user.FirstName = u.FirstName
	}
	if u.LastName != nil {
		user.LastName = u.LastName
	}
	if u.Age != nil {
		user.Age = u.Age
	}
	if u.Gender != nil {
		user.Gender = u.Gender
	}
	if u.Goal != nil {
		user.Goal = u.Goal
	}
	if u.OnboardingComplete != nil {
		user.OnboardingComplete = *u.OnboardingComplete
	}
	if u.NewsletterOptIn != nil {
		user.NewsletterOptIn = *u.NewsletterOptIn
	}
	if u.HealthPoints != nil {
		user.HealthPoints = *u.HealthPoints
	}
	if u.CurrentStreak != nil {
		user.CurrentStreak = *u.CurrentStreak
	}
	if u.LongestStreak != nil {
		user.LongestStreak = *u.LongestStreak
	}
	if u.Level != nil {
		user.Level = *u.Level
	}
}

// Columns returns the column/value map for a GORM Updates call.
func (u UserUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		cols["last_name"] = *u.LastName
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.Goal != nil {
		cols["goal"] = *u.Goal
	}
	if u.OnboardingComplete != nil {
		cols["onboarding_complete"] = *u.OnboardingComplete
	}
	if u.NewsletterOptIn != nil {
		cols["newsletter_opt_in"] = *u.NewsletterOptIn
	}
	if u.HealthPoints != nil {
		cols["health_points"] = *u.HealthPoints
	}
	if u.CurrentStreak != nil {
		cols["current_streak"] = *u.CurrentStreak
	}
	if u.LongestStreak != nil {
		cols["longest_streak"] = *u.LongestStreak
	}
	if u.Level != nil {
		cols["level"] = *u.Level
	}
	return cols
}
