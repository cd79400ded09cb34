// Package storage owns every wellness entity. Lookups that miss return a nil
// result and a nil error; updates that miss return ErrNotFound.
package storage

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
)

// SignupBonus is the healthPoints balance every new user starts with.
const SignupBonus = 10

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrCodeExhausted = errors.New("could not allocate a unique referral code")
)

// Storage is the persistence contract shared by MemStorage and GormStorage.
type Storage interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (*models.User, error)

	GetHealthPillars(ctx context.Context) ([]models.HealthPillar, error)
	GetUserPillars(ctx context.Context, userID uint) ([]models.UserPillar, error)
	UpsertUserPillar(ctx context.Context, score models.PillarScore) (*models.UserPillar, error)

	GetActivities(ctx context.Context) ([]models.Activity, error)
	GetActivitiesByContext(ctx context.Context, activityContext string) ([]models.Activity, error)
	GetUserActivitiesForDate(ctx context.Context, userID uint, date string) ([]models.UserActivity, error)
	CreateUserActivity(ctx context.Context, activity models.NewUserActivity) (*models.UserActivity, error)

	GetAchievements(ctx context.Context) ([]models.Achievement, error)
	GetUserAchievements(ctx context.Context, userID uint) ([]models.UserAchievement, error)

	GetRewards(ctx context.Context) ([]models.Reward, error)
	GetUserRewards(ctx context.Context, userID uint) ([]models.UserReward, error)

	CreateReferral(ctx context.Context, referrerID uint, email string) (*models.Referral, error)
	GetReferralByCode(ctx context.Context, code string) (*models.Referral, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

var (
	_ Storage = (*MemStorage)(nil)
	_ Storage = (*GormStorage)(nil)
)

const (
	codeAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength      = 6
	maxCodeAttempts = 5
)

// newReferralCode returns a random 6-character uppercase base-36 token.
func newReferralCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
