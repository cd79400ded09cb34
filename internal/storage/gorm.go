package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
)

// GormStorage persists entities through GORM. The connection must be opened
// with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type GormStorage struct {
	db      *gorm.DB
	newCode func() string
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db, newCode: newReferralCode}
}

// Models returns the entity tables for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.HealthPillar{},
		&models.UserPillar{},
		&models.Activity{},
		&models.UserActivity{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Reward{},
		&models.UserReward{},
		&models.Referral{},
	}
}

// Seed inserts the catalog rows, leaving existing ids untouched.
func (s *GormStorage) Seed(ctx context.Context) error {
	insert := func(rows interface{}) error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
	}

	pillars := SeedPillars()
	if err := insert(&pillars); err != nil {
		return fmt.Errorf("failed to seed pillars: %w", err)
	}
	activities := SeedActivities()
	if err := insert(&activities); err != nil {
		return fmt.Errorf("failed to seed activities: %w", err)
	}
	achievements := SeedAchievements()
	if err := insert(&achievements); err != nil {
		return fmt.Errorf("failed to seed achievements: %w", err)
	}
	rewards := SeedRewards()
	if err := insert(&rewards); err != nil {
		return fmt.Errorf("failed to seed rewards: %w", err)
	}

	slog.Info("catalog seeded",
		"pillars", len(pillars),
		"activities", len(activities),
		"achievements", len(achievements),
		"rewards", len(rewards),
	)
	return nil
}

func (s *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	user := models.User{
		Email:        in.Email,
		Password:     in.Password,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Gender:       in.Gender,
		Goal:         in.Goal,
		HealthPoints: SignupBonus,
		Level:        1,
		CreatedAt:    time.Now(),
	}
	if in.NewsletterOptIn != nil {
		user.NewsletterOptIn = *in.NewsletterOptIn
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *GormStorage) UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if cols := update.Columns(); len(cols) > 0 {
			if err := tx.Model(&user).Updates(cols).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	update.Apply(&user)
	return &user, nil
}

func (s *GormStorage) GetHealthPillars(ctx context.Context) ([]models.HealthPillar, error) {
	pillars := make([]models.HealthPillar, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&pillars).Error; err != nil {
		return nil, fmt.Errorf("failed to get pillars: %w", err)
	}
	return pillars, nil
}

func (s *GormStorage) GetUserPillars(ctx context.Context, userID uint) ([]models.UserPillar, error) {
	rows := make([]models.UserPillar, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user pillars: %w", err)
	}
	return rows, nil
}

// UpsertUserPillar relies on the (user_id, pillar_id) unique index: a
// conflicting insert turns into an update of score (when given) and
// last_updated.
func (s *GormStorage) UpsertUserPillar(ctx context.Context, in models.PillarScore) (*models.UserPillar, error) {
	row := models.UserPillar{
		UserID:      in.UserID,
		PillarID:    in.PillarID,
		LastUpdated: time.Now(),
	}
	updateCols := []string{"last_updated"}
	if in.Score != nil {
		row.Score = *in.Score
		updateCols = append(updateCols, "score")
	}

	var out models.UserPillar
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "pillar_id"}},
			DoUpdates: clause.AssignmentColumns(updateCols),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND pillar_id = ?", in.UserID, in.PillarID).First(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user pillar: %w", err)
	}
	return &out, nil
}

func (s *GormStorage) GetActivities(ctx context.Context) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return activities, nil
}

func (s *GormStorage) GetActivitiesByContext(ctx context.Context, activityContext string) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND context = ?", true, activityContext).
		Order("id").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get activities by context: %w", err)
	}
	return activities, nil
}

func (s *GormStorage) GetUserActivitiesForDate(ctx context.Context, userID uint, date string) ([]models.UserActivity, error) {
	rows := make([]models.UserActivity, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user activities: %w", err)
	}
	return rows, nil
}

func (s *GormStorage) CreateUserActivity(ctx context.Context, in models.NewUserActivity) (*models.UserActivity, error) {
	ua := models.UserActivity{
		UserID:       in.UserID,
		ActivityID:   in.ActivityID,
		PointsEarned: in.PointsEarned,
		Date:         in.Date,
		CompletedAt:  time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&ua).Error; err != nil {
		return nil, fmt.Errorf("failed to create user activity: %w", err)
	}
	return &ua, nil
}

func (s *GormStorage) GetAchievements(ctx context.Context) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	return achievements, nil
}

func (s *GormStorage) GetUserAchievements(ctx context.Context, userID uint) ([]models.UserAchievement, error) {
	rows := make([]models.UserAchievement, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user achievements: %w", err)
	}
	return rows, nil
}

func (s *GormStorage) GetRewards(ctx context.Context) ([]models.Reward, error) {
	rewards := make([]models.Reward, 0)
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	return rewards, nil
}

func (s *GormStorage) GetUserRewards(ctx context.Context, userID uint) ([]models.UserReward, error) {
	rows := make([]models.UserReward, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user rewards: %w", err)
	}
	return rows, nil
}

// CreateReferral redraws the code when the unique index rejects it.
func (s *GormStorage) CreateReferral(ctx context.Context, referrerID uint, email string) (*models.Referral, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		ref := models.Referral{
			ReferrerID:   referrerID,
			RefereeEmail: email,
			Code:         s.newCode(),
			Status:       models.ReferralPending,
			CreatedAt:    time.Now(),
		}
		err := s.db.WithContext(ctx).Create(&ref).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create referral: %w", err)
		}
		return &ref, nil
	}
	return nil, ErrCodeExhausted
}

func (s *GormStorage) GetReferralByCode(ctx context.Context, code string) (*models.Referral, error) {
	var ref models.Referral
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get referral: %w", err)
	}
	return &ref, nil
}

func (s *GormStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
