package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
)

type pillarKey struct {
	userID   uint
	pillarID uint
}

// MemStorage keeps everything in process memory. Catalog rows keep their
// seeded ids; every row created at runtime draws from one shared counter
// starting at 1. Each method is atomic on its own; sequences of calls are not.
type MemStorage struct {
	mu     sync.RWMutex
	nextID uint

	users  map[uint]models.User
	emails map[string]uint

	pillars      []models.HealthPillar
	userPillars  map[uint]models.UserPillar
	pillarScores map[pillarKey]uint

	activities     []models.Activity
	userActivities []models.UserActivity

	achievements     []models.Achievement
	userAchievements []models.UserAchievement

	rewards     []models.Reward
	userRewards []models.UserReward

	referrals []models.Referral
	codes     map[string]int

	newCode func() string
	now     func() time.Time
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		nextID:       1,
		users:        make(map[uint]models.User),
		emails:       make(map[string]uint),
		pillars:      SeedPillars(),
		userPillars:  make(map[uint]models.UserPillar),
		pillarScores: make(map[pillarKey]uint),
		activities:   SeedActivities(),
		achievements: SeedAchievements(),
		rewards:      SeedRewards(),
		codes:        make(map[string]int),
		newCode:      newReferralCode,
		now:          time.Now,
	}
}

// allocID must be called with mu held for writing.
func (s *MemStorage) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *MemStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, nil
	}
	user := s.users[id]
	return &user, nil
}

// CreateUser does not enforce email uniqueness; that is the caller's job.
// The email index keeps the first user registered under an address.
func (s *MemStorage) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:           s.allocID(),
		Email:        in.Email,
		Password:     in.Password,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Gender:       in.Gender,
		Goal:         in.Goal,
		HealthPoints: SignupBonus,
		Level:        1,
		CreatedAt:    s.now(),
	}
	if in.NewsletterOptIn != nil {
		user.NewsletterOptIn = *in.NewsletterOptIn
	}

	s.users[user.ID] = user
	if _, taken := s.emails[user.Email]; !taken {
		s.emails[user.Email] = user.ID
	}
	return &user, nil
}

func (s *MemStorage) UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.Apply(&user)
	s.users[id] = user
	return &user, nil
}

func (s *MemStorage) GetHealthPillars(ctx context.Context) ([]models.HealthPillar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.pillars), nil
}

func (s *MemStorage) GetUserPillars(ctx context.Context, userID uint) ([]models.UserPillar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.UserPillar, 0)
	for _, up := range s.userPillars {
		if up.UserID == userID {
			result = append(result, up)
		}
	}
	slices.SortFunc(result, func(a, b models.UserPillar) int { return int(a.ID) - int(b.ID) })
	return result, nil
}

// UpsertUserPillar keeps at most one row per (user, pillar). An existing row
// takes the new score (when given) and a fresh lastUpdated; a new row starts
// with totalPoints 0.
func (s *MemStorage) UpsertUserPillar(ctx context.Context, in models.PillarScore) (*models.UserPillar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pillarKey{userID: in.UserID, pillarID: in.PillarID}
	if id, ok := s.pillarScores[key]; ok {
		up := s.userPillars[id]
		if in.Score != nil {
			up.Score = *in.Score
		}
		up.LastUpdated = s.now()
		s.userPillars[id] = up
		return &up, nil
	}

	up := models.UserPillar{
		ID:          s.allocID(),
		UserID:      in.UserID,
		PillarID:    in.PillarID,
		LastUpdated: s.now(),
	}
	if in.Score != nil {
		up.Score = *in.Score
	}
	s.userPillars[up.ID] = up
	s.pillarScores[key] = up.ID
	return &up, nil
}

func (s *MemStorage) GetActivities(ctx context.Context) ([]models.Activity, error) {
	return s.filterActivities(ctx, func(a models.Activity) bool { return true })
}

func (s *MemStorage) GetActivitiesByContext(ctx context.Context, activityContext string) ([]models.Activity, error) {
	return s.filterActivities(ctx, func(a models.Activity) bool { return a.Context == activityContext })
}

func (s *MemStorage) filterActivities(ctx context.Context, keep func(models.Activity) bool) ([]models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if a.IsActive && keep(a) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *MemStorage) GetUserActivitiesForDate(ctx context.Context, userID uint, date string) ([]models.UserActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.UserActivity, 0)
	for _, ua := range s.userActivities {
		if ua.UserID == userID && ua.Date == date {
			result = append(result, ua)
		}
	}
	return result, nil
}

// CreateUserActivity stores the completion as given. The activity id and
// point value are not checked against the catalog.
func (s *MemStorage) CreateUserActivity(ctx context.Context, in models.NewUserActivity) (*models.UserActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ua := models.UserActivity{
		ID:           s.allocID(),
		UserID:       in.UserID,
		ActivityID:   in.ActivityID,
		PointsEarned: in.PointsEarned,
		Date:         in.Date,
		CompletedAt:  s.now(),
	}
	s.userActivities = append(s.userActivities, ua)
	return &ua, nil
}

func (s *MemStorage) GetAchievements(ctx context.Context) ([]models.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.achievements), nil
}

func (s *MemStorage) GetUserAchievements(ctx context.Context, userID uint) ([]models.UserAchievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.UserAchievement, 0)
	for _, ua := range s.userAchievements {
		if ua.UserID == userID {
			result = append(result, ua)
		}
	}
	return result, nil
}

func (s *MemStorage) GetRewards(ctx context.Context) ([]models.Reward, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Reward, 0, len(s.rewards))
	for _, r := range s.rewards {
		if r.IsActive {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *MemStorage) GetUserRewards(ctx context.Context, userID uint) ([]models.UserReward, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.UserReward, 0)
	for _, ur := range s.userRewards {
		if ur.UserID == userID {
			result = append(result, ur)
		}
	}
	return result, nil
}

// CreateReferral issues a pending referral under a fresh code. A generated
// code that is already in use is discarded and redrawn.
func (s *MemStorage) CreateReferral(ctx context.Context, referrerID uint, email string) (*models.Referral, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	code := ""
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate := s.newCode()
		if _, taken := s.codes[candidate]; !taken {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, ErrCodeExhausted
	}

	ref := models.Referral{
		ID:           s.allocID(),
		ReferrerID:   referrerID,
		RefereeEmail: email,
		Code:         code,
		Status:       models.ReferralPending,
		CreatedAt:    s.now(),
	}
	s.codes[code] = len(s.referrals)
	s.referrals = append(s.referrals, ref)
	return &ref, nil
}

func (s *MemStorage) GetReferralByCode(ctx context.Context, code string) (*models.Referral, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.codes[code]
	if !ok {
		return nil, nil
	}
	ref := s.referrals[idx]
	return &ref, nil
}

func (s *MemStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}
