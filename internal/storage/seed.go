package storage

import (
	"gorm.io/datatypes"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
)

// The seed functions return fresh slices so callers may keep them.

func SeedPillars() []models.HealthPillar {
	return []models.HealthPillar{
		{ID: 1, Name: "Healthy Eating", Description: "Nutrition and mindful eating habits"},
		{ID: 2, Name: "Movement", Description: "Physical activity and exercise"},
		{ID: 3, Name: "Community", Description: "Social connections and relationships"},
		{ID: 4, Name: "Nature", Description: "Time outdoors and connection with nature"},
		{ID: 5, Name: "Mind & Relaxation", Description: "Mental wellness and stress management"},
		{ID: 6, Name: "Sleep", Description: "Quality rest and sleep hygiene"},
	}
}

func SeedActivities() []models.Activity {
	return []models.Activity{
		{ID: 1, Title: "Morning Stretch", Description: "Gentle stretching to wake up your body", Duration: 5, Points: 5, PillarID: 5, Context: models.ContextMorning, Level: "beginner", IsActive: true},
		{ID: 2, Title: "Healthy Breakfast", Description: "Prepare a nutritious breakfast", Duration: 10, Points: 10, PillarID: 1, Context: models.ContextMorning, Level: "beginner", IsActive: true},
		{ID: 3, Title: "Gratitude Journal", Description: "Write down 3 things you're grateful for", Duration: 3, Points: 5, PillarID: 5, Context: models.ContextMorning, Level: "beginner", IsActive: true},
		{ID: 4, Title: "Outside Walk", Description: "Take a short walk outdoors", Duration: 5, Points: 8, PillarID: 4, Context: models.ContextMorning, Level: "beginner", IsActive: true},

		{ID: 5, Title: "Breathing Exercise", Description: "Deep breathing for relaxation", Duration: 3, Points: 5, PillarID: 5, Context: models.ContextWorkBreak, Level: "beginner", IsActive: true},
		{ID: 6, Title: "Desk Stretches", Description: "Stretch at your workspace", Duration: 2, Points: 3, PillarID: 2, Context: models.ContextWorkBreak, Level: "beginner", IsActive: true},

		{ID: 7, Title: "Evening Meditation", Description: "Mindful meditation before bed", Duration: 5, Points: 8, PillarID: 5, Context: models.ContextEvening, Level: "beginner", IsActive: true},
		{ID: 8, Title: "Call a Friend", Description: "Connect with someone you care about", Duration: 5, Points: 10, PillarID: 3, Context: models.ContextEvening, Level: "beginner", IsActive: true},
		{ID: 9, Title: "Sleep Routine", Description: "Prepare for quality sleep", Duration: 10, Points: 12, PillarID: 6, Context: models.ContextEvening, Level: "beginner", IsActive: true},
	}
}

func SeedAchievements() []models.Achievement {
	return []models.Achievement{
		{ID: 1, Name: "First Steps", Description: "Complete your first activity", Icon: "fas fa-baby", Requirement: datatypes.JSON(`{"activities":1}`), Points: 10},
		{ID: 2, Name: "Week Warrior", Description: "Complete activities for 7 days straight", Icon: "fas fa-fire", Requirement: datatypes.JSON(`{"streak":7}`), Points: 50},
		{ID: 3, Name: "Consistency Master", Description: "Complete activities 7 days in a row", Icon: "fas fa-medal", Requirement: datatypes.JSON(`{"streak":7}`), Points: 100},
		{ID: 4, Name: "Nature Lover", Description: "Complete 10 nature activities", Icon: "fas fa-leaf", Requirement: datatypes.JSON(`{"pillar":4,"count":10}`), Points: 25},
		{ID: 5, Name: "Social Butterfly", Description: "Complete 5 community activities", Icon: "fas fa-users", Requirement: datatypes.JSON(`{"pillar":3,"count":5}`), Points: 25},
	}
}

func SeedRewards() []models.Reward {
	return []models.Reward{
		{ID: 1, Name: "Healthy Salad", Description: "Fresh organic salad from local restaurant", PointCost: 50, Category: "food", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd", IsActive: true},
		{ID: 2, Name: "Yoga Class Pass", Description: "Single class at local yoga studio", PointCost: 100, Category: "fitness", ImageURL: "https://images.unsplash.com/photo-1506126613408-eca07ce68773", IsActive: true},
		{ID: 3, Name: "Meditation App Subscription", Description: "1-month premium meditation app", PointCost: 150, Category: "wellness", ImageURL: "https://images.unsplash.com/photo-1593811167562-9cef47bfc4d7", IsActive: true},
	}
}
