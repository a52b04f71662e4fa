package models

import "time"

type Challenge struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	Slug         string              `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name         string              `gorm:"size:255;not null" json:"name"`
	Category     string              `gorm:"size:50" json:"category"`
	Difficulty   string              `gorm:"size:20" json:"difficulty"`
	DailyMinutes int                 `gorm:"not null;default:0" json:"daily_minutes"`
	ProOnly      bool                `gorm:"not null;default:false" json:"pro_only"`
	RewardPoints int                 `gorm:"not null;default:0" json:"reward_points"`
	Durations    []ChallengeDuration `gorm:"foreignKey:ChallengeID" json:"durations,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

type ChallengeDuration struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ChallengeID uint            `gorm:"not null;index" json:"challenge_id"`
	Days        int             `gorm:"not null" json:"days"`
	Label       string          `gorm:"size:50" json:"label"`
	Tasks       []ChallengeTask `gorm:"foreignKey:DurationID" json:"tasks,omitempty"`
}

// ChallengeTask is one day's assignment within a duration. Content comes in
// two variants; ContentFor picks the one matching the enrollment's brand type.
type ChallengeTask struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	DurationID     uint   `gorm:"not null;uniqueIndex:idx_task_day" json:"duration_id"`
	DayNumber      int    `gorm:"not null;uniqueIndex:idx_task_day" json:"day_number"`
	Title          string `gorm:"size:255;not null" json:"title"`
	Rationale      string `gorm:"type:text" json:"rationale"`
	ContentProduct string `gorm:"type:text" json:"content_product"`
	ContentService string `gorm:"type:text" json:"content_service"`
	CompletionType string `gorm:"size:10;not null;default:'check'" json:"completion_type"`
	Optional       bool   `gorm:"not null;default:false" json:"optional"`
}

const (
	TaskCompletionCheck = "check"
	TaskCompletionText  = "text"
)

const (
	BrandTypeProduct = "product"
	BrandTypeService = "service"
)

func (t *ChallengeTask) ContentFor(brandType string) string {
	if brandType == BrandTypeService && t.ContentService != "" {
		return t.ContentService
	}
	return t.ContentProduct
}
