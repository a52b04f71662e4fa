package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChallengeEnrollment is one user's attempt at one challenge duration.
// CurrentDay only ever moves forward; CompletedDays holds day numbers,
// unique and write-once per day.
type ChallengeEnrollment struct {
	ID              uint                     `gorm:"primaryKey" json:"id"`
	PublicID        string                   `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	UserID          uint                     `gorm:"not null;index" json:"user_id"`
	ChallengeID     uint                     `gorm:"not null;index" json:"challenge_id"`
	Challenge       Challenge                `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	DurationID      uint                     `gorm:"not null" json:"duration_id"`
	Duration        ChallengeDuration        `gorm:"foreignKey:DurationID" json:"duration,omitempty"`
	BrandType       string                   `gorm:"size:10;not null" json:"brand_type"`
	StartDate       time.Time                `json:"start_date"`
	EndDate         time.Time                `json:"end_date"`
	CurrentDay      int                      `gorm:"not null;default:1" json:"current_day"`
	CompletedDays   datatypes.JSONSlice[int] `gorm:"type:json" json:"completed_days"`
	Streak          int                      `gorm:"not null;default:0" json:"streak"`
	LastCompletedAt *time.Time               `json:"last_completed_at,omitempty"`
	Status          string                   `gorm:"size:10;not null;default:'active'" json:"status"`
	PointsEarned    int                      `gorm:"not null;default:0" json:"points_earned"`
	CompletedAt     *time.Time               `json:"completed_at,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusFailed    = "failed"
	EnrollmentStatusPaused    = "paused"
)

func (e *ChallengeEnrollment) DayCompleted(day int) bool {
	for _, d := range e.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}
