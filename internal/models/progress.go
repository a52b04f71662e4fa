package models

import (
	"time"

	"gorm.io/datatypes"
)

// DiagnosticProgress is the autosaved state of one user's in-flight attempt
// at one diagnostic. It is deleted when the attempt is finalized; a progress
// row and a result row for the same (user, diagnostic) never coexist.
type DiagnosticProgress struct {
	ID              uint                             `gorm:"primaryKey" json:"id"`
	UserID          uint                             `gorm:"not null;uniqueIndex:idx_progress_unique" json:"user_id"`
	DiagnosticID    uint                             `gorm:"not null;uniqueIndex:idx_progress_unique" json:"diagnostic_id"`
	Answers         datatypes.JSONType[map[uint]int] `gorm:"type:json" json:"answers"`
	PercentComplete int                              `gorm:"not null;default:0" json:"percent_complete"`
	NextQuestion    int                              `gorm:"not null;default:0" json:"next_question"`
	CreatedAt       time.Time                        `json:"created_at"`
	UpdatedAt       time.Time                        `json:"updated_at"`
}
