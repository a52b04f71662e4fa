package models

import (
	"time"

	"gorm.io/datatypes"
)

type PillarScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// DiagnosticResult is the immutable outcome of a completed diagnostic
// attempt. Retaking replaces it wholesale.
type DiagnosticResult struct {
	ID           uint                             `gorm:"primaryKey" json:"id"`
	UserID       uint                             `gorm:"not null;uniqueIndex:idx_result_unique" json:"user_id"`
	DiagnosticID uint                             `gorm:"not null;uniqueIndex:idx_result_unique" json:"diagnostic_id"`
	TotalScore   int                              `gorm:"not null" json:"total_score"`
	Stage        string                           `gorm:"size:20;not null" json:"stage"`
	PillarScores datatypes.JSONSlice[PillarScore] `gorm:"type:json" json:"pillar_scores"`
	Answers      datatypes.JSONType[map[uint]int] `gorm:"type:json" json:"answers"`
	CompletedAt  time.Time                        `json:"completed_at"`
}
