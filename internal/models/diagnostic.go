package models

import (
	"time"

	"gorm.io/datatypes"
)

type Diagnostic struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	Slug        string               `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description string               `gorm:"type:text" json:"description"`
	Questions   []DiagnosticQuestion `gorm:"foreignKey:DiagnosticID" json:"questions,omitempty"`
	Pillars     []Pillar             `gorm:"foreignKey:DiagnosticID" json:"pillars,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type DiagnosticQuestion struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	DiagnosticID uint             `gorm:"not null;index" json:"diagnostic_id"`
	Text         string           `gorm:"type:text;not null" json:"text"`
	OrderNum     int              `gorm:"not null" json:"order_num"`
	Options      []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Label      string `gorm:"size:500;not null" json:"label"`
	Points     int    `gorm:"not null;default:0" json:"points"`
}

// Pillar aggregates a subset of a diagnostic's questions into a named
// sub-score. QuestionOrder holds the order numbers of the questions it
// covers; pillars may overlap.
type Pillar struct {
	ID            uint                     `gorm:"primaryKey" json:"id"`
	DiagnosticID  uint                     `gorm:"not null;index" json:"diagnostic_id"`
	Name          string                   `gorm:"size:100;not null" json:"name"`
	QuestionOrder datatypes.JSONSlice[int] `gorm:"type:json" json:"question_order"`
	MaxScore      int                      `gorm:"not null;default:0" json:"max_score"`
}
