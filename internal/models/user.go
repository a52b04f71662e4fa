package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:100" json:"display_name"`
	BrandName    string    `gorm:"size:100" json:"brand_name"`
	BrandType    string    `gorm:"size:10;default:''" json:"brand_type"`
	Plan         string    `gorm:"size:10;not null;default:'free'" json:"plan"`
	TotalPoints  int       `gorm:"not null;default:0" json:"total_points"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	PlanFree = "free"
	PlanPro  = "pro"
)
