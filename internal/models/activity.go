package models

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ActivityEvent is one row of the append-only activity ledger. Points is the
// delta applied to the user's running total; Metadata is built only through
// the typed constructors below so every event kind has a fixed field set.
type ActivityEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	EventType string         `gorm:"size:30;not null" json:"event_type"`
	Points    int            `gorm:"not null;default:0" json:"points"`
	Metadata  datatypes.JSON `gorm:"type:json" json:"metadata"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

const (
	EventDiagnosticCompleted = "diagnostic_completed"
	EventDiagnosticRetaken   = "diagnostic_retaken"
	EventChallengeStarted    = "challenge_started"
	EventTaskCompleted       = "task_completed"
	EventChallengeCompleted  = "challenge_completed"
)

type DiagnosticCompletedMeta struct {
	Diagnostic string `json:"diagnostic"`
	Score      int    `json:"score"`
	Stage      string `json:"stage"`
}

type DiagnosticRetakenMeta struct {
	Diagnostic string `json:"diagnostic"`
}

type ChallengeStartedMeta struct {
	Challenge    string `json:"challenge"`
	DurationDays int    `json:"duration_days"`
}

type TaskCompletedMeta struct {
	Challenge string `json:"challenge"`
	Day       int    `json:"day"`
}

type ChallengeCompletedMeta struct {
	Challenge string `json:"challenge"`
	Days      int    `json:"days"`
}

func NewDiagnosticCompletedEvent(userID uint, meta DiagnosticCompletedMeta) (ActivityEvent, error) {
	if meta.Diagnostic == "" || meta.Stage == "" {
		return ActivityEvent{}, errors.New("diagnostic completed event requires diagnostic and stage")
	}
	return newEvent(userID, EventDiagnosticCompleted, 0, meta)
}

func NewDiagnosticRetakenEvent(userID uint, meta DiagnosticRetakenMeta) (ActivityEvent, error) {
	if meta.Diagnostic == "" {
		return ActivityEvent{}, errors.New("diagnostic retaken event requires diagnostic")
	}
	return newEvent(userID, EventDiagnosticRetaken, 0, meta)
}

func NewChallengeStartedEvent(userID uint, meta ChallengeStartedMeta) (ActivityEvent, error) {
	if meta.Challenge == "" || meta.DurationDays < 1 {
		return ActivityEvent{}, errors.New("challenge started event requires challenge and duration")
	}
	return newEvent(userID, EventChallengeStarted, 0, meta)
}

func NewTaskCompletedEvent(userID uint, points int, meta TaskCompletedMeta) (ActivityEvent, error) {
	if meta.Challenge == "" || meta.Day < 1 {
		return ActivityEvent{}, errors.New("task completed event requires challenge and day")
	}
	return newEvent(userID, EventTaskCompleted, points, meta)
}

func NewChallengeCompletedEvent(userID uint, points int, meta ChallengeCompletedMeta) (ActivityEvent, error) {
	if meta.Challenge == "" || meta.Days < 1 {
		return ActivityEvent{}, errors.New("challenge completed event requires challenge and days")
	}
	return newEvent(userID, EventChallengeCompleted, points, meta)
}

func newEvent(userID uint, eventType string, points int, meta interface{}) (ActivityEvent, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return ActivityEvent{}, err
	}
	return ActivityEvent{
		UserID:    userID,
		EventType: eventType,
		Points:    points,
		Metadata:  datatypes.JSON(raw),
	}, nil
}
