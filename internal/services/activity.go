package services

import (
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
	"github.com/chizhinime/brand-pawa-sub000/internal/ws"
)

// ActivityService is the append-only ledger of notable events and the
// running point total shown on the dashboard.
type ActivityService struct {
	db  *gorm.DB
	hub *ws.Hub
	log *logger.Logger
}

func NewActivityService(db *gorm.DB, hub *ws.Hub, log *logger.Logger) *ActivityService {
	return &ActivityService{db: db, hub: hub, log: log}
}

// Append writes one ledger entry and applies its point delta to the user's
// running total. Events reach the hub only after the write succeeds.
func (s *ActivityService) Append(event models.ActivityEvent) error {
	if err := s.db.Create(&event).Error; err != nil {
		return err
	}

	if event.Points != 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", event.UserID).
			Update("total_points", gorm.Expr("total_points + ?", event.Points)).Error; err != nil {
			return err
		}
	}

	s.log.Info("activity recorded", "user_id", event.UserID, "event", event.EventType, "points", event.Points)

	if s.hub != nil {
		s.hub.Broadcast(event.UserID, ws.Message{Type: event.EventType, Data: event})
	}
	return nil
}

func (s *ActivityService) ListRecent(userID uint, limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var events []models.ActivityEvent
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *ActivityService) TotalPoints(userID uint) (int, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return 0, ErrNotFound
	}
	return user.TotalPoints, nil
}
