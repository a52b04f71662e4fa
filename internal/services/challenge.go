package services

import (
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) List() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.Preload("Durations", func(db *gorm.DB) *gorm.DB {
		return db.Order("days ASC")
	}).
		Order("created_at ASC").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *ChallengeService) GetBySlug(slug string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.Where("slug = ?", slug).
		Preload("Durations", func(db *gorm.DB) *gorm.DB {
			return db.Order("days ASC")
		}).
		Preload("Durations.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		First(&challenge).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &challenge, nil
}

// TasksForDuration returns a duration's tasks in day order.
func (s *ChallengeService) TasksForDuration(durationID uint) ([]models.ChallengeTask, error) {
	var tasks []models.ChallengeTask
	err := s.db.Where("duration_id = ?", durationID).
		Order("day_number ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
