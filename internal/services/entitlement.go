package services

import (
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

// EntitlementService answers whether a user may start a given challenge.
// Plan changes themselves come from the billing integration, which only
// ever touches users.plan.
type EntitlementService struct {
	db *gorm.DB
}

func NewEntitlementService(db *gorm.DB) *EntitlementService {
	return &EntitlementService{db: db}
}

func (s *EntitlementService) IsEntitled(userID uint, challenge *models.Challenge) (bool, error) {
	if !challenge.ProOnly {
		return true, nil
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, ErrNotFound
	}
	return user.Plan == models.PlanPro, nil
}
