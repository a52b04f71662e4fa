package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

// TaskPoints is the fixed reward for completing a single challenge day.
// Finishing the whole challenge adds the challenge's reward bonus on top.
const TaskPoints = 10

type EnrollmentService struct {
	db          *gorm.DB
	entitlement *EntitlementService
	activity    *ActivityService
	log         *logger.Logger
}

func NewEnrollmentService(db *gorm.DB, entitlement *EntitlementService, activity *ActivityService, log *logger.Logger) *EnrollmentService {
	return &EnrollmentService{db: db, entitlement: entitlement, activity: activity, log: log}
}

// Start enrolls a user in a challenge duration. A user holds at most one
// non-terminal enrollment per challenge regardless of duration, and pro-gated
// challenges are checked before anything is written.
func (s *EnrollmentService) Start(userID, challengeID, durationID uint, brandType string) (*models.ChallengeEnrollment, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, challengeID).Error; err != nil {
		return nil, ErrNotFound
	}

	var duration models.ChallengeDuration
	if err := s.db.Where("id = ? AND challenge_id = ?", durationID, challengeID).
		First(&duration).Error; err != nil {
		return nil, ErrNotFound
	}

	entitled, err := s.entitlement.IsEntitled(userID, &challenge)
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, ErrNotEntitled
	}

	var existing int64
	if err := s.db.Model(&models.ChallengeEnrollment{}).
		Where("user_id = ? AND challenge_id = ? AND status IN ?",
			userID, challengeID,
			[]string{models.EnrollmentStatusActive, models.EnrollmentStatusPaused}).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyEnrolled
	}

	switch brandType {
	case models.BrandTypeProduct, models.BrandTypeService:
	case "":
		brandType = models.BrandTypeProduct
	default:
		return nil, ErrInvalidBrandType
	}

	now := time.Now()
	enrollment := models.ChallengeEnrollment{
		PublicID:      uuid.NewString(),
		UserID:        userID,
		ChallengeID:   challengeID,
		DurationID:    durationID,
		BrandType:     brandType,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, duration.Days),
		CurrentDay:    1,
		CompletedDays: []int{},
		Status:        models.EnrollmentStatusActive,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	event, err := models.NewChallengeStartedEvent(userID, models.ChallengeStartedMeta{
		Challenge:    challenge.Name,
		DurationDays: duration.Days,
	})
	if err != nil {
		return nil, err
	}
	if err := s.activity.Append(event); err != nil {
		return nil, err
	}

	s.log.Info("challenge started",
		"user_id", userID, "challenge", challenge.Slug, "days", duration.Days)

	return &enrollment, nil
}

// CompleteTask records one day as done. Day completion is write-once: a
// resubmission is rejected, never silently absorbed. The current-day pointer
// advances only when the completed day is the current one, so finishing a
// previously skipped day leaves it in place.
func (s *EnrollmentService) CompleteTask(userID uint, publicID string, dayNumber int, response string) (*models.ChallengeEnrollment, error) {
	enrollment, err := s.load(userID, publicID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != models.EnrollmentStatusActive {
		return nil, ErrEnrollmentNotActive
	}

	var task models.ChallengeTask
	if err := s.db.Where("duration_id = ? AND day_number = ?", enrollment.DurationID, dayNumber).
		First(&task).Error; err != nil {
		return nil, ErrNotFound
	}

	if enrollment.DayCompleted(dayNumber) {
		return nil, ErrAlreadyCompleted
	}

	if task.CompletionType == models.TaskCompletionText && strings.TrimSpace(response) == "" {
		return nil, ErrInvalidResponse
	}

	enrollment.CompletedDays = append(enrollment.CompletedDays, dayNumber)
	enrollment.Streak = ComputeStreak(enrollment.CompletedDays)

	if dayNumber == enrollment.CurrentDay {
		enrollment.CurrentDay = dayNumber + 1
	}

	now := time.Now()
	enrollment.LastCompletedAt = &now

	finished := dayNumber == enrollment.Duration.Days
	points := TaskPoints
	if finished {
		enrollment.Status = models.EnrollmentStatusCompleted
		enrollment.CompletedAt = &now
		enrollment.CurrentDay = enrollment.Duration.Days
		points += enrollment.Challenge.RewardPoints
	}
	enrollment.PointsEarned += points

	if err := s.db.Save(enrollment).Error; err != nil {
		return nil, err
	}

	var event models.ActivityEvent
	if finished {
		event, err = models.NewChallengeCompletedEvent(userID, points, models.ChallengeCompletedMeta{
			Challenge: enrollment.Challenge.Name,
			Days:      enrollment.Duration.Days,
		})
	} else {
		event, err = models.NewTaskCompletedEvent(userID, points, models.TaskCompletedMeta{
			Challenge: enrollment.Challenge.Name,
			Day:       dayNumber,
		})
	}
	if err != nil {
		return nil, err
	}
	if err := s.activity.Append(event); err != nil {
		return nil, err
	}

	s.log.Info("task completed",
		"user_id", userID, "challenge", enrollment.Challenge.Slug,
		"day", dayNumber, "streak", enrollment.Streak, "finished", finished)

	return enrollment, nil
}

// Pause suspends an active enrollment.
func (s *EnrollmentService) Pause(userID uint, publicID string) (*models.ChallengeEnrollment, error) {
	enrollment, err := s.load(userID, publicID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != models.EnrollmentStatusActive {
		return nil, ErrEnrollmentNotActive
	}
	enrollment.Status = models.EnrollmentStatusPaused
	if err := s.db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Resume reactivates a paused enrollment.
func (s *EnrollmentService) Resume(userID uint, publicID string) (*models.ChallengeEnrollment, error) {
	enrollment, err := s.load(userID, publicID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != models.EnrollmentStatusPaused {
		return nil, ErrEnrollmentNotActive
	}
	enrollment.Status = models.EnrollmentStatusActive
	if err := s.db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Get returns one enrollment, marking it failed first if its window has
// lapsed. The lapse check runs on read; there is no background timer.
func (s *EnrollmentService) Get(userID uint, publicID string) (*models.ChallengeEnrollment, error) {
	enrollment, err := s.load(userID, publicID)
	if err != nil {
		return nil, err
	}
	if err := s.markLapsed(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) List(userID uint) ([]models.ChallengeEnrollment, error) {
	var enrollments []models.ChallengeEnrollment
	err := s.db.Where("user_id = ?", userID).
		Preload("Challenge").
		Preload("Duration").
		Order("created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	for i := range enrollments {
		if err := s.markLapsed(&enrollments[i]); err != nil {
			return nil, err
		}
	}
	return enrollments, nil
}

func (s *EnrollmentService) load(userID uint, publicID string) (*models.ChallengeEnrollment, error) {
	var enrollment models.ChallengeEnrollment
	err := s.db.Where("public_id = ? AND user_id = ?", publicID, userID).
		Preload("Challenge").
		Preload("Duration").
		First(&enrollment).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &enrollment, nil
}

func (s *EnrollmentService) markLapsed(enrollment *models.ChallengeEnrollment) error {
	if enrollment.Status != models.EnrollmentStatusActive {
		return nil
	}
	if time.Now().Before(enrollment.EndDate) {
		return nil
	}
	enrollment.Status = models.EnrollmentStatusFailed
	return s.db.Model(enrollment).Update("status", models.EnrollmentStatusFailed).Error
}

// ComputeStreak returns the length of the longest run of consecutive day
// numbers in the completed set. It says nothing about whether the run is
// still alive today; see StreakAlive for that.
func ComputeStreak(completedDays []int) int {
	if len(completedDays) == 0 {
		return 0
	}

	days := make([]int, len(completedDays))
	copy(days, completedDays)
	sort.Ints(days)

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			run++
		} else if days[i] != days[i-1] {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// StreakAlive reports whether the enrollment's streak is still current by
// wall clock: the latest completion happened today or yesterday. This is a
// display heuristic, intentionally separate from ComputeStreak.
func StreakAlive(enrollment *models.ChallengeEnrollment, now time.Time) bool {
	if enrollment.LastCompletedAt == nil {
		return false
	}
	last := *enrollment.LastCompletedAt
	lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	elapsed := nowDay.Sub(lastDay)
	return elapsed >= 0 && elapsed <= 24*time.Hour
}

// WeekSummary is one contiguous 7-day window of a duration.
type WeekSummary struct {
	Week      int `json:"week"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Points    int `json:"points"`
}

// WeeklyBreakdown partitions the duration's days into 7-day windows and
// counts completions per window. Window k covers days 7(k-1)+1 through
// min(7k, totalDays).
func WeeklyBreakdown(enrollment *models.ChallengeEnrollment, totalDays int) []WeekSummary {
	completed := make(map[int]bool, len(enrollment.CompletedDays))
	for _, d := range enrollment.CompletedDays {
		completed[d] = true
	}

	weeks := (totalDays + 6) / 7
	summaries := make([]WeekSummary, 0, weeks)
	for w := 1; w <= weeks; w++ {
		first := 7*(w-1) + 1
		last := 7 * w
		if last > totalDays {
			last = totalDays
		}

		done := 0
		for d := first; d <= last; d++ {
			if completed[d] {
				done++
			}
		}
		summaries = append(summaries, WeekSummary{
			Week:      w,
			Completed: done,
			Total:     last - first + 1,
			Points:    done * TaskPoints,
		})
	}
	return summaries
}
