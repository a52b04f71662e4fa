package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

func TestComputeStreak(t *testing.T) {
	cases := []struct {
		name string
		days []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 1},
		{"consecutive", []int{1, 2, 3}, 3},
		{"unsorted", []int{3, 1, 2}, 3},
		{"longest run wins over last run", []int{1, 2, 3, 5, 6}, 3},
		{"later run longer", []int{1, 3, 4, 5, 6}, 4},
		{"all gaps", []int{1, 3, 5, 7}, 1},
		{"duplicate days", []int{2, 2, 3}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ComputeStreak(c.days))
		})
	}
}

func TestStartEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	assert.NotEmpty(t, enrollment.PublicID)
	assert.Equal(t, 1, enrollment.CurrentDay)
	assert.Empty(t, enrollment.CompletedDays)
	assert.Equal(t, 0, enrollment.Streak)
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)
	assert.WithinDuration(t, enrollment.StartDate.AddDate(0, 0, 7), enrollment.EndDate, time.Second)

	var event models.ActivityEvent
	require.NoError(t, db.Where("user_id = ? AND event_type = ?", user.ID, models.EventChallengeStarted).First(&event).Error)
}

func TestStartAlreadyEnrolled(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	_, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	_, err = svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeService)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestStartPausedStillBlocks(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)
	_, err = svc.Pause(user.ID, enrollment.PublicID)
	require.NoError(t, err)

	_, err = svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestStartNotEntitled(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, true, 100, 0)

	_, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	assert.ErrorIs(t, err, ErrNotEntitled)

	// nothing was written
	var count int64
	db.Model(&models.ChallengeEnrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestStartProUserEntitled(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanPro)
	challenge, duration := seedChallenge(t, db, 7, true, 100, 0)

	_, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	assert.NoError(t, err)
}

func TestStartUnknownChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)

	_, err := svc.Start(user.ID, 999, 1, models.BrandTypeProduct)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteTaskAdvancesCurrentDay(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	updated, err := svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentDay)
	assert.Equal(t, []int(updated.CompletedDays), []int{1})
	assert.Equal(t, 1, updated.Streak)
	assert.Equal(t, TaskPoints, updated.PointsEarned)
	assert.NotNil(t, updated.LastCompletedAt)
}

func TestCompleteTaskAlreadyCompleted(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	require.NoError(t, err)
	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	reloaded, err := svc.Get(user.ID, enrollment.PublicID)
	require.NoError(t, err)
	assert.Equal(t, []int(reloaded.CompletedDays), []int{1})
	assert.Equal(t, TaskPoints, reloaded.PointsEarned)
}

func TestCompleteTaskRequiresResponse(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 2)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 2, "   ")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 2, "wrote my one-line promise")
	assert.NoError(t, err)

	// resubmitting a finished text day reports the completion, not the
	// missing response
	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 2, "")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestStartRejectsUnknownBrandType(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	_, err := svc.Start(user.ID, challenge.ID, duration.ID, "boutique")
	assert.ErrorIs(t, err, ErrInvalidBrandType)

	var count int64
	db.Model(&models.ChallengeEnrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.BrandTypeProduct, enrollment.BrandType)
}

func TestCompleteTaskUnknownDay(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 8, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteSkippedDayLeavesPointer(t *testing.T) {
	// 30-day challenge: complete days 1..7 in order, then jump to day 10.
	// The pointer stays at 8; the completed set holds {1..7, 10}.
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 30, false, 150, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	for day := 1; day <= 7; day++ {
		_, err = svc.CompleteTask(user.ID, enrollment.PublicID, day, "")
		require.NoError(t, err)
	}

	updated, err := svc.CompleteTask(user.ID, enrollment.PublicID, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 8, updated.CurrentDay)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 10}, []int(updated.CompletedDays))
	assert.Equal(t, 7, updated.Streak)
}

func TestCompleteBackfilledDayDoesNotRewind(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	require.NoError(t, err)
	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 3, "")
	require.NoError(t, err)
	updated, err := svc.CompleteTask(user.ID, enrollment.PublicID, 2, "")
	require.NoError(t, err)

	// day 2 was the current day, so the pointer moves to 3 and no further
	assert.Equal(t, 3, updated.CurrentDay)
	assert.Equal(t, 3, updated.Streak)
}

func TestCompleteFinalDayFinishesChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 3, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	var updated *models.ChallengeEnrollment
	for day := 1; day <= 3; day++ {
		updated, err = svc.CompleteTask(user.ID, enrollment.PublicID, day, "")
		require.NoError(t, err)
	}

	assert.Equal(t, models.EnrollmentStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	// 3 task completions plus the challenge bonus
	assert.Equal(t, 3*TaskPoints+50, updated.PointsEarned)
	assert.Equal(t, 3, updated.Streak)

	var event models.ActivityEvent
	require.NoError(t, db.Where("user_id = ? AND event_type = ?", user.ID, models.EventChallengeCompleted).First(&event).Error)
	assert.Equal(t, TaskPoints+50, event.Points)

	var reloadedUser models.User
	require.NoError(t, db.First(&reloadedUser, user.ID).Error)
	assert.Equal(t, 3*TaskPoints+50, reloadedUser.TotalPoints)

	// terminal: no further completions
	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 2, "")
	assert.ErrorIs(t, err, ErrEnrollmentNotActive)
}

func TestPauseResume(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	paused, err := svc.Pause(user.ID, enrollment.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusPaused, paused.Status)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	assert.ErrorIs(t, err, ErrEnrollmentNotActive)

	resumed, err := svc.Resume(user.ID, enrollment.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusActive, resumed.Status)

	_, err = svc.CompleteTask(user.ID, enrollment.PublicID, 1, "")
	assert.NoError(t, err)
}

func TestLapsedEnrollmentFails(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	user := createUser(t, db, models.PlanFree)
	challenge, duration := seedChallenge(t, db, 7, false, 50, 0)

	enrollment, err := svc.Start(user.ID, challenge.ID, duration.ID, models.BrandTypeProduct)
	require.NoError(t, err)

	past := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Model(&models.ChallengeEnrollment{}).
		Where("id = ?", enrollment.ID).
		Update("end_date", past).Error)

	reloaded, err := svc.Get(user.ID, enrollment.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusFailed, reloaded.Status)
}

func TestStreakAlive(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	assert.False(t, StreakAlive(&models.ChallengeEnrollment{}, now))
	assert.True(t, StreakAlive(&models.ChallengeEnrollment{LastCompletedAt: &now}, now))
	assert.True(t, StreakAlive(&models.ChallengeEnrollment{LastCompletedAt: &yesterday}, now))
	assert.False(t, StreakAlive(&models.ChallengeEnrollment{LastCompletedAt: &twoDaysAgo}, now))
}

func TestWeeklyBreakdown(t *testing.T) {
	enrollment := &models.ChallengeEnrollment{
		CompletedDays: []int{1, 2, 3, 4, 5, 6, 7, 10},
	}

	weeks := WeeklyBreakdown(enrollment, 30)
	require.Len(t, weeks, 5)

	assert.Equal(t, WeekSummary{Week: 1, Completed: 7, Total: 7, Points: 7 * TaskPoints}, weeks[0])
	assert.Equal(t, WeekSummary{Week: 2, Completed: 1, Total: 7, Points: TaskPoints}, weeks[1])
	assert.Equal(t, WeekSummary{Week: 3, Completed: 0, Total: 7, Points: 0}, weeks[2])
	// final window is clipped to the duration's last day
	assert.Equal(t, WeekSummary{Week: 5, Completed: 0, Total: 2, Points: 0}, weeks[4])
}

func TestWeeklyBreakdownShortDuration(t *testing.T) {
	enrollment := &models.ChallengeEnrollment{CompletedDays: []int{1, 3}}

	weeks := WeeklyBreakdown(enrollment, 7)
	require.Len(t, weeks, 1)
	assert.Equal(t, WeekSummary{Week: 1, Completed: 2, Total: 7, Points: 2 * TaskPoints}, weeks[0])
}
