package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Diagnostic{},
		&models.DiagnosticQuestion{},
		&models.QuestionOption{},
		&models.Pillar{},
		&models.DiagnosticProgress{},
		&models.DiagnosticResult{},
		&models.Challenge{},
		&models.ChallengeDuration{},
		&models.ChallengeTask{},
		&models.ChallengeEnrollment{},
		&models.ActivityEvent{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, plan string) *models.User {
	t.Helper()

	user := models.User{
		Email:        fmt.Sprintf("%s-%s@example.com", t.Name(), plan),
		PasswordHash: "x",
		Plan:         plan,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedDiagnostic creates a diagnostic whose questions each carry options
// worth 0, 5 and 10 points.
func seedDiagnostic(t *testing.T, db *gorm.DB, numQuestions int) *models.Diagnostic {
	t.Helper()

	diagnostic := models.Diagnostic{
		Slug:  fmt.Sprintf("diag-%s", t.Name()),
		Title: "Test Diagnostic",
	}
	require.NoError(t, db.Create(&diagnostic).Error)

	for i := 1; i <= numQuestions; i++ {
		question := models.DiagnosticQuestion{
			DiagnosticID: diagnostic.ID,
			Text:         fmt.Sprintf("Question %d", i),
			OrderNum:     i,
		}
		require.NoError(t, db.Create(&question).Error)
		for _, points := range []int{0, 5, 10} {
			option := models.QuestionOption{
				QuestionID: question.ID,
				Label:      fmt.Sprintf("Option worth %d", points),
				Points:     points,
			}
			require.NoError(t, db.Create(&option).Error)
		}
	}
	return &diagnostic
}

// seedChallenge creates a challenge with one duration of the given length.
// Tasks default to simple acknowledgment; the day numbered textDay (if > 0)
// requires a written response instead.
func seedChallenge(t *testing.T, db *gorm.DB, days int, proOnly bool, reward int, textDay int) (*models.Challenge, *models.ChallengeDuration) {
	t.Helper()

	challenge := models.Challenge{
		Slug:         fmt.Sprintf("chal-%s", t.Name()),
		Name:         "Test Challenge",
		ProOnly:      proOnly,
		RewardPoints: reward,
	}
	require.NoError(t, db.Create(&challenge).Error)

	duration := models.ChallengeDuration{
		ChallengeID: challenge.ID,
		Days:        days,
		Label:       fmt.Sprintf("%d days", days),
	}
	require.NoError(t, db.Create(&duration).Error)

	for day := 1; day <= days; day++ {
		completionType := models.TaskCompletionCheck
		if day == textDay {
			completionType = models.TaskCompletionText
		}
		task := models.ChallengeTask{
			DurationID:     duration.ID,
			DayNumber:      day,
			Title:          fmt.Sprintf("Day %d task", day),
			CompletionType: completionType,
		}
		require.NoError(t, db.Create(&task).Error)
	}
	return &challenge, &duration
}

func newSessionService(db *gorm.DB) *DiagnosticSessionService {
	log := logger.NewNop()
	activity := NewActivityService(db, nil, log)
	return NewDiagnosticSessionService(db, NewScoringService(), activity, log)
}

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	log := logger.NewNop()
	activity := NewActivityService(db, nil, log)
	return NewEnrollmentService(db, NewEntitlementService(db), activity, log)
}
