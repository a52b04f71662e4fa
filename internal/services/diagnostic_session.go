package services

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

const (
	SessionNotStarted = "not_started"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// SessionState is a point-in-time view of one user's attempt at one
// diagnostic, rebuilt from storage on every call. Nothing is cached between
// operations.
type SessionState struct {
	Status          string                   `json:"status"`
	DiagnosticID    uint                     `json:"diagnostic_id"`
	Answers         map[uint]int             `json:"answers"`
	PercentComplete int                      `json:"percent_complete"`
	NextQuestion    int                      `json:"next_question"`
	TotalQuestions  int                      `json:"total_questions"`
	Result          *models.DiagnosticResult `json:"result,omitempty"`
}

type DiagnosticSessionService struct {
	db       *gorm.DB
	scoring  *ScoringService
	activity *ActivityService
	log      *logger.Logger
}

func NewDiagnosticSessionService(db *gorm.DB, scoring *ScoringService, activity *ActivityService, log *logger.Logger) *DiagnosticSessionService {
	return &DiagnosticSessionService{db: db, scoring: scoring, activity: activity, log: log}
}

func (s *DiagnosticSessionService) orderedQuestions(diagnosticID uint) ([]models.DiagnosticQuestion, error) {
	var questions []models.DiagnosticQuestion
	err := s.db.Where("diagnostic_id = ?", diagnosticID).
		Order("order_num ASC").
		Preload("Options").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Resume rebuilds the session state for (user, diagnostic). A stored result
// wins outright; otherwise saved progress positions the caller at the first
// unanswered question; otherwise the session is fresh. A progress row found
// next to a result is leftover from an interrupted finalize and is removed
// here.
func (s *DiagnosticSessionService) Resume(userID, diagnosticID uint) (*SessionState, error) {
	var diagnostic models.Diagnostic
	if err := s.db.First(&diagnostic, diagnosticID).Error; err != nil {
		return nil, ErrNotFound
	}

	questions, err := s.orderedQuestions(diagnosticID)
	if err != nil {
		return nil, err
	}

	var result models.DiagnosticResult
	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		First(&result).Error; err == nil {
		if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
			Delete(&models.DiagnosticProgress{}).Error; err != nil {
			return nil, err
		}
		return &SessionState{
			Status:          SessionCompleted,
			DiagnosticID:    diagnosticID,
			Answers:         result.Answers.Data(),
			PercentComplete: 100,
			NextQuestion:    len(questions) - 1,
			TotalQuestions:  len(questions),
			Result:          &result,
		}, nil
	}

	var progress models.DiagnosticProgress
	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		First(&progress).Error; err == nil {
		answers := progress.Answers.Data()
		next := len(answers)
		if next > len(questions)-1 {
			next = len(questions) - 1
		}
		return &SessionState{
			Status:          SessionInProgress,
			DiagnosticID:    diagnosticID,
			Answers:         answers,
			PercentComplete: progress.PercentComplete,
			NextQuestion:    next,
			TotalQuestions:  len(questions),
		}, nil
	}

	return &SessionState{
		Status:         SessionNotStarted,
		DiagnosticID:   diagnosticID,
		Answers:        map[uint]int{},
		TotalQuestions: len(questions),
	}, nil
}

// RecordAnswer stores the selected option's points for one question.
// Re-answering a question overwrites its previous value, so a retried call
// converges on the same state. Answering the last open question finalizes
// the attempt. A finalized attempt rejects further answers until Retake.
func (s *DiagnosticSessionService) RecordAnswer(userID, diagnosticID, questionID, optionID uint) (*SessionState, error) {
	var diagnostic models.Diagnostic
	if err := s.db.Preload("Pillars").First(&diagnostic, diagnosticID).Error; err != nil {
		return nil, ErrNotFound
	}

	var completed int64
	if err := s.db.Model(&models.DiagnosticResult{}).
		Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		Count(&completed).Error; err != nil {
		return nil, err
	}
	if completed > 0 {
		return nil, ErrAlreadyCompleted
	}

	questions, err := s.orderedQuestions(diagnosticID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}

	points, found := 0, false
	for _, q := range questions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.ID == optionID {
				points, found = o.Points, true
				break
			}
		}
		break
	}
	if !found {
		return nil, ErrNotFound
	}

	var progress models.DiagnosticProgress
	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		First(&progress).Error; err != nil {
		progress = models.DiagnosticProgress{
			UserID:       userID,
			DiagnosticID: diagnosticID,
		}
	}

	answers := progress.Answers.Data()
	if answers == nil {
		answers = map[uint]int{}
	}
	answers[questionID] = points

	total := len(questions)
	progress.Answers = datatypes.NewJSONType(answers)
	progress.PercentComplete = (len(answers)*100 + total/2) / total
	progress.NextQuestion = nextUnanswered(questions, answers)

	if progress.ID == 0 {
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "diagnostic_id"}},
			UpdateAll: true,
		}).Create(&progress).Error
	} else {
		err = s.db.Save(&progress).Error
	}
	if err != nil {
		return nil, err
	}

	if len(answers) == len(questions) {
		result, err := s.finalize(userID, &diagnostic, questions, answers)
		if err != nil {
			return nil, err
		}
		return &SessionState{
			Status:          SessionCompleted,
			DiagnosticID:    diagnosticID,
			Answers:         answers,
			PercentComplete: 100,
			NextQuestion:    len(questions) - 1,
			TotalQuestions:  len(questions),
			Result:          result,
		}, nil
	}

	return &SessionState{
		Status:          SessionInProgress,
		DiagnosticID:    diagnosticID,
		Answers:         answers,
		PercentComplete: progress.PercentComplete,
		NextQuestion:    progress.NextQuestion,
		TotalQuestions:  len(questions),
	}, nil
}

// finalize scores the attempt, replaces any prior result, and only then
// removes the progress row. A crash between the two writes leaves a dangling
// progress row that Resume cleans up on the next load.
func (s *DiagnosticSessionService) finalize(userID uint, diagnostic *models.Diagnostic, questions []models.DiagnosticQuestion, answers map[uint]int) (*models.DiagnosticResult, error) {
	totalScore := s.scoring.ComputeTotalScore(answers)
	pillarScores := s.scoring.ComputePillarScores(answers, questions, diagnostic.Pillars)
	stage := s.scoring.ClassifyStage(totalScore)

	result := models.DiagnosticResult{
		UserID:       userID,
		DiagnosticID: diagnostic.ID,
		TotalScore:   totalScore,
		Stage:        stage.Label,
		PillarScores: datatypes.NewJSONSlice(pillarScores),
		Answers:      datatypes.NewJSONType(answers),
		CompletedAt:  time.Now(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "diagnostic_id"}},
		UpdateAll: true,
	}).Create(&result).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnostic.ID).
		Delete(&models.DiagnosticProgress{}).Error; err != nil {
		return nil, err
	}

	event, err := models.NewDiagnosticCompletedEvent(userID, models.DiagnosticCompletedMeta{
		Diagnostic: diagnostic.Title,
		Score:      totalScore,
		Stage:      stage.Label,
	})
	if err != nil {
		return nil, err
	}
	if err := s.activity.Append(event); err != nil {
		return nil, err
	}

	s.log.Info("diagnostic finalized",
		"user_id", userID, "diagnostic", diagnostic.Slug, "score", totalScore, "stage", stage.Label)

	return &result, nil
}

// Retake clears both the result and any saved progress, returning the
// session to its starting state.
func (s *DiagnosticSessionService) Retake(userID, diagnosticID uint) error {
	var diagnostic models.Diagnostic
	if err := s.db.First(&diagnostic, diagnosticID).Error; err != nil {
		return ErrNotFound
	}

	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		Delete(&models.DiagnosticProgress{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		Delete(&models.DiagnosticResult{}).Error; err != nil {
		return err
	}

	event, err := models.NewDiagnosticRetakenEvent(userID, models.DiagnosticRetakenMeta{
		Diagnostic: diagnostic.Title,
	})
	if err != nil {
		return err
	}
	return s.activity.Append(event)
}

// Result returns the stored result without recomputing anything.
func (s *DiagnosticSessionService) Result(userID, diagnosticID uint) (*models.DiagnosticResult, error) {
	var result models.DiagnosticResult
	if err := s.db.Where("user_id = ? AND diagnostic_id = ?", userID, diagnosticID).
		First(&result).Error; err != nil {
		return nil, ErrNotFound
	}
	return &result, nil
}

func nextUnanswered(questions []models.DiagnosticQuestion, answers map[uint]int) int {
	for i, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return i
		}
	}
	return len(questions) - 1
}
