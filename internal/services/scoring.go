package services

import (
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

// Stage is a categorical band derived from a total score. Bands are
// inclusive at their lower bound.
type Stage struct {
	Label    string `json:"label"`
	Guidance string `json:"guidance"`
	MinScore int    `json:"min_score"`
}

// Ordered highest threshold first; ClassifyStage returns the first band the
// score meets or exceeds.
var stageThresholds = []Stage{
	{Label: "Dominant", MinScore: 81, Guidance: "Your brand leads its space. Protect the position and keep showing up."},
	{Label: "Active", MinScore: 61, Guidance: "Your brand is working for you. Sharpen what already converts."},
	{Label: "Emerging", MinScore: 31, Guidance: "Foundations are in place. Consistency is what moves you up from here."},
	{Label: "Weak", MinScore: 0, Guidance: "Start with the basics: a clear promise, one channel, steady presence."},
}

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

func (s *ScoringService) ComputeTotalScore(answers map[uint]int) int {
	total := 0
	for _, points := range answers {
		total += points
	}
	return total
}

// ComputePillarScores sums, per pillar, the points of only the questions that
// pillar covers. Questions outside every pillar are ignored; a question listed
// by more than one pillar contributes to each.
func (s *ScoringService) ComputePillarScores(answers map[uint]int, questions []models.DiagnosticQuestion, pillars []models.Pillar) []models.PillarScore {
	byOrder := make(map[int]uint, len(questions))
	for _, q := range questions {
		byOrder[q.OrderNum] = q.ID
	}

	scores := make([]models.PillarScore, 0, len(pillars))
	for _, p := range pillars {
		score := 0
		for _, orderNum := range p.QuestionOrder {
			if qid, ok := byOrder[orderNum]; ok {
				score += answers[qid]
			}
		}
		scores = append(scores, models.PillarScore{Name: p.Name, Score: score, Max: p.MaxScore})
	}
	return scores
}

func (s *ScoringService) ClassifyStage(totalScore int) Stage {
	for _, st := range stageThresholds {
		if totalScore >= st.MinScore {
			return st
		}
	}
	return stageThresholds[len(stageThresholds)-1]
}
