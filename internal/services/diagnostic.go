package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

type DiagnosticService struct {
	db *gorm.DB
}

func NewDiagnosticService(db *gorm.DB) *DiagnosticService {
	return &DiagnosticService{db: db}
}

func (s *DiagnosticService) List() ([]models.Diagnostic, error) {
	var diagnostics []models.Diagnostic
	err := s.db.Order("created_at ASC").Find(&diagnostics).Error
	if err != nil {
		return nil, err
	}
	return diagnostics, nil
}

func (s *DiagnosticService) GetBySlug(slug string) (*models.Diagnostic, error) {
	var diagnostic models.Diagnostic
	err := s.db.Where("slug = ?", slug).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions.Options").
		Preload("Pillars").
		First(&diagnostic).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &diagnostic, nil
}

func (s *DiagnosticService) GetByID(id uint) (*models.Diagnostic, error) {
	var diagnostic models.Diagnostic
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).
		Preload("Questions.Options").
		Preload("Pillars").
		First(&diagnostic, id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &diagnostic, nil
}

// ImportOption, ImportQuestion, ImportPillar and ImportDefinition together
// describe a full diagnostic definition as authored in JSON. Definitions are
// immutable once imported; re-authoring means importing under a new slug.
type ImportOption struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type ImportQuestion struct {
	Text    string         `json:"text"`
	Options []ImportOption `json:"options"`
}

type ImportPillar struct {
	Name          string `json:"name"`
	QuestionOrder []int  `json:"question_order"`
	MaxScore      int    `json:"max_score"`
}

type ImportDefinition struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []ImportQuestion `json:"questions"`
	Pillars     []ImportPillar   `json:"pillars,omitempty"`
}

func (s *DiagnosticService) Import(def ImportDefinition) (*models.Diagnostic, error) {
	if def.Slug == "" || def.Title == "" {
		return nil, errors.New("diagnostic requires a slug and a title")
	}
	if len(def.Questions) == 0 {
		return nil, errors.New("diagnostic must have at least one question")
	}
	for i, q := range def.Questions {
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d must have at least two options", i+1)
		}
	}
	for _, p := range def.Pillars {
		for _, orderNum := range p.QuestionOrder {
			if orderNum < 1 || orderNum > len(def.Questions) {
				return nil, fmt.Errorf("pillar %q references question %d which does not exist", p.Name, orderNum)
			}
		}
	}

	var existing models.Diagnostic
	if err := s.db.Where("slug = ?", def.Slug).First(&existing).Error; err == nil {
		return nil, errors.New("a diagnostic with this slug already exists")
	}

	diagnostic := models.Diagnostic{
		Slug:        def.Slug,
		Title:       def.Title,
		Description: def.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&diagnostic).Error; err != nil {
			return err
		}
		for i, q := range def.Questions {
			question := models.DiagnosticQuestion{
				DiagnosticID: diagnostic.ID,
				Text:         q.Text,
				OrderNum:     i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for _, o := range q.Options {
				option := models.QuestionOption{
					QuestionID: question.ID,
					Label:      o.Label,
					Points:     o.Points,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}
		for _, p := range def.Pillars {
			pillar := models.Pillar{
				DiagnosticID:  diagnostic.ID,
				Name:          p.Name,
				QuestionOrder: datatypes.NewJSONSlice(p.QuestionOrder),
				MaxScore:      p.MaxScore,
			}
			if err := tx.Create(&pillar).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(diagnostic.ID)
}
