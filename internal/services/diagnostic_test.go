package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() ImportDefinition {
	return ImportDefinition{
		Slug:  "clarity-check",
		Title: "Clarity Check",
		Questions: []ImportQuestion{
			{Text: "Q1", Options: []ImportOption{{Label: "No", Points: 0}, {Label: "Yes", Points: 10}}},
			{Text: "Q2", Options: []ImportOption{{Label: "No", Points: 0}, {Label: "Yes", Points: 10}}},
		},
		Pillars: []ImportPillar{
			{Name: "Clarity", QuestionOrder: []int{1, 2}, MaxScore: 20},
		},
	}
}

func TestImportDiagnostic(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiagnosticService(db)

	diagnostic, err := svc.Import(validDefinition())
	require.NoError(t, err)

	assert.Equal(t, "clarity-check", diagnostic.Slug)
	require.Len(t, diagnostic.Questions, 2)
	assert.Equal(t, 1, diagnostic.Questions[0].OrderNum)
	assert.Len(t, diagnostic.Questions[0].Options, 2)
	require.Len(t, diagnostic.Pillars, 1)
	assert.Equal(t, []int{1, 2}, []int(diagnostic.Pillars[0].QuestionOrder))

	loaded, err := svc.GetBySlug("clarity-check")
	require.NoError(t, err)
	assert.Equal(t, diagnostic.ID, loaded.ID)
}

func TestImportRejectsDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiagnosticService(db)

	_, err := svc.Import(validDefinition())
	require.NoError(t, err)
	_, err = svc.Import(validDefinition())
	assert.Error(t, err)
}

func TestImportValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiagnosticService(db)

	def := validDefinition()
	def.Slug = ""
	_, err := svc.Import(def)
	assert.Error(t, err)

	def = validDefinition()
	def.Questions = nil
	_, err = svc.Import(def)
	assert.Error(t, err)

	def = validDefinition()
	def.Questions[0].Options = def.Questions[0].Options[:1]
	_, err = svc.Import(def)
	assert.Error(t, err)

	def = validDefinition()
	def.Pillars[0].QuestionOrder = []int{1, 7}
	_, err = svc.Import(def)
	assert.Error(t, err)
}

func TestGetBySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiagnosticService(db)

	_, err := svc.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
