package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

func TestAppendUpdatesPointTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, logger.NewNop())
	user := createUser(t, db, models.PlanFree)

	event, err := models.NewTaskCompletedEvent(user.ID, 10, models.TaskCompletedMeta{Challenge: "Sprint", Day: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Append(event))

	event, err = models.NewTaskCompletedEvent(user.ID, 10, models.TaskCompletedMeta{Challenge: "Sprint", Day: 2})
	require.NoError(t, err)
	require.NoError(t, svc.Append(event))

	points, err := svc.TotalPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, points)
}

func TestAppendZeroPointEventLeavesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, logger.NewNop())
	user := createUser(t, db, models.PlanFree)

	event, err := models.NewDiagnosticRetakenEvent(user.ID, models.DiagnosticRetakenMeta{Diagnostic: "Brand Power"})
	require.NoError(t, err)
	require.NoError(t, svc.Append(event))

	points, err := svc.TotalPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, points)
}

func TestListRecentNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, logger.NewNop())
	user := createUser(t, db, models.PlanFree)

	for day := 1; day <= 3; day++ {
		event, err := models.NewTaskCompletedEvent(user.ID, 10, models.TaskCompletedMeta{Challenge: "Sprint", Day: day})
		require.NoError(t, err)
		require.NoError(t, svc.Append(event))
	}

	events, err := svc.ListRecent(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)

	var meta models.TaskCompletedMeta
	require.NoError(t, json.Unmarshal(events[0].Metadata, &meta))
	assert.Equal(t, "Sprint", meta.Challenge)
}

func TestEventConstructorsValidate(t *testing.T) {
	_, err := models.NewDiagnosticCompletedEvent(1, models.DiagnosticCompletedMeta{Score: 50})
	assert.Error(t, err)

	_, err = models.NewChallengeStartedEvent(1, models.ChallengeStartedMeta{Challenge: "Sprint"})
	assert.Error(t, err)

	_, err = models.NewTaskCompletedEvent(1, 10, models.TaskCompletedMeta{Challenge: "Sprint", Day: 0})
	assert.Error(t, err)

	event, err := models.NewDiagnosticCompletedEvent(1, models.DiagnosticCompletedMeta{
		Diagnostic: "Brand Power", Score: 65, Stage: "Active",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventDiagnosticCompleted, event.EventType)

	var meta models.DiagnosticCompletedMeta
	require.NoError(t, json.Unmarshal(event.Metadata, &meta))
	assert.Equal(t, 65, meta.Score)
}

func TestTotalPointsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, logger.NewNop())

	_, err := svc.TotalPoints(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
