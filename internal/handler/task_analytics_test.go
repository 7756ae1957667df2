package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todotask/backend/internal/model"
)

func TestBuildAnalytics(t *testing.T) {
	t.Parallel()

	tasks := []model.Task{
		{Status: model.StatusTodo, Priority: "High"},
		{Status: model.StatusTodo, Priority: "Low"},
		{Status: model.StatusInProgress, Priority: "Medium"},
		{Status: model.StatusCompleted, Priority: "High", DueDate: "2026-01-05"},
		{Status: model.StatusCompleted, Priority: "Medium", DueDate: "2026-01-07"},
		{Status: model.StatusCompleted, Priority: "Low", DueDate: "2026-01-14"},
		{Status: model.StatusBlocked, Priority: "High"},
		{Status: "garbage", Priority: "Urgent"}, // unknown values fold into defaults
	}

	got := buildAnalytics(tasks)

	require.Len(t, got.StatusData, 4)
	assert.Equal(t, nameValue{Name: "To Do", Value: 3}, got.StatusData[0])
	assert.Equal(t, nameValue{Name: "In Progress", Value: 1}, got.StatusData[1])
	assert.Equal(t, nameValue{Name: "Completed", Value: 3}, got.StatusData[2])
	assert.Equal(t, nameValue{Name: "Blocked", Value: 1}, got.StatusData[3])

	require.Len(t, got.PriorityData, 3)
	assert.Equal(t, nameCount{Name: "High", Count: 3}, got.PriorityData[0])
	assert.Equal(t, nameCount{Name: "Medium", Count: 2}, got.PriorityData[1])
	assert.Equal(t, nameCount{Name: "Low", Count: 2}, got.PriorityData[2])

	// Jan 5 and Jan 7 2026 fall in the same ISO week; Jan 14 a week later.
	require.Len(t, got.ProductivityData, 2)
	assert.Equal(t, 2, got.ProductivityData[0].Tasks)
	assert.Equal(t, 1, got.ProductivityData[1].Tasks)
}

func TestBuildAnalytics_Empty(t *testing.T) {
	t.Parallel()

	got := buildAnalytics(nil)
	require.Len(t, got.StatusData, 4)
	for _, s := range got.StatusData {
		assert.Zero(t, s.Value)
	}
	assert.Empty(t, got.ProductivityData)
}
