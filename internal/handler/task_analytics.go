package handler

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/model"
)

// Analytics response shapes, sized for the dashboard charts.
type nameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
type nameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
type weekTasks struct {
	Week  string `json:"week"`
	Tasks int    `json:"tasks"`
}

type analyticsResp struct {
	StatusData       []nameValue `json:"statusData"`
	PriorityData     []nameCount `json:"priorityData"`
	ProductivityData []weekTasks `json:"productivityData"`
}

var statusLabels = map[string]string{
	model.StatusTodo:       "To Do",
	model.StatusInProgress: "In Progress",
	model.StatusCompleted:  "Completed",
	model.StatusBlocked:    "Blocked",
}

// Analytics aggregates the caller's tasks into status distribution,
// priority counts and a weekly completed-tasks series.  The whole
// computation is in memory over one list query; this endpoint sits
// behind the Redis response cache.
func (h *TaskHandler) Analytics(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, buildAnalytics(tasks))
}

func buildAnalytics(tasks []model.Task) analyticsResp {
	statusCount := map[string]int{"To Do": 0, "In Progress": 0, "Completed": 0, "Blocked": 0}
	priorityCount := map[string]int{"High": 0, "Medium": 0, "Low": 0}
	weekly := map[int]int{}

	for _, t := range tasks {
		label, ok := statusLabels[t.Status]
		if !ok {
			label = "To Do"
		}
		statusCount[label]++

		if _, ok := priorityCount[t.Priority]; ok {
			priorityCount[t.Priority]++
		}

		if t.Status == model.StatusCompleted && t.DueDate != "" {
			if dt, err := time.Parse("2006-01-02", t.DueDate); err == nil {
				_, week := dt.ISOWeek()
				weekly[week]++
			}
		}
	}

	weeks := make([]int, 0, len(weekly))
	for w := range weekly {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	productivity := make([]weekTasks, 0, len(weeks))
	for _, w := range weeks {
		productivity = append(productivity, weekTasks{Week: fmt.Sprintf("Week %d", w), Tasks: weekly[w]})
	}

	return analyticsResp{
		StatusData: []nameValue{
			{Name: "To Do", Value: statusCount["To Do"]},
			{Name: "In Progress", Value: statusCount["In Progress"]},
			{Name: "Completed", Value: statusCount["Completed"]},
			{Name: "Blocked", Value: statusCount["Blocked"]},
		},
		PriorityData: []nameCount{
			{Name: "High", Count: priorityCount["High"]},
			{Name: "Medium", Count: priorityCount["Medium"]},
			{Name: "Low", Count: priorityCount["Low"]},
		},
		ProductivityData: productivity,
	}
}
