package stats

import (
	"testing"

	"github.com/rogersnm/studyplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id int, hours float64, created model.Date, completed bool) model.Task {
	t := model.Task{ID: id, Name: "T", EstimatedHours: hours, CreatedDate: created}
	if completed {
		t.Complete(created)
	}
	return t
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
	assert.Equal(t, 0.0, s.CompletionRate())
	assert.Equal(t, 0.0, s.HoursCompletionRate())
}

func TestSummarize_Mixed(t *testing.T) {
	day := model.NewDate(2026, 1, 1)
	s := Summarize([]model.Task{
		task(1, 2.5, day, true),
		task(2, 1.5, day, false),
		task(3, 4, day, false),
		task(4, 2, day, true),
	})
	assert.Equal(t, 4, s.TotalTasks)
	assert.Equal(t, 2, s.CompletedTasks)
	assert.Equal(t, 2, s.PendingTasks)
	assert.InDelta(t, 10.0, s.TotalHours, 1e-9)
	assert.InDelta(t, 4.5, s.CompletedHours, 1e-9)
	assert.InDelta(t, 5.5, s.PendingHours, 1e-9)
	assert.InDelta(t, 50.0, s.CompletionRate(), 1e-9)
	assert.InDelta(t, 45.0, s.HoursCompletionRate(), 1e-9)
}

func TestSummarize_PendingIsTotalMinusCompleted(t *testing.T) {
	day := model.NewDate(2026, 1, 1)
	tasks := []model.Task{task(1, 0.3, day, true), task(2, 0.7, day, false), task(3, 1.1, day, true)}
	s := Summarize(tasks)
	assert.Equal(t, s.TotalTasks-s.CompletedTasks, s.PendingTasks)
	assert.Equal(t, s.TotalHours-s.CompletedHours, s.PendingHours)
}

func TestProductivityByDate_Empty(t *testing.T) {
	assert.Empty(t, ProductivityByDate(nil))
}

func TestProductivityByDate_GroupsByCreationDateAscending(t *testing.T) {
	d1 := model.NewDate(2026, 1, 9)
	d2 := model.NewDate(2026, 1, 10)
	d3 := model.NewDate(2025, 12, 31)

	late := task(4, 3, d3, false)
	late.Complete(d2) // completed on a different day than created

	days := ProductivityByDate([]model.Task{
		task(1, 1, d2, true),
		task(2, 2, d1, false),
		task(3, 0.5, d2, false),
		late,
	})
	require.Len(t, days, 3)

	assert.Equal(t, "2025-12-31", days[0].Date)
	assert.Equal(t, DayProductivity{Date: "2025-12-31", CompletedCount: 1, TotalCount: 1, Hours: 3}, days[0])
	assert.Equal(t, DayProductivity{Date: "2026-01-09", CompletedCount: 0, TotalCount: 1, Hours: 2}, days[1])
	assert.Equal(t, DayProductivity{Date: "2026-01-10", CompletedCount: 1, TotalCount: 2, Hours: 1.5}, days[2])
}

func TestProductivityByDate_TotalsMatchSummary(t *testing.T) {
	var tasks []model.Task
	for i := 1; i <= 20; i++ {
		tasks = append(tasks, task(i, float64(i)/4, model.NewDate(2026, 2, i%5+1), i%3 == 0))
	}
	days := ProductivityByDate(tasks)
	s := Summarize(tasks)

	total, completed := 0, 0
	for i, d := range days {
		total += d.TotalCount
		completed += d.CompletedCount
		if i > 0 {
			assert.Less(t, days[i-1].Date, d.Date)
		}
	}
	assert.Equal(t, s.TotalTasks, total)
	assert.Equal(t, s.CompletedTasks, completed)
}
