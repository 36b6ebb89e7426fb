// Package stats computes read-only aggregates over a task collection.
package stats

import (
	"sort"

	"github.com/rogersnm/studyplan/internal/model"
)

type Summary struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	TotalHours     float64
	CompletedHours float64
	PendingHours   float64
}

func Summarize(tasks []model.Task) Summary {
	var s Summary
	for _, t := range tasks {
		s.TotalTasks++
		s.TotalHours += t.EstimatedHours
		if t.Completed {
			s.CompletedTasks++
			s.CompletedHours += t.EstimatedHours
		}
	}
	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	s.PendingHours = s.TotalHours - s.CompletedHours
	return s
}

// CompletionRate is the percentage of tasks completed, 0 when there are none.
func (s Summary) CompletionRate() float64 {
	if s.TotalTasks == 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
}

// HoursCompletionRate is the percentage of estimated hours completed.
func (s Summary) HoursCompletionRate() float64 {
	if s.TotalHours <= 0 {
		return 0
	}
	return s.CompletedHours / s.TotalHours * 100
}

// DayProductivity aggregates the tasks created on one day.
type DayProductivity struct {
	Date           string
	CompletedCount int
	TotalCount     int
	Hours          float64
}

// ProductivityByDate groups tasks by creation date, oldest day first.
func ProductivityByDate(tasks []model.Task) []DayProductivity {
	byDate := make(map[string]*DayProductivity)
	for _, t := range tasks {
		key := t.CreatedDate.String()
		day, ok := byDate[key]
		if !ok {
			day = &DayProductivity{Date: key}
			byDate[key] = day
		}
		day.TotalCount++
		day.Hours += t.EstimatedHours
		if t.Completed {
			day.CompletedCount++
		}
	}

	days := make([]DayProductivity, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}
