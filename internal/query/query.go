// Package query computes derived views over in-memory task and
// activity log collections. Every function is pure: no I/O, no
// mutation of its inputs, and deterministic for a given "now".
package query

import (
	"math"
	"time"

	"github.com/64robkash/website-manager/internal/model"
)

// RecurrenceAll is the pass-through sentinel for ByRecurrence.
const RecurrenceAll = "all"

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// ForSite returns the tasks owned by the given site, preserving input order.
func ForSite(tasks []model.Task, siteID string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.SiteID == siteID {
			out = append(out, t)
		}
	}
	return out
}

// Today returns the unfinished tasks due today or earlier. Overdue
// tasks are deliberately included: the today view is "everything that
// needs attention now", not a strict calendar match.
func Today(tasks []model.Task, now time.Time) []model.Task {
	cutoff := endOfDay(now)
	var out []model.Task
	for _, t := range tasks {
		if t.Status != model.StatusDone && !t.DueDate.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns the unfinished tasks whose due day is strictly before
// today. Both sides of the comparison truncate to day boundaries.
func Overdue(tasks []model.Task, now time.Time) []model.Task {
	today := startOfDay(now)
	var out []model.Task
	for _, t := range tasks {
		if t.Status != model.StatusDone && startOfDay(t.DueDate).Before(today) {
			out = append(out, t)
		}
	}
	return out
}

// IsOverdue reports whether the task is unfinished with a due day
// strictly before today.
func IsOverdue(task model.Task, now time.Time) bool {
	return task.Status != model.StatusDone && startOfDay(task.DueDate).Before(startOfDay(now))
}

// IsDueToday reports whether the task's due day is today's calendar day.
func IsDueToday(task model.Task, now time.Time) bool {
	return startOfDay(task.DueDate).Equal(startOfDay(now))
}

// Progress summarizes checklist completion for a task.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// ChecklistProgress counts completed checklist items and derives a
// rounded percentage. An empty checklist is 0%, not a division error.
func ChecklistProgress(task model.Task) Progress {
	p := Progress{Total: len(task.Checklist)}
	for _, item := range task.Checklist {
		if item.Done {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// SiteGroup is one site's tasks within a grouped view.
type SiteGroup struct {
	SiteID string
	Tasks  []model.Task
}

// GroupBySite buckets tasks by owning site. Groups appear in
// first-seen site order and tasks keep their input order within each
// group.
func GroupBySite(tasks []model.Task) []SiteGroup {
	index := make(map[string]int)
	var groups []SiteGroup
	for _, t := range tasks {
		i, ok := index[t.SiteID]
		if !ok {
			i = len(groups)
			index[t.SiteID] = i
			groups = append(groups, SiteGroup{SiteID: t.SiteID})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// ByRecurrence filters tasks to the given recurrence value. The
// RecurrenceAll sentinel passes everything through.
func ByRecurrence(tasks []model.Task, recurrence string) []model.Task {
	if recurrence == RecurrenceAll {
		return tasks
	}
	var out []model.Task
	for _, t := range tasks {
		if string(t.Recurrence) == recurrence {
			out = append(out, t)
		}
	}
	return out
}

// CompletedToday returns the tasks finished on today's calendar day.
func CompletedToday(tasks []model.Task, now time.Time) []model.Task {
	today := startOfDay(now)
	var out []model.Task
	for _, t := range tasks {
		if t.Status == model.StatusDone && t.CompletedAt != nil &&
			startOfDay(*t.CompletedAt).Equal(today) {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus tallies tasks per lifecycle state.
func CountByStatus(tasks []model.Task) map[model.TaskStatus]int {
	counts := make(map[model.TaskStatus]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// CountByRecurrence tallies tasks per recurrence value.
func CountByRecurrence(tasks []model.Task) map[model.Recurrence]int {
	counts := make(map[model.Recurrence]int)
	for _, t := range tasks {
		counts[t.Recurrence]++
	}
	return counts
}

// LogsSince returns the log entries with a timestamp at or after cutoff,
// preserving input order.
func LogsSince(logs []model.ActivityLogEntry, cutoff time.Time) []model.ActivityLogEntry {
	var out []model.ActivityLogEntry
	for _, entry := range logs {
		if !entry.Timestamp.Before(cutoff) {
			out = append(out, entry)
		}
	}
	return out
}

// CompletionLogCount counts the "Task completed" entries in the log.
func CompletionLogCount(logs []model.ActivityLogEntry) int {
	count := 0
	for _, entry := range logs {
		if entry.Action == model.ActionTaskCompleted {
			count++
		}
	}
	return count
}
