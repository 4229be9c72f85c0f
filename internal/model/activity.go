package model

import "time"

// ActivityAction is the label recorded for a task lifecycle event.
// The set is closed; no other labels are ever written.
type ActivityAction string

const (
	ActionTaskCreated   ActivityAction = "Task created"
	ActionTaskStarted   ActivityAction = "Task started"
	ActionTaskCompleted ActivityAction = "Task completed"
	ActionTaskUpdated   ActivityAction = "Task updated"
)

// ActivityLogEntry records one task lifecycle event. Entries are
// append-only history: they are never updated or deleted, and they
// survive deletion of the task or site they reference.
//
// SiteName and TaskTitle are denormalized copies captured at write
// time, so renaming a site or task does not rewrite history.
type ActivityLogEntry struct {
	ID        string         `json:"id" db:"id"`
	TaskID    string         `json:"task_id" db:"task_id"`
	SiteID    string         `json:"site_id" db:"site_id"`
	Action    ActivityAction `json:"action" db:"action"`
	Timestamp time.Time      `json:"timestamp" db:"timestamp"`
	SiteName  string         `json:"site_name" db:"site_name"`
	TaskTitle string         `json:"task_title" db:"task_title"`
}
