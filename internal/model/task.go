package model

import "time"

// TaskStatus is the lifecycle state of a maintenance task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// Recurrence describes how often a task repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Task is a maintenance item belonging to a single site.
type Task struct {
	// ID is the store-assigned unique identifier.
	ID string `json:"id" db:"id"`

	// SiteID references the owning site. It must resolve to a live
	// site at creation time; deleting the site deletes the task.
	SiteID string `json:"site_id" db:"site_id"`

	// Title is the human-readable summary of the task.
	Title string `json:"title" db:"title"`

	// Status is the current lifecycle state (use Status* constants).
	Status TaskStatus `json:"status" db:"status"`

	// DueDate is the calendar day the task is due. The time of day
	// carries no meaning; comparisons truncate to day boundaries.
	DueDate time.Time `json:"due_date" db:"due_date"`

	// Notes is free-form text attached to the task.
	Notes string `json:"notes" db:"notes"`

	// Recurrence is how often the task repeats (use Recurrence* constants).
	Recurrence Recurrence `json:"recurrence" db:"recurrence"`

	// Checklist is the ordered list of sub-steps for this task.
	// Checklist items do not drive the task status.
	Checklist []ChecklistItem `json:"checklist" db:"-"`

	// CreatedAt is assigned by the store when the task is created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// CompletedAt is set when the status transitions to done and
	// cleared when the task is reopened.
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ChecklistItem is a single togglable step within a task's checklist.
type ChecklistItem struct {
	ID      string `json:"id"`
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
	Done    bool   `json:"done"`
}
