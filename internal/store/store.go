package store

import (
	"context"
	"time"

	"github.com/64robkash/website-manager/internal/model"
)

// SiteFields holds the caller-supplied fields for creating a site.
// The store assigns the id and creation timestamp.
type SiteFields struct {
	Name     string
	URL      string
	Platform string
}

// TaskFields holds the caller-supplied fields for creating a task.
type TaskFields struct {
	SiteID      string
	Title       string
	Status      model.TaskStatus
	DueDate     time.Time
	Notes       string
	Recurrence  model.Recurrence
	Checklist   []model.ChecklistItem
	CompletedAt *time.Time
}

// ActivityLogFields holds the caller-supplied fields for appending an
// activity log entry. The store assigns the id and timestamp.
type ActivityLogFields struct {
	TaskID    string
	SiteID    string
	Action    model.ActivityAction
	SiteName  string
	TaskTitle string
}

// SitePatch is a partial update for a site. Nil fields are left
// untouched; set fields replace the stored value.
type SitePatch struct {
	Name     *string
	URL      *string
	Platform *string
}

// TaskPatch is a partial update for a task. Nil fields are left
// untouched. CompletedAt distinguishes absent (nil pointer) from an
// explicit clear (ClearCompletedAt), which a bare *time.Time cannot
// express.
type TaskPatch struct {
	SiteID           *string
	Title            *string
	Status           *model.TaskStatus
	DueDate          *time.Time
	Notes            *string
	Recurrence       *model.Recurrence
	Checklist        *[]model.ChecklistItem
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

// Store is the persistence gateway for the three entity collections.
//
// Every operation either returns a populated result or surfaces one of
// the sentinel error kinds in errors.go. Activity logs are append-only:
// no update or delete is exposed for them. DeleteSite cascades to the
// site's tasks per the documented side-effect contract.
type Store interface {
	// === Sites ===

	ListSites(ctx context.Context) ([]model.Site, error)
	CreateSite(ctx context.Context, fields SiteFields) (model.Site, error)
	UpdateSite(ctx context.Context, id string, patch SitePatch) error

	// DeleteSite removes the site and every task whose SiteID matches.
	// Per-task cascade failures are collected and returned joined with
	// ErrWriteFailed; the site row itself is still removed.
	DeleteSite(ctx context.Context, id string) error

	// === Tasks ===

	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, fields TaskFields) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) error
	DeleteTask(ctx context.Context, id string) error

	// === Activity logs ===

	ListActivityLogs(ctx context.Context) ([]model.ActivityLogEntry, error)
	CreateActivityLog(ctx context.Context, fields ActivityLogFields) (model.ActivityLogEntry, error)

	// === Change subscription ===
	//
	// Subscribe* invokes fn once immediately with the current snapshot,
	// then again with a full snapshot after every change to the
	// collection, until the returned unsubscribe func is called. There
	// is no ordering guarantee across collections.

	SubscribeSites(fn func([]model.Site)) (unsubscribe func())
	SubscribeTasks(fn func([]model.Task)) (unsubscribe func())
	SubscribeActivityLogs(fn func([]model.ActivityLogEntry)) (unsubscribe func())
}
