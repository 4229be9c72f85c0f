// Package app holds the lifecycle controller: the single owner of the
// in-memory site, task, and activity log mirrors. All mutations flow
// through it to the persistence gateway, and inbound change snapshots
// are folded back into the mirrors it owns.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/query"
	"github.com/64robkash/website-manager/internal/store"
)

// ErrValidation indicates a referenced entity does not resolve in the
// current mirror (e.g. creating a task for an unknown site).
var ErrValidation = errors.New("validation failed")

// App is the lifecycle controller. It is safe for concurrent use: the
// mirrors are guarded by a mutex, and inbound snapshots from the store
// subscription may overwrite them at any time (last writer wins; there
// is no reconciliation of writes in flight).
type App struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time

	mu    sync.Mutex
	sites []model.Site
	tasks []model.Task
	logs  []model.ActivityLogEntry

	unsubs []func()
}

// New creates a controller on top of the given store. Call Start to
// load the mirrors and subscribe to changes.
func New(s store.Store, logger zerolog.Logger) *App {
	return &App{
		store: s,
		log:   logger,
		now:   time.Now,
	}
}

// Start performs the initial load of all three collections and
// registers change subscriptions that keep the mirrors current.
func (a *App) Start(ctx context.Context) error {
	sites, err := a.store.ListSites(ctx)
	if err != nil {
		return err
	}
	tasks, err := a.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	logs, err := a.store.ListActivityLogs(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.sites = sites
	a.tasks = tasks
	a.logs = logs
	a.mu.Unlock()

	a.unsubs = append(a.unsubs,
		a.store.SubscribeSites(a.foldSites),
		a.store.SubscribeTasks(a.foldTasks),
		a.store.SubscribeActivityLogs(a.foldActivityLogs),
	)
	return nil
}

// Close unregisters the change subscriptions.
func (a *App) Close() {
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.unsubs = nil
}

func (a *App) foldSites(sites []model.Site) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sites = sites
}

func (a *App) foldTasks(tasks []model.Task) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tasks = tasks
}

func (a *App) foldActivityLogs(logs []model.ActivityLogEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logs = logs
}

// Sites returns a copy of the current site mirror.
func (a *App) Sites() []model.Site {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Site, len(a.sites))
	copy(out, a.sites)
	return out
}

// Tasks returns a copy of the current task mirror.
func (a *App) Tasks() []model.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

// ActivityLogs returns a copy of the current activity log mirror.
func (a *App) ActivityLogs() []model.ActivityLogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.ActivityLogEntry, len(a.logs))
	copy(out, a.logs)
	return out
}

// TasksForSite returns the mirrored tasks owned by the given site.
func (a *App) TasksForSite(siteID string) []model.Task {
	return query.ForSite(a.Tasks(), siteID)
}

// TodayTasks returns the unfinished mirrored tasks due today or earlier.
func (a *App) TodayTasks() []model.Task {
	return query.Today(a.Tasks(), a.now())
}

// OverdueTasks returns the unfinished mirrored tasks past their due day.
func (a *App) OverdueTasks() []model.Task {
	return query.Overdue(a.Tasks(), a.now())
}
