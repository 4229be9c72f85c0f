package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/64robkash/website-manager/internal/model"
)

// watcher delivers full-collection snapshots to subscribers. Local
// mutations notify inline on the mutating goroutine; a background
// poller watches SQLite's data_version pragma to pick up writes made
// by other connections and re-delivers all three collections when it
// changes.
type watcher struct {
	store    *SQLiteStore
	log      zerolog.Logger
	interval time.Duration

	mu       sync.Mutex
	nextID   int
	siteSubs map[int]func([]model.Site)
	taskSubs map[int]func([]model.Task)
	logSubs  map[int]func([]model.ActivityLogEntry)

	stopCh  chan struct{}
	running bool
}

// newWatcher creates a watcher for the given store. A non-positive
// interval disables background polling for external changes.
func newWatcher(s *SQLiteStore, interval time.Duration, logger zerolog.Logger) *watcher {
	return &watcher{
		store:    s,
		log:      logger,
		interval: interval,
		siteSubs: make(map[int]func([]model.Site)),
		taskSubs: make(map[int]func([]model.Task)),
		logSubs:  make(map[int]func([]model.ActivityLogEntry)),
		stopCh:   make(chan struct{}),
	}
}

// start launches the external-change polling goroutine, if enabled.
func (w *watcher) start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running || w.interval <= 0 {
		return
	}
	w.running = true
	go w.poll()
}

// stop halts the polling goroutine.
func (w *watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopCh)
	w.running = false
}

// poll re-reads the data_version pragma on a ticker and pushes fresh
// snapshots whenever another connection has written to the database.
func (w *watcher) poll() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastVersion int64
	_ = w.store.db.Get(&lastVersion, "PRAGMA data_version")

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			var version int64
			if err := w.store.db.Get(&version, "PRAGMA data_version"); err != nil {
				w.log.Error().Err(err).Msg("reading data_version")
				continue
			}
			if version == lastVersion {
				continue
			}
			lastVersion = version
			w.notifySites()
			w.notifyTasks()
			w.notifyActivityLogs()
		}
	}
}

// SubscribeSites registers fn for site snapshots. fn is invoked once
// immediately with the current collection, then on every change until
// the returned unsubscribe func is called.
func (s *SQLiteStore) SubscribeSites(fn func([]model.Site)) func() {
	w := s.watch

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.siteSubs[id] = fn
	w.mu.Unlock()

	if sites, err := s.ListSites(context.Background()); err == nil {
		fn(sites)
	} else {
		w.log.Error().Err(err).Msg("initial site snapshot")
	}

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.siteSubs, id)
	}
}

// SubscribeTasks registers fn for task snapshots.
func (s *SQLiteStore) SubscribeTasks(fn func([]model.Task)) func() {
	w := s.watch

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.taskSubs[id] = fn
	w.mu.Unlock()

	if tasks, err := s.ListTasks(context.Background()); err == nil {
		fn(tasks)
	} else {
		w.log.Error().Err(err).Msg("initial task snapshot")
	}

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.taskSubs, id)
	}
}

// SubscribeActivityLogs registers fn for activity log snapshots.
func (s *SQLiteStore) SubscribeActivityLogs(fn func([]model.ActivityLogEntry)) func() {
	w := s.watch

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.logSubs[id] = fn
	w.mu.Unlock()

	if logs, err := s.ListActivityLogs(context.Background()); err == nil {
		fn(logs)
	} else {
		w.log.Error().Err(err).Msg("initial activity log snapshot")
	}

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.logSubs, id)
	}
}

// notifySites pushes a fresh site snapshot to every subscriber.
func (w *watcher) notifySites() {
	w.mu.Lock()
	subs := make([]func([]model.Site), 0, len(w.siteSubs))
	for _, fn := range w.siteSubs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	sites, err := w.store.ListSites(context.Background())
	if err != nil {
		w.log.Error().Err(err).Msg("site snapshot")
		return
	}
	for _, fn := range subs {
		fn(sites)
	}
}

// notifyTasks pushes a fresh task snapshot to every subscriber.
func (w *watcher) notifyTasks() {
	w.mu.Lock()
	subs := make([]func([]model.Task), 0, len(w.taskSubs))
	for _, fn := range w.taskSubs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	tasks, err := w.store.ListTasks(context.Background())
	if err != nil {
		w.log.Error().Err(err).Msg("task snapshot")
		return
	}
	for _, fn := range subs {
		fn(tasks)
	}
}

// notifyActivityLogs pushes a fresh activity log snapshot to every subscriber.
func (w *watcher) notifyActivityLogs() {
	w.mu.Lock()
	subs := make([]func([]model.ActivityLogEntry), 0, len(w.logSubs))
	for _, fn := range w.logSubs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	logs, err := w.store.ListActivityLogs(context.Background())
	if err != nil {
		w.log.Error().Err(err).Msg("activity log snapshot")
		return
	}
	for _, fn := range subs {
		fn(logs)
	}
}
