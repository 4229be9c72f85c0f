package app

import (
	"context"
	"fmt"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/query"
	"github.com/64robkash/website-manager/internal/store"
)

// siteByID looks up a site in the mirror.
func (a *App) siteByID(id string) (model.Site, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range a.sites {
		if s.ID == id {
			return s, true
		}
	}
	return model.Site{}, false
}

// taskByID looks up a task in the mirror.
func (a *App) taskByID(id string) (model.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range a.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// AddTask creates a task and records a "Task created" activity log
// entry with the site name and task title denormalized at write time.
// The site must resolve in the current mirror.
func (a *App) AddTask(ctx context.Context, fields store.TaskFields) (model.Task, error) {
	site, ok := a.siteByID(fields.SiteID)
	if !ok {
		return model.Task{}, fmt.Errorf("task site %s does not resolve: %w", fields.SiteID, ErrValidation)
	}

	task, err := a.store.CreateTask(ctx, fields)
	if err != nil {
		a.log.Error().Err(err).Str("title", fields.Title).Msg("adding task")
		return model.Task{}, err
	}

	_, err = a.store.CreateActivityLog(ctx, store.ActivityLogFields{
		TaskID:    task.ID,
		SiteID:    task.SiteID,
		Action:    model.ActionTaskCreated,
		SiteName:  site.Name,
		TaskTitle: task.Title,
	})
	if err != nil {
		a.log.Error().Err(err).Str("task_id", task.ID).Msg("logging task creation")
		return task, err
	}

	a.log.Debug().Str("task_id", task.ID).Str("site_id", task.SiteID).Msg("task added")
	return task, nil
}

// UpdateTask applies a partial update to a task.
//
// The task is looked up in the mirror, not the store, so a concurrent
// delete that has not yet arrived via subscription can make this
// succeed locally and fail remotely (or the reverse). That staleness
// window is accepted; see the module design notes.
//
// When the patch changes the status, exactly one activity log entry is
// recorded for the transition, and a completion timestamp is stamped
// (new status done) or cleared (task reopened) with a follow-up write.
func (a *App) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) error {
	current, ok := a.taskByID(id)
	if !ok {
		return fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}

	// Transition detection against the mirrored status, before any
	// completion stamping mutates the picture.
	transitioned := patch.Status != nil && *patch.Status != current.Status

	if err := a.store.UpdateTask(ctx, id, patch); err != nil {
		a.log.Error().Err(err).Str("task_id", id).Msg("updating task")
		return err
	}

	if !transitioned {
		return nil
	}

	newStatus := *patch.Status
	action := model.ActionTaskUpdated
	switch newStatus {
	case model.StatusDone:
		action = model.ActionTaskCompleted
	case model.StatusInProgress:
		action = model.ActionTaskStarted
	}

	if site, ok := a.siteByID(current.SiteID); ok {
		_, err := a.store.CreateActivityLog(ctx, store.ActivityLogFields{
			TaskID:    id,
			SiteID:    current.SiteID,
			Action:    action,
			SiteName:  site.Name,
			TaskTitle: current.Title,
		})
		if err != nil {
			a.log.Error().Err(err).Str("task_id", id).Msg("logging task transition")
			return err
		}
	} else {
		a.log.Warn().Str("task_id", id).Str("site_id", current.SiteID).
			Msg("skipping transition log for unknown site")
	}

	// Completion stamping is a second round-trip, not atomic with the
	// status write.
	switch {
	case newStatus == model.StatusDone:
		completedAt := a.now()
		err := a.store.UpdateTask(ctx, id, store.TaskPatch{CompletedAt: &completedAt})
		if err != nil {
			a.log.Error().Err(err).Str("task_id", id).Msg("stamping completion time")
			return err
		}
	case current.CompletedAt != nil:
		// Reopened: a stale completion timestamp would break the
		// completedAt-iff-done invariant, so clear it.
		err := a.store.UpdateTask(ctx, id, store.TaskPatch{ClearCompletedAt: true})
		if err != nil {
			a.log.Error().Err(err).Str("task_id", id).Msg("clearing completion time")
			return err
		}
	}

	a.log.Debug().Str("task_id", id).Str("action", string(action)).Msg("task transition")
	return nil
}

// DeleteTask removes a task. Its activity log history is kept.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.store.DeleteTask(ctx, id); err != nil {
		a.log.Error().Err(err).Str("task_id", id).Msg("deleting task")
		return err
	}
	a.log.Debug().Str("task_id", id).Msg("task deleted")
	return nil
}

// ChecklistProgress summarizes checklist completion for a mirrored task.
func (a *App) ChecklistProgress(id string) (query.Progress, error) {
	task, ok := a.taskByID(id)
	if !ok {
		return query.Progress{}, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	return query.ChecklistProgress(task), nil
}
