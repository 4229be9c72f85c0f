package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/64robkash/website-manager/internal/model"
)

const taskColumns = "id, site_id, title, status, due_date, notes, recurrence, checklist, created_at, completed_at"

// ListTasks retrieves all tasks in creation order, checklists included.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+taskColumns+" FROM tasks ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// CreateTask inserts a new task, assigning its id and creation
// timestamp. Checklist items without an id get one assigned, and their
// TaskID is rebound to the new task.
func (s *SQLiteStore) CreateTask(ctx context.Context, fields TaskFields) (model.Task, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return model.Task{}, fmt.Errorf("task title must not be empty: %w", ErrWriteFailed)
	}

	task := model.Task{
		ID:         uuid.New().String(),
		SiteID:     fields.SiteID,
		Title:      fields.Title,
		Status:     fields.Status,
		DueDate:    storeTime(fields.DueDate),
		Notes:      fields.Notes,
		Recurrence: fields.Recurrence,
		CreatedAt:  storeTime(time.Now()),
	}
	if task.Status == "" {
		task.Status = model.StatusNotStarted
	}
	if task.Recurrence == "" {
		task.Recurrence = model.RecurrenceNone
	}
	if fields.CompletedAt != nil {
		completed := storeTime(*fields.CompletedAt)
		task.CompletedAt = &completed
	}

	for _, item := range fields.Checklist {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.TaskID = task.ID
		task.Checklist = append(task.Checklist, item)
	}

	checklist, err := marshalChecklist(task.Checklist)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.SiteID, task.Title, string(task.Status),
		task.DueDate, task.Notes, string(task.Recurrence), checklist,
		task.CreatedAt, task.CompletedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("creating task: %w: %w", ErrWriteFailed, err)
	}

	s.watch.notifyTasks()
	return task, nil
}

// UpdateTask applies a partial update to a task. Nil patch fields are
// left untouched; ClearCompletedAt nulls completed_at explicitly.
func (s *SQLiteStore) UpdateTask(ctx context.Context, id string, patch TaskPatch) error {
	var sets []string
	var args []interface{}

	if patch.SiteID != nil {
		sets = append(sets, "site_id = ?")
		args = append(args, *patch.SiteID)
	}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, storeTime(*patch.DueDate))
	}
	if patch.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if patch.Recurrence != nil {
		sets = append(sets, "recurrence = ?")
		args = append(args, string(*patch.Recurrence))
	}
	if patch.Checklist != nil {
		items := make([]model.ChecklistItem, 0, len(*patch.Checklist))
		for _, item := range *patch.Checklist {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			if item.TaskID == "" {
				item.TaskID = id
			}
			items = append(items, item)
		}
		checklist, err := marshalChecklist(items)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		sets = append(sets, "checklist = ?")
		args = append(args, checklist)
	}
	if patch.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, storeTime(*patch.CompletedAt))
	} else if patch.ClearCompletedAt {
		sets = append(sets, "completed_at = NULL")
	}

	if len(sets) == 0 {
		var count int
		if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks WHERE id = ?", id); err != nil {
			return fmt.Errorf("checking task %s: %w: %w", id, ErrStoreUnavailable, err)
		}
		if count == 0 {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil
	}

	args = append(args, id)
	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating task %s: %w: %w", id, ErrWriteFailed, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	s.watch.notifyTasks()
	return nil
}

// DeleteTask removes a task by id. Activity log entries referencing it
// are kept; history is immutable.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w: %w", id, ErrWriteFailed, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	s.watch.notifyTasks()
	return nil
}

// scanTask scans a task row from a sqlx.Rows result set.
func scanTask(rows *sqlx.Rows) (model.Task, error) {
	var (
		task        model.Task
		status      string
		recurrence  string
		checklist   string
		dueDate     time.Time
		createdAt   time.Time
		completedAt *time.Time
	)

	err := rows.Scan(
		&task.ID, &task.SiteID, &task.Title, &status,
		&dueDate, &task.Notes, &recurrence, &checklist,
		&createdAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("scanning task row: %w: %w", ErrStoreUnavailable, err)
	}

	task.Status = model.TaskStatus(status)
	task.Recurrence = model.Recurrence(recurrence)
	task.DueDate = dueDate
	task.CreatedAt = createdAt
	task.CompletedAt = completedAt

	task.Checklist, err = unmarshalChecklist(checklist)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s: %w: %w", task.ID, ErrStoreUnavailable, err)
	}

	return task, nil
}
