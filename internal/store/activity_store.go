package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/64robkash/website-manager/internal/model"
)

// ListActivityLogs retrieves all activity log entries, newest first.
func (s *SQLiteStore) ListActivityLogs(ctx context.Context) ([]model.ActivityLogEntry, error) {
	var logs []model.ActivityLogEntry
	err := s.db.SelectContext(ctx, &logs, `
		SELECT id, task_id, site_id, action, timestamp, site_name, task_title
		FROM activity_logs ORDER BY timestamp DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying activity logs: %w: %w", ErrStoreUnavailable, err)
	}
	return logs, nil
}

// CreateActivityLog appends an activity log entry, assigning its id and
// timestamp. Entries are never updated or deleted afterwards.
func (s *SQLiteStore) CreateActivityLog(ctx context.Context, fields ActivityLogFields) (model.ActivityLogEntry, error) {
	entry := model.ActivityLogEntry{
		ID:        uuid.New().String(),
		TaskID:    fields.TaskID,
		SiteID:    fields.SiteID,
		Action:    fields.Action,
		Timestamp: storeTime(time.Now()),
		SiteName:  fields.SiteName,
		TaskTitle: fields.TaskTitle,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_logs (id, task_id, site_id, action, timestamp, site_name, task_title)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.TaskID, entry.SiteID, string(entry.Action),
		entry.Timestamp, entry.SiteName, entry.TaskTitle,
	)
	if err != nil {
		return model.ActivityLogEntry{}, fmt.Errorf("creating activity log: %w: %w", ErrWriteFailed, err)
	}

	s.watch.notifyActivityLogs()
	return entry, nil
}
