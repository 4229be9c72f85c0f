package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/64robkash/website-manager/internal/model"
)

// ListSites retrieves all sites in creation order.
func (s *SQLiteStore) ListSites(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	err := s.db.SelectContext(ctx, &sites,
		"SELECT id, name, url, platform, created_at FROM sites ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying sites: %w: %w", ErrStoreUnavailable, err)
	}
	return sites, nil
}

// CreateSite inserts a new site, assigning its id and creation timestamp.
func (s *SQLiteStore) CreateSite(ctx context.Context, fields SiteFields) (model.Site, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return model.Site{}, fmt.Errorf("site name must not be empty: %w", ErrWriteFailed)
	}

	site := model.Site{
		ID:        uuid.New().String(),
		Name:      fields.Name,
		URL:       fields.URL,
		Platform:  fields.Platform,
		CreatedAt: storeTime(time.Now()),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, url, platform, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		site.ID, site.Name, site.URL, site.Platform, site.CreatedAt,
	)
	if err != nil {
		return model.Site{}, fmt.Errorf("creating site: %w: %w", ErrWriteFailed, err)
	}

	s.watch.notifySites()
	return site, nil
}

// UpdateSite applies a partial update to a site. Nil patch fields are
// left untouched.
func (s *SQLiteStore) UpdateSite(ctx context.Context, id string, patch SitePatch) error {
	var sets []string
	var args []interface{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.URL != nil {
		sets = append(sets, "url = ?")
		args = append(args, *patch.URL)
	}
	if patch.Platform != nil {
		sets = append(sets, "platform = ?")
		args = append(args, *patch.Platform)
	}

	if len(sets) == 0 {
		// Nothing to change; still report a missing id.
		var count int
		if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM sites WHERE id = ?", id); err != nil {
			return fmt.Errorf("checking site %s: %w: %w", id, ErrStoreUnavailable, err)
		}
		if count == 0 {
			return fmt.Errorf("site %s: %w", id, ErrNotFound)
		}
		return nil
	}

	args = append(args, id)
	result, err := s.db.ExecContext(ctx,
		"UPDATE sites SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating site %s: %w: %w", id, ErrWriteFailed, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("site %s: %w", id, ErrNotFound)
	}

	s.watch.notifySites()
	return nil
}

// DeleteSite removes a site and cascades to every task owned by it.
// Activity log entries referencing the site are left in place.
//
// Cascade failures do not stop the remaining task deletes; they are
// collected and returned joined, so callers see every task that was
// left orphaned.
func (s *SQLiteStore) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting site %s: %w: %w", id, ErrWriteFailed, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("site %s: %w", id, ErrNotFound)
	}
	s.watch.notifySites()

	var taskIDs []string
	if err := s.db.SelectContext(ctx, &taskIDs,
		"SELECT id FROM tasks WHERE site_id = ?", id); err != nil {
		return fmt.Errorf("listing tasks for deleted site %s: %w: %w", id, ErrStoreUnavailable, err)
	}

	var cascadeErrs []error
	deleted := false
	for _, taskID := range taskIDs {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", taskID); err != nil {
			cascadeErrs = append(cascadeErrs,
				fmt.Errorf("cascade deleting task %s: %w", taskID, err))
			continue
		}
		deleted = true
	}
	if deleted {
		s.watch.notifyTasks()
	}

	if len(cascadeErrs) > 0 {
		return fmt.Errorf("site %s cascade: %w: %w", id, ErrWriteFailed, errors.Join(cascadeErrs...))
	}
	return nil
}
