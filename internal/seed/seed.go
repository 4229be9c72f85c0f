// Package seed populates empty storage with starter content on first
// run. Fixture placeholder ids are remapped positionally to the ids the
// store assigns, so no seeded reference dangles.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/store"
)

// Ensure checks for first run and, if the site collection is empty,
// writes the starter sites, tasks, and activity log entries. Non-empty
// storage is left untouched.
func Ensure(ctx context.Context, s store.Store) error {
	sites, err := s.ListSites(ctx)
	if err != nil {
		return fmt.Errorf("checking for first run: %w", err)
	}
	if len(sites) > 0 {
		return nil
	}

	now := time.Now()

	// Create sites first and remap fixture ids positionally: the i-th
	// fixture site maps to the i-th created site.
	siteIDs := make(map[string]string, len(starterSites))
	for _, fixture := range starterSites {
		site, err := s.CreateSite(ctx, store.SiteFields{
			Name:     fixture.name,
			URL:      fixture.url,
			Platform: fixture.platform,
		})
		if err != nil {
			return fmt.Errorf("seeding site %q: %w", fixture.name, err)
		}
		siteIDs[fixture.id] = site.ID
	}

	taskIDs := make(map[string]string, len(starterTasks))
	for _, fixture := range starterTasks {
		var checklist []model.ChecklistItem
		for i, content := range fixture.checklist {
			checklist = append(checklist, model.ChecklistItem{
				Content: content,
				Done:    i < fixture.checkedOff,
			})
		}

		var completedAt *time.Time
		if fixture.completedIn != nil {
			t := now.Add(*fixture.completedIn)
			completedAt = &t
		}

		task, err := s.CreateTask(ctx, store.TaskFields{
			SiteID:      siteIDs[fixture.siteID],
			Title:       fixture.title,
			Status:      fixture.status,
			DueDate:     now.Add(fixture.dueIn),
			Notes:       fixture.notes,
			Recurrence:  fixture.recurrence,
			Checklist:   checklist,
			CompletedAt: completedAt,
		})
		if err != nil {
			return fmt.Errorf("seeding task %q: %w", fixture.title, err)
		}
		taskIDs[fixture.id] = task.ID
	}

	for _, fixture := range starterLogs {
		_, err := s.CreateActivityLog(ctx, store.ActivityLogFields{
			TaskID:    taskIDs[fixture.taskID],
			SiteID:    siteIDs[fixture.siteID],
			Action:    fixture.action,
			SiteName:  fixture.siteName,
			TaskTitle: fixture.taskTitle,
		})
		if err != nil {
			return fmt.Errorf("seeding activity log for %q: %w", fixture.taskTitle, err)
		}
	}

	return nil
}
