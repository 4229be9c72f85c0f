package app

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/store"
	"github.com/64robkash/website-manager/tests/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	s := testutil.NewTestStore(t)
	a := New(s, zerolog.Nop())
	require.NoError(t, a.Start(context.Background()))
	t.Cleanup(a.Close)
	return a
}

func addSite(t *testing.T, a *App, name string) model.Site {
	t.Helper()

	site, err := a.AddSite(context.Background(), store.SiteFields{
		Name:     name,
		URL:      "https://" + name + ".example",
		Platform: "WordPress",
	})
	require.NoError(t, err)
	return site
}

func TestMutationsFoldIntoMirror(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	assert.Empty(t, a.Sites())

	site := addSite(t, a, "blog")
	sites := a.Sites()
	require.Len(t, sites, 1)
	assert.Equal(t, site.ID, sites[0].ID)

	require.NoError(t, a.UpdateSite(ctx, site.ID, store.SitePatch{Name: ptr("renamed")}))
	assert.Equal(t, "renamed", a.Sites()[0].Name)

	require.NoError(t, a.DeleteSite(ctx, site.ID))
	assert.Empty(t, a.Sites())
}

func TestStartLoadsExistingData(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	site, err := s.CreateSite(ctx, store.SiteFields{Name: "existing"})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, store.TaskFields{SiteID: site.ID, Title: "carry-over"})
	require.NoError(t, err)

	a := New(s, zerolog.Nop())
	require.NoError(t, a.Start(ctx))
	defer a.Close()

	assert.Len(t, a.Sites(), 1)
	assert.Len(t, a.Tasks(), 1)
}

func TestDeleteSiteCascadeKeepsHistory(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	site := addSite(t, a, "blog")
	for _, title := range []string{"backup", "update plugins"} {
		_, err := a.AddTask(ctx, store.TaskFields{SiteID: site.ID, Title: title, DueDate: time.Now()})
		require.NoError(t, err)
	}
	require.Len(t, a.Tasks(), 2)
	require.Len(t, a.ActivityLogs(), 2)

	require.NoError(t, a.DeleteSite(ctx, site.ID))

	assert.Empty(t, a.Sites())
	assert.Empty(t, a.Tasks(), "cascade removes the site's tasks")
	assert.Len(t, a.ActivityLogs(), 2, "history is append-only and survives the cascade")
}

func TestDerivedViews(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	blog := addSite(t, a, "blog")
	shop := addSite(t, a, "shop")

	overdue, err := a.AddTask(ctx, store.TaskFields{
		SiteID: blog.ID, Title: "overdue", DueDate: now.Add(-72 * time.Hour),
	})
	require.NoError(t, err)
	dueToday, err := a.AddTask(ctx, store.TaskFields{
		SiteID: shop.ID, Title: "due today", DueDate: now,
	})
	require.NoError(t, err)
	_, err = a.AddTask(ctx, store.TaskFields{
		SiteID: shop.ID, Title: "upcoming", DueDate: now.Add(96 * time.Hour),
	})
	require.NoError(t, err)

	gotOverdue := a.OverdueTasks()
	require.Len(t, gotOverdue, 1)
	assert.Equal(t, overdue.ID, gotOverdue[0].ID)

	gotToday := a.TodayTasks()
	require.Len(t, gotToday, 2)

	forShop := a.TasksForSite(shop.ID)
	require.Len(t, forShop, 2)
	assert.Equal(t, dueToday.ID, forShop[0].ID)
}

func TestChecklistProgressFromMirror(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	site := addSite(t, a, "blog")
	task, err := a.AddTask(ctx, store.TaskFields{
		SiteID:  site.ID,
		Title:   "audit",
		DueDate: time.Now(),
		Checklist: []model.ChecklistItem{
			{Content: "a", Done: true},
			{Content: "b"},
			{Content: "c"},
		},
	})
	require.NoError(t, err)

	p, err := a.ChecklistProgress(task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 33, p.Percentage)

	_, err = a.ChecklistProgress("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }
