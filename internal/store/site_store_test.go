package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/store"
	"github.com/64robkash/website-manager/tests/testutil"
)

func TestCreateAndListSites(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	blog, err := s.CreateSite(ctx, store.SiteFields{
		Name:     "Personal Blog",
		URL:      "https://myblog.com",
		Platform: "WordPress",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, blog.ID)
	assert.False(t, blog.CreatedAt.IsZero())

	shop, err := s.CreateSite(ctx, store.SiteFields{Name: "Store", URL: "https://mystore.com"})
	require.NoError(t, err)

	sites, err := s.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, blog.ID, sites[0].ID, "sites list in creation order")
	assert.Equal(t, shop.ID, sites[1].ID)
	assert.Equal(t, "WordPress", sites[0].Platform)
}

func TestCreateSiteRequiresName(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.CreateSite(context.Background(), store.SiteFields{URL: "https://x.com"})
	assert.ErrorIs(t, err, store.ErrWriteFailed)
}

func TestUpdateSitePartialMerge(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	site, err := s.CreateSite(ctx, store.SiteFields{
		Name:     "Portfolio",
		URL:      "https://portfolio.dev",
		Platform: "Netlify",
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateSite(ctx, site.ID, store.SitePatch{Name: ptr("Portfolio v2")}))

	sites, err := s.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "Portfolio v2", sites[0].Name)
	assert.Equal(t, "https://portfolio.dev", sites[0].URL, "unpatched fields untouched")
	assert.Equal(t, "Netlify", sites[0].Platform)
	assert.Equal(t, site.CreatedAt, sites[0].CreatedAt.UTC())
}

func TestUpdateSiteNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.UpdateSite(context.Background(), "missing", store.SitePatch{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteSiteCascadesToTasks(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	doomed, err := s.CreateSite(ctx, store.SiteFields{Name: "Doomed"})
	require.NoError(t, err)
	kept, err := s.CreateSite(ctx, store.SiteFields{Name: "Kept"})
	require.NoError(t, err)

	for _, title := range []string{"task one", "task two"} {
		_, err := s.CreateTask(ctx, store.TaskFields{SiteID: doomed.ID, Title: title})
		require.NoError(t, err)
	}
	survivor, err := s.CreateTask(ctx, store.TaskFields{SiteID: kept.ID, Title: "survivor"})
	require.NoError(t, err)

	// History written before the delete must survive it.
	entry, err := s.CreateActivityLog(ctx, store.ActivityLogFields{
		TaskID:    survivor.ID,
		SiteID:    doomed.ID,
		Action:    model.ActionTaskCreated,
		SiteName:  "Doomed",
		TaskTitle: "task one",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteSite(ctx, doomed.ID))

	sites, err := s.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, kept.ID, sites[0].ID)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, survivor.ID, tasks[0].ID)

	logs, err := s.ListActivityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entry.ID, logs[0].ID)
	assert.Equal(t, "Doomed", logs[0].SiteName, "denormalized history is unchanged")
}

func TestDeleteSiteNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	assert.ErrorIs(t, s.DeleteSite(context.Background(), "missing"), store.ErrNotFound)
}

func TestActivityLogsNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.CreateActivityLog(ctx, store.ActivityLogFields{
		TaskID: "t1", SiteID: "s1", Action: model.ActionTaskCreated,
	})
	require.NoError(t, err)
	second, err := s.CreateActivityLog(ctx, store.ActivityLogFields{
		TaskID: "t1", SiteID: "s1", Action: model.ActionTaskStarted,
	})
	require.NoError(t, err)

	logs, err := s.ListActivityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)
	assert.False(t, logs[0].Timestamp.Before(logs[1].Timestamp))
}
