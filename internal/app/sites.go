package app

import (
	"context"

	"github.com/64robkash/website-manager/internal/model"
	"github.com/64robkash/website-manager/internal/store"
)

// AddSite creates a new site and returns it with its assigned id.
func (a *App) AddSite(ctx context.Context, fields store.SiteFields) (model.Site, error) {
	site, err := a.store.CreateSite(ctx, fields)
	if err != nil {
		a.log.Error().Err(err).Str("name", fields.Name).Msg("adding site")
		return model.Site{}, err
	}
	a.log.Debug().Str("site_id", site.ID).Str("name", site.Name).Msg("site added")
	return site, nil
}

// UpdateSite applies a partial update to a site.
func (a *App) UpdateSite(ctx context.Context, id string, patch store.SitePatch) error {
	if err := a.store.UpdateSite(ctx, id, patch); err != nil {
		a.log.Error().Err(err).Str("site_id", id).Msg("updating site")
		return err
	}
	return nil
}

// DeleteSite removes a site. The gateway cascades the delete to the
// site's tasks; activity log history referencing the site is kept.
func (a *App) DeleteSite(ctx context.Context, id string) error {
	if err := a.store.DeleteSite(ctx, id); err != nil {
		a.log.Error().Err(err).Str("site_id", id).Msg("deleting site")
		return err
	}
	a.log.Debug().Str("site_id", id).Msg("site deleted")
	return nil
}
