package usecase

import (
	"context"
	"fmt"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/repository"
	"github.com/textshop/inlay/internal/logging"
)

// ZoomUseCase adjusts widget zoom and persists it per domain, so revisits
// to a site restore the chosen factor across widget lifetimes.
type ZoomUseCase struct {
	reg      *bridge.Registry
	resolver port.SurfaceResolver
	loop     port.MainLoop
	repo     repository.ZoomRepository
}

// NewZoomUseCase creates the zoom use case.
func NewZoomUseCase(reg *bridge.Registry, resolver port.SurfaceResolver, loop port.MainLoop, repo repository.ZoomRepository) *ZoomUseCase {
	return &ZoomUseCase{reg: reg, resolver: resolver, loop: loop, repo: repo}
}

// Adjust applies a relative zoom delta to the widget and persists the
// resulting factor for the page's domain.
func (uc *ZoomUseCase) Adjust(ctx context.Context, widget entity.WidgetID, delta float64) (float64, error) {
	return uc.apply(ctx, widget, func(level *entity.ZoomLevel) {
		level.AdjustBy(delta)
	})
}

// Set forces an absolute zoom factor on the widget and persists it.
func (uc *ZoomUseCase) Set(ctx context.Context, widget entity.WidgetID, factor float64) (float64, error) {
	return uc.apply(ctx, widget, func(level *entity.ZoomLevel) {
		*level = *entity.NewZoomLevel(level.Domain, factor)
	})
}

// Reset restores the widget to the default zoom and removes the persisted
// entry for its domain.
func (uc *ZoomUseCase) Reset(ctx context.Context, widget entity.WidgetID) (float64, error) {
	return uc.apply(ctx, widget, func(level *entity.ZoomLevel) {
		level.Reset()
	})
}

// apply runs mutate over the widget's current zoom state, pushes the result
// to the surface on the UI thread, and persists it afterwards. Default
// factors delete the stored row instead of keeping a no-op entry.
func (uc *ZoomUseCase) apply(ctx context.Context, widget entity.WidgetID, mutate func(*entity.ZoomLevel)) (float64, error) {
	log := logging.FromContext(ctx)

	var level *entity.ZoomLevel
	var err error
	uc.loop.InvokeSync(func() {
		model, ok := uc.reg.Widget(widget)
		if !ok {
			err = bridge.ErrWidgetNotFound
			return
		}
		surface, ok := uc.resolver.Surface(model.Surface)
		if !ok {
			err = bridge.ErrWidgetNotFound
			return
		}

		level = entity.NewZoomLevel(domainOf(surface.URI()), surface.ZoomLevel())
		mutate(level)

		if zoomErr := surface.SetZoomLevel(ctx, level.ZoomFactor); zoomErr != nil {
			err = fmt.Errorf("failed to set zoom level: %w", zoomErr)
		}
	})
	if err != nil {
		return 0, err
	}

	if uc.repo != nil && level.Domain != "" {
		if level.IsDefault() {
			if repoErr := uc.repo.Delete(ctx, level.Domain); repoErr != nil {
				log.Warn().Err(repoErr).Str("domain", level.Domain).Msg("failed to delete persisted zoom")
			}
		} else if repoErr := uc.repo.Set(ctx, level); repoErr != nil {
			log.Warn().Err(repoErr).Str("domain", level.Domain).Msg("failed to persist zoom")
		}
	}

	log.Debug().
		Uint64("widget_id", uint64(widget)).
		Str("domain", level.Domain).
		Int("percent", level.Percentage()).
		Msg("zoom applied")
	return level.ZoomFactor, nil
}
