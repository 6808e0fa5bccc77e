package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/repository"
	"github.com/textshop/inlay/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// NavigateUseCase drives widget navigation and re-applies the persisted
// per-domain zoom when a load completes.
type NavigateUseCase struct {
	reg         *bridge.Registry
	resolver    port.SurfaceResolver
	loop        port.MainLoop
	zoomRepo    repository.ZoomRepository
	defaultZoom float64
}

// NewNavigateUseCase creates a navigation use case. defaultZoom applies to
// domains with no persisted zoom; non-positive values fall back to 1.0.
func NewNavigateUseCase(reg *bridge.Registry, resolver port.SurfaceResolver, loop port.MainLoop, zoomRepo repository.ZoomRepository, defaultZoom float64) *NavigateUseCase {
	if defaultZoom <= 0 {
		defaultZoom = entity.ZoomDefault
	}
	return &NavigateUseCase{
		reg:         reg,
		resolver:    resolver,
		loop:        loop,
		zoomRepo:    zoomRepo,
		defaultZoom: defaultZoom,
	}
}

// surfaceFor resolves the live surface behind a widget.
func (uc *NavigateUseCase) surfaceFor(widget entity.WidgetID) (port.Surface, error) {
	model, ok := uc.reg.Widget(widget)
	if !ok {
		return nil, bridge.ErrWidgetNotFound
	}
	surface, ok := uc.resolver.Surface(model.Surface)
	if !ok {
		return nil, bridge.ErrWidgetNotFound
	}
	return surface, nil
}

// Goto navigates a widget to a URL.
func (uc *NavigateUseCase) Goto(ctx context.Context, widget entity.WidgetID, rawURL string) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Uint64("widget_id", uint64(widget)).
		Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).
		Msg("navigating widget")

	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		if model, ok := uc.reg.Widget(widget); ok {
			model.TargetURI = rawURL
		}
		if loadErr := surface.LoadURI(ctx, rawURL); loadErr != nil {
			err = fmt.Errorf("failed to load URL: %w", loadErr)
		}
	})
	return err
}

// Reload reloads the widget's current page.
func (uc *NavigateUseCase) Reload(ctx context.Context, widget entity.WidgetID) error {
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		err = surface.Reload(ctx)
	})
	return err
}

// Back moves the widget one entry back in session history.
func (uc *NavigateUseCase) Back(ctx context.Context, widget entity.WidgetID) error {
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		err = surface.GoBack(ctx)
	})
	return err
}

// Forward moves the widget one entry forward in session history.
func (uc *NavigateUseCase) Forward(ctx context.Context, widget entity.WidgetID) error {
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		err = surface.GoForward(ctx)
	})
	return err
}

// CurrentURI returns the widget's displayed URI.
func (uc *NavigateUseCase) CurrentURI(ctx context.Context, widget entity.WidgetID) (string, error) {
	var uri string
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		uri = surface.URI()
	})
	return uri, err
}

// CurrentTitle returns the widget's page title.
func (uc *NavigateUseCase) CurrentTitle(ctx context.Context, widget entity.WidgetID) (string, error) {
	var title string
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.surfaceFor(widget)
		if err != nil {
			return
		}
		title = surface.Title()
	})
	return title, err
}

// OnNavigationFinished re-applies the persisted zoom for the navigated
// domain. Wired into the bridge as its navigation-finished hook; runs on
// the UI thread already, so it talks to the surface directly.
func (uc *NavigateUseCase) OnNavigationFinished(ctx context.Context, widget entity.WidgetID, uri string) {
	log := logging.FromContext(ctx)

	surface, err := uc.surfaceFor(widget)
	if err != nil {
		return
	}

	factor := uc.defaultZoom
	if domain := domainOf(uri); domain != "" && uc.zoomRepo != nil {
		level, repoErr := uc.zoomRepo.Get(ctx, domain)
		if repoErr != nil {
			log.Warn().Err(repoErr).Str("domain", domain).Msg("failed to read persisted zoom")
		} else if level != nil {
			factor = level.ZoomFactor
		}
	}

	if surface.ZoomLevel() == factor {
		return
	}
	if err := surface.SetZoomLevel(ctx, factor); err != nil {
		log.Warn().Err(err).Uint64("widget_id", uint64(widget)).Msg("failed to apply zoom")
	}
}

// domainOf extracts the lowercase host from a URL, empty when there is
// none worth keying zoom on.
func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
