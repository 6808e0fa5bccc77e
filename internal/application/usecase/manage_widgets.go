// Package usecase implements the editor-facing commands over the bridge
// core. Every command entering from the editor's execution context is
// marshaled onto the UI-owning thread through port.MainLoop before it
// touches a surface.
package usecase

import (
	"context"
	"fmt"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// WidgetUseCase owns widget and view lifecycle: creation, display,
// resizing, and ordered teardown.
type WidgetUseCase struct {
	reg      *bridge.Registry
	factory  port.SurfaceFactory
	resolver port.SurfaceResolver
	loop     port.MainLoop
}

// NewWidgetUseCase creates the widget lifecycle use case.
func NewWidgetUseCase(reg *bridge.Registry, factory port.SurfaceFactory, resolver port.SurfaceResolver, loop port.MainLoop) *WidgetUseCase {
	return &WidgetUseCase{reg: reg, factory: factory, resolver: resolver, loop: loop}
}

// CreateInput contains parameters for widget creation.
type CreateInput struct {
	URI    string
	Width  int
	Height int
}

// Create builds a surface and registers a widget model over it. When URI is
// non-empty the initial navigation starts before Create returns.
func (uc *WidgetUseCase) Create(ctx context.Context, input CreateInput) (*entity.WidgetModel, error) {
	log := logging.FromContext(ctx)

	var model *entity.WidgetModel
	var err error
	uc.loop.InvokeSync(func() {
		var surface port.Surface
		surface, err = uc.factory.Create(ctx, input.Width, input.Height)
		if err != nil {
			err = fmt.Errorf("failed to create surface: %w", err)
			return
		}
		model = uc.reg.CreateWidget(surface.ID(), input.Width, input.Height)
		if input.URI != "" {
			model.TargetURI = input.URI
			if loadErr := surface.LoadURI(ctx, input.URI); loadErr != nil {
				log.Warn().Err(loadErr).Str("url", logging.TruncateURL(input.URI, 60)).Msg("initial navigation failed")
			}
		}
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint64("widget_id", uint64(model.ID)).
		Int("width", input.Width).
		Int("height", input.Height).
		Msg("widget created")
	return model, nil
}

// Display attaches a view to the widget. A widget can be shown by at most
// one view; a second Display without an intervening Undisplay fails.
func (uc *WidgetUseCase) Display(ctx context.Context, widget entity.WidgetID) (*entity.View, error) {
	var view *entity.View
	var err error
	uc.loop.InvokeSync(func() {
		view, err = uc.reg.CreateView(widget)
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Uint64("widget_id", uint64(widget)).
		Uint64("view_id", uint64(view.ID)).
		Msg("view attached")
	return view, nil
}

// Undisplay detaches the widget's view, leaving the model alive for a later
// Display.
func (uc *WidgetUseCase) Undisplay(ctx context.Context, widget entity.WidgetID) error {
	var err error
	uc.loop.InvokeSync(func() {
		view, ok := uc.reg.ViewForWidget(widget)
		if !ok {
			err = bridge.ErrViewNotFound
			return
		}
		err = uc.reg.DestroyView(view.ID)
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Uint64("widget_id", uint64(widget)).Msg("view detached")
	return nil
}

// Resize updates the widget's requested geometry and forwards it to the
// toolkit so the view re-layouts.
func (uc *WidgetUseCase) Resize(ctx context.Context, widget entity.WidgetID, width, height int) error {
	var err error
	uc.loop.InvokeSync(func() {
		model, ok := uc.reg.Widget(widget)
		if !ok {
			err = bridge.ErrWidgetNotFound
			return
		}
		model.Resize(width, height)
		if surface, ok := uc.resolver.Surface(model.Surface); ok {
			err = surface.Resize(ctx, width, height)
		}
	})
	return err
}

// Size reports the widget's rendered size as the toolkit sees it, which can
// differ from the last requested geometry.
func (uc *WidgetUseCase) Size(ctx context.Context, widget entity.WidgetID) (int, int, error) {
	var width, height int
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
		width, height = surface.ContentSize()
	})
	return width, height, err
}

// Destroy tears a widget down in a fixed order: message handlers are
// detached first so no page callback can fire into a half-dead widget, the
// registry cross-references are cleared next, a blank navigation stops any
// media still playing, and only then are the native view and container
// released.
func (uc *WidgetUseCase) Destroy(ctx context.Context, widget entity.WidgetID) error {
	log := logging.FromContext(ctx)

	var err error
	uc.loop.InvokeSync(func() {
		model, ok := uc.reg.Widget(widget)
		if !ok {
			err = bridge.ErrWidgetNotFound
			return
		}

		surface, live := uc.resolver.Surface(model.Surface)

		if live {
			if detachErr := surface.DetachMessageHandlers(ctx); detachErr != nil {
				log.Warn().Err(detachErr).Uint64("widget_id", uint64(widget)).Msg("failed to detach message handlers")
			}
		}

		if removeErr := uc.reg.RemoveWidget(widget); removeErr != nil {
			err = removeErr
			return
		}

		if live {
			if blankErr := surface.LoadBlank(ctx); blankErr != nil {
				log.Warn().Err(blankErr).Uint64("widget_id", uint64(widget)).Msg("blank navigation failed during teardown")
			}
			surface.Release(ctx)
		}
	})
	if err != nil {
		return err
	}

	log.Info().Uint64("widget_id", uint64(widget)).Msg("widget destroyed")
	return nil
}
