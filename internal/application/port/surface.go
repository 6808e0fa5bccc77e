// Package port defines the interfaces between the bridge core and the
// engine/toolkit/editor adapters. The core depends only on these; the
// WebKitGTK implementation lives in internal/infrastructure/webkit.
package port

import (
	"context"

	"github.com/textshop/inlay/internal/domain/entity"
)

// ScriptResultFunc receives the serialized result of a script evaluation.
// Exactly one of raw/err is meaningful. Invoked on the UI-owning thread.
type ScriptResultFunc func(raw []byte, err error)

// Surface is one rendering surface owned by a widget model. All mutating
// calls must happen on the UI-owning thread; the usecase layer enforces that
// via MainLoop.
type Surface interface {
	ID() entity.SurfaceID

	LoadURI(ctx context.Context, uri string) error
	// LoadBlank navigates to about:blank. Part of the ordered teardown: it
	// stops in-progress media playback before resources are released.
	LoadBlank(ctx context.Context) error
	Reload(ctx context.Context) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error

	URI() string
	Title() string
	ContentSize() (width, height int)

	// Resize forwards a new geometry request to the toolkit so the view
	// re-layouts at the new size.
	Resize(ctx context.Context, width, height int) error

	SetZoomLevel(ctx context.Context, level float64) error
	ZoomLevel() float64

	// EvaluateScript runs script in the page and delivers the serialized
	// result asynchronously. The callback fires on the UI-owning thread.
	EvaluateScript(ctx context.Context, script string, fn ScriptResultFunc)

	// DetachMessageHandlers unregisters all script-message-handler
	// registrations. First step of teardown.
	DetachMessageHandlers(ctx context.Context) error

	// Release frees the native view and its container. Last step of
	// teardown; the surface is unusable afterwards.
	Release(ctx context.Context)

	IsDestroyed() bool
}

// SurfaceResolver looks up live surfaces by ID. A missing entry means the
// surface was torn down; late completions must treat that as a no-op.
type SurfaceResolver interface {
	Surface(id entity.SurfaceID) (Surface, bool)
}

// SurfaceFactory creates rendering surfaces. The adapter registers each new
// surface with its resolver before returning it.
type SurfaceFactory interface {
	Create(ctx context.Context, width, height int) (Surface, error)
}
