package usecase

import (
	"context"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// ScriptUseCase runs editor-supplied script text against a widget. The
// bridge does the policy check, liveness tracking, and result marshaling;
// this layer only moves the call onto the UI thread.
type ScriptUseCase struct {
	b    *bridge.Bridge
	loop port.MainLoop
}

// NewScriptUseCase creates the script execution use case.
func NewScriptUseCase(b *bridge.Bridge, loop port.MainLoop) *ScriptUseCase {
	return &ScriptUseCase{b: b, loop: loop}
}

// Execute evaluates script in the widget's page. cb, when non-nil, receives
// the marshaled result through the editor bus once the page answers;
// without it the result is discarded. Returns synchronously with the
// submission verdict, not the evaluation outcome.
func (uc *ScriptUseCase) Execute(ctx context.Context, widget entity.WidgetID, script string, cb port.ScriptCallback) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Uint64("widget_id", uint64(widget)).
		Int("script_len", len(script)).
		Msg("executing script")

	var err error
	uc.loop.InvokeSync(func() {
		err = uc.b.ExecuteScript(ctx, widget, script, cb)
	})
	return err
}
