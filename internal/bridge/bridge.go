package bridge

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// ErrScriptingBlocked is returned when a caller-initiated script targets a
// URL whose response carried a blocking sandbox directive.
var ErrScriptingBlocked = errors.New("scripting blocked by content security policy")

// FileChooserFunc handles open-panel requests from page content. Respond is
// invoked with the chosen paths, or nil to cancel.
type FileChooserFunc func(ctx context.Context, req OpenPanelRequest)

// Bridge mediates between the host editor and embedded rendering surfaces.
// All methods must run on the UI-owning thread; the usecase layer marshals
// editor-originated calls there before touching the bridge.
type Bridge struct {
	reg      *Registry
	policy   *PolicyState
	bus      port.EditorBus
	host     port.HostFrame
	surfaces port.SurfaceResolver

	chooser FileChooserFunc

	// onNavigationFinished runs after the model is updated and before the
	// load-changed event is published. Used to re-apply per-domain zoom.
	onNavigationFinished func(ctx context.Context, widget entity.WidgetID, uri string)
}

// New creates a bridge over the given collaborators.
func New(reg *Registry, policy *PolicyState, bus port.EditorBus, host port.HostFrame, surfaces port.SurfaceResolver) *Bridge {
	return &Bridge{
		reg:      reg,
		policy:   policy,
		bus:      bus,
		host:     host,
		surfaces: surfaces,
	}
}

// Registry exposes the widget/view registry.
func (b *Bridge) Registry() *Registry { return b.reg }

// Policy exposes the navigation policy state.
func (b *Bridge) Policy() *PolicyState { return b.policy }

// SetFileChooser installs the open-panel handler. Without one, panel
// requests are cancelled.
func (b *Bridge) SetFileChooser(fn FileChooserFunc) { b.chooser = fn }

// SetNavigationFinishedHook installs the post-navigation hook.
func (b *Bridge) SetNavigationFinishedHook(fn func(ctx context.Context, widget entity.WidgetID, uri string)) {
	b.onNavigationFinished = fn
}

// HandleEvent is the single dispatch entry point for engine events. It
// returns the bridge's verdict for policy events and DecisionNone for
// notifications.
func (b *Bridge) HandleEvent(ctx context.Context, ev Event) Decision {
	switch e := ev.(type) {
	case ResponseDecision:
		return b.handleResponseDecision(ctx, e)
	case NavigationDecision:
		return DecisionAllow
	case NavigationFinished:
		b.handleNavigationFinished(ctx, e)
		return DecisionNone
	case ScriptMessage:
		b.handleScriptMessage(ctx, e)
		return DecisionNone
	case OpenPanelRequest:
		b.handleOpenPanel(ctx, e)
		return DecisionNone
	default:
		logging.FromContext(ctx).Warn().Msgf("unhandled bridge event %T", ev)
		return DecisionNone
	}
}

// handleResponseDecision applies the MIME gate, then senses the CSP sandbox
// directive and records the scripting decision for the URL.
func (b *Bridge) handleResponseDecision(ctx context.Context, e ResponseDecision) Decision {
	log := logging.FromContext(ctx)

	if !e.CanShow {
		log.Info().
			Str("url", logging.TruncateURL(e.URI, 60)).
			Str("mime", e.MIMEType).
			Msg("response not displayable, handing off to download")
		b.bus.Publish(ctx, port.DownloadRequested{
			URL:               e.URI,
			MIMEType:          e.MIMEType,
			SuggestedFilename: e.SuggestedFilename,
		})
		return DecisionDownload
	}

	blocked := SandboxBlocksScripts(e.ContentSecurityPolicy)
	b.policy.SetBlocked(e.URI, blocked)
	if blocked {
		log.Debug().Str("url", logging.TruncateURL(e.URI, 60)).Msg("sandbox directive blocks scripting")
	}
	return DecisionAllow
}

// handleNavigationFinished updates the owning widget and queues the
// load-changed notification. Completions for torn-down surfaces are
// dropped after the liveness check.
func (b *Bridge) handleNavigationFinished(ctx context.Context, e NavigationFinished) {
	log := logging.FromContext(ctx)

	model, ok := b.reg.WidgetBySurface(e.Surface)
	if !ok {
		log.Debug().Uint64("surface", uint64(e.Surface)).Msg("navigation finished for dead surface, dropping")
		return
	}

	model.TargetURI = e.URI

	if b.onNavigationFinished != nil {
		b.onNavigationFinished(ctx, model.ID, e.URI)
	}

	b.bus.Publish(ctx, port.LoadChanged{Widget: model.ID})
}

// pageMessage is the envelope posted by the injected page script.
type pageMessage struct {
	Type string `json:"type"`
}

// handleScriptMessage routes messages from the page-side script. The
// interrupt message forcibly hands keyboard focus to the host frame; it
// fires from inside the page's own event listener, independent of the
// native key-event path.
func (b *Bridge) handleScriptMessage(ctx context.Context, e ScriptMessage) {
	log := logging.FromContext(ctx)

	var msg pageMessage
	if err := json.Unmarshal(e.Body, &msg); err != nil {
		log.Warn().Err(err).Msg("undecodable page message")
		return
	}

	switch msg.Type {
	case InterruptMessageType:
		model, ok := b.reg.WidgetBySurface(e.Surface)
		if !ok {
			return
		}
		log.Debug().Uint64("widget_id", uint64(model.ID)).Msg("page interrupt chord, focusing host frame")
		b.host.GrabFocus(ctx, model.ID)
	default:
		log.Warn().Str("type", msg.Type).Msg("unknown page message type")
	}
}

func (b *Bridge) handleOpenPanel(ctx context.Context, e OpenPanelRequest) {
	if b.chooser == nil {
		e.Respond(nil)
		return
	}
	b.chooser(ctx, e)
}

// ExecuteScript evaluates source text against a widget's surface. The
// completion routine, if any, receives the marshaled result through the
// editor bus; evaluation errors are logged and deliver nothing, so the
// caller cannot distinguish "no result" from "error" without diagnostics.
func (b *Bridge) ExecuteScript(ctx context.Context, widget entity.WidgetID, script string, cb port.ScriptCallback) error {
	log := logging.FromContext(ctx)

	model, ok := b.reg.Widget(widget)
	if !ok {
		return ErrWidgetNotFound
	}
	surface, ok := b.surfaces.Surface(model.Surface)
	if !ok {
		return ErrWidgetNotFound
	}

	if b.policy.Blocked(surface.URI()) {
		log.Debug().Uint64("widget_id", uint64(widget)).Msg("script suppressed for sandboxed page")
		return ErrScriptingBlocked
	}

	// The continuation carries only the target identifier and the
	// completion routine; it never closes over view state.
	cont := scriptContinuation{widget: widget, callback: cb}

	surface.EvaluateScript(ctx, script, func(raw []byte, err error) {
		b.deliverScriptResult(ctx, cont, raw, err)
	})
	return nil
}

// scriptContinuation is the in-flight (script, completion-routine) pair.
type scriptContinuation struct {
	widget   entity.WidgetID
	callback port.ScriptCallback
}

// deliverScriptResult validates liveness, marshals, and queues the result
// for the editor. Runs on the UI-owning thread.
func (b *Bridge) deliverScriptResult(ctx context.Context, cont scriptContinuation, raw []byte, err error) {
	log := logging.FromContext(ctx)

	if err != nil {
		log.Warn().Err(err).Uint64("widget_id", uint64(cont.widget)).Msg("script evaluation failed")
		return
	}
	if cont.callback == nil {
		// No completion routine registered; result is discarded.
		return
	}
	if !b.reg.Alive(cont.widget) {
		log.Debug().Uint64("widget_id", uint64(cont.widget)).Msg("script result for destroyed widget, dropping")
		return
	}

	b.bus.Publish(ctx, port.ScriptResult{
		Callback: cont.callback,
		Value:    MarshalResult(ctx, raw),
	})
}
