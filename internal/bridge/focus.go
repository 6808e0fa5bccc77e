package bridge

import (
	"bytes"
	"context"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// FocusDecision is the arbiter's verdict on a keyboard event.
type FocusDecision int

const (
	// FocusConsume leaves the event with the embedded page.
	FocusConsume FocusDecision = iota
	// FocusRedirect hands the event and keyboard focus back to the host
	// frame.
	FocusRedirect
)

func (d FocusDecision) String() string {
	if d == FocusConsume {
		return "consume"
	}
	return "redirect"
}

// SearchActiveFunc reports whether the editor's interactive search is
// running. Checked first on every key event so search keeps collecting
// characters even while a page element holds focus.
type SearchActiveFunc func() bool

// FocusArbiter decides, per keyboard event, whether the embedded page or
// the host editor receives it. The decision has three tiers, checked in
// order:
//
//  1. interactive search active: redirect unconditionally;
//  2. scripting blocked for the page: redirect without any script
//     round-trip, since introspection cannot run there;
//  3. otherwise ask the page, asynchronously, whether an editable element
//     holds focus; editable keeps the event, anything else redirects.
//
// The page-side interrupt chord is the fourth path and does not pass
// through the arbiter; it arrives as a ScriptMessage on the bridge.
type FocusArbiter struct {
	reg          *Registry
	policy       *PolicyState
	surfaces     port.SurfaceResolver
	host         port.HostFrame
	searchActive SearchActiveFunc
}

// NewFocusArbiter creates a focus arbiter. searchActive may be nil, in
// which case the search tier never fires.
func NewFocusArbiter(reg *Registry, policy *PolicyState, surfaces port.SurfaceResolver, host port.HostFrame, searchActive SearchActiveFunc) *FocusArbiter {
	return &FocusArbiter{
		reg:          reg,
		policy:       policy,
		surfaces:     surfaces,
		host:         host,
		searchActive: searchActive,
	}
}

// ArbitrateKey runs the tiers for one keyboard event. done, if non-nil, is
// invoked exactly once with the verdict; for the introspection tier that
// happens asynchronously after the page answers. A redirect grabs focus
// for the host frame and re-dispatches the event there.
//
// Every failure along the introspection path redirects: a page that cannot
// answer must not be able to trap the keyboard.
func (a *FocusArbiter) ArbitrateKey(ctx context.Context, widget entity.WidgetID, ev port.KeyEvent, done func(FocusDecision)) {
	log := logging.FromContext(ctx)

	if a.searchActive != nil && a.searchActive() {
		log.Debug().Uint64("widget_id", uint64(widget)).Msg("interactive search active, redirecting key")
		a.redirect(ctx, widget, ev, done)
		return
	}

	model, ok := a.reg.Widget(widget)
	if !ok {
		a.redirect(ctx, widget, ev, done)
		return
	}
	surface, ok := a.surfaces.Surface(model.Surface)
	if !ok {
		a.redirect(ctx, widget, ev, done)
		return
	}

	if a.policy.Blocked(surface.URI()) {
		log.Debug().Uint64("widget_id", uint64(widget)).Msg("scripting blocked, redirecting key without introspection")
		a.redirect(ctx, widget, ev, done)
		return
	}

	surface.EvaluateScript(ctx, FocusQueryScript, func(raw []byte, err error) {
		if err != nil {
			log.Debug().Err(err).Uint64("widget_id", uint64(widget)).Msg("focus introspection failed, redirecting")
			a.redirect(ctx, widget, ev, done)
			return
		}
		if !a.reg.Alive(widget) {
			a.finish(done, FocusRedirect)
			return
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("true")) {
			a.finish(done, FocusConsume)
			return
		}
		a.redirect(ctx, widget, ev, done)
	})
}

// redirect hands focus and the pending event to the host frame.
func (a *FocusArbiter) redirect(ctx context.Context, widget entity.WidgetID, ev port.KeyEvent, done func(FocusDecision)) {
	a.host.GrabFocus(ctx, widget)
	a.host.ForwardKey(ctx, widget, ev)
	a.finish(done, FocusRedirect)
}

func (a *FocusArbiter) finish(done func(FocusDecision), d FocusDecision) {
	if done != nil {
		done(d)
	}
}
