package bridge

import "github.com/textshop/inlay/internal/domain/entity"

// Event is the closed set of engine notifications dispatched through the
// bridge. The engine adapter translates its delegate callbacks into these
// and feeds them to Bridge.HandleEvent on the UI-owning thread.
type Event interface{ isEvent() }

// NavigationFinished fires when a surface completes a page load.
type NavigationFinished struct {
	Surface entity.SurfaceID
	URI     string
}

// NavigationDecision fires before a surface follows a navigation action.
type NavigationDecision struct {
	Surface     entity.SurfaceID
	URI         string
	UserGesture bool
}

// ResponseDecision fires once response headers for a navigation are
// available. CanShow is the engine's verdict on whether the MIME type can
// be displayed inline.
type ResponseDecision struct {
	Surface               entity.SurfaceID
	URI                   string
	MIMEType              string
	CanShow               bool
	ContentSecurityPolicy string
	SuggestedFilename     string
}

// ScriptMessage fires when the injected page script posts on the bridge's
// message channel.
type ScriptMessage struct {
	Surface entity.SurfaceID
	Body    []byte
}

// OpenPanelRequest fires when page content asks for a file-chooser panel.
// Respond must be called exactly once; nil paths cancel the panel.
type OpenPanelRequest struct {
	Surface  entity.SurfaceID
	Multiple bool
	Respond  func(paths []string)
}

func (NavigationFinished) isEvent() {}
func (NavigationDecision) isEvent() {}
func (ResponseDecision) isEvent()   {}
func (ScriptMessage) isEvent()      {}
func (OpenPanelRequest) isEvent()   {}

// Decision is the bridge's verdict on a policy event.
type Decision int

const (
	// DecisionNone marks events that carry no policy verdict.
	DecisionNone Decision = iota
	// DecisionAllow lets the engine proceed.
	DecisionAllow
	// DecisionCancel stops the engine action.
	DecisionCancel
	// DecisionDownload cancels inline display and hands the response to
	// the download path.
	DecisionDownload
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionCancel:
		return "cancel"
	case DecisionDownload:
		return "download"
	default:
		return "none"
	}
}
