//go:build !webkit_cgo

package webkit

import (
	"errors"
	"unsafe"

	"github.com/textshop/inlay/internal/application/port"
)

// ErrNotImplemented is returned by engine operations when the module is
// built without the webkit_cgo tag.
var ErrNotImplemented = errors.New("webkit support not compiled in (build with -tags webkit_cgo)")

// nativeSurface is the headless stand-in: navigation state is tracked in
// memory and script evaluation reports an error, which the bridge treats as
// a fail-safe redirect.
type nativeSurface struct {
	uri    string
	title  string
	width  int
	height int
}

func (s *Surface) nativeInit(width, height int) error {
	s.native = nativeSurface{width: width, height: height}
	return nil
}

// Widget returns nil; there is no native widget without webkit_cgo.
func (s *Surface) Widget() unsafe.Pointer { return nil }

func (s *Surface) nativeLoadURI(uri string) error {
	s.native.uri = uri
	return nil
}

func (s *Surface) nativeReload() error    { return nil }
func (s *Surface) nativeGoBack() error    { return nil }
func (s *Surface) nativeGoForward() error { return nil }

func (s *Surface) nativeURI() string   { return s.native.uri }
func (s *Surface) nativeTitle() string { return s.native.title }

func (s *Surface) nativeContentSize() (int, int) {
	return s.native.width, s.native.height
}

func (s *Surface) nativeResize(width, height int) error {
	s.native.width = width
	s.native.height = height
	return nil
}

func (s *Surface) nativeSetZoom(float64) error { return nil }

func (s *Surface) nativeEvaluate(_ string, fn port.ScriptResultFunc) {
	fn(nil, ErrNotImplemented)
}

func (s *Surface) nativeDetachHandlers() error { return nil }

func (s *Surface) nativeRelease() {
	s.native = nativeSurface{}
}
