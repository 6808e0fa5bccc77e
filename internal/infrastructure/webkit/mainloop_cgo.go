//go:build webkit_cgo

package webkit

import (
	"runtime"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// MainLoop runs the GLib main loop on a locked OS thread and implements
// port.MainLoop over glib.IdleAdd.
type MainLoop struct {
	loop *glib.MainLoop
}

// NewMainLoop creates the main loop. Call Run from the goroutine that owns
// the UI; it locks that goroutine to its OS thread.
func NewMainLoop() *MainLoop {
	return &MainLoop{loop: glib.NewMainLoop(nil, false)}
}

// Run blocks until Quit.
func (m *MainLoop) Run() {
	runtime.LockOSThread()
	m.loop.Run()
}

// Quit stops the loop.
func (m *MainLoop) Quit() {
	m.loop.Quit()
}

// onUIThread reports whether the caller holds the default main context.
func onUIThread() bool {
	return glib.MainContextDefault().IsOwner()
}

// Invoke schedules fn on the UI thread and returns immediately.
func (m *MainLoop) Invoke(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// InvokeSync runs fn on the UI thread and waits for it. Calls from the UI
// thread itself run inline, so bridge code can use the same entry points as
// editor-side callers.
func (m *MainLoop) InvokeSync(fn func()) {
	if onUIThread() {
		fn()
		return
	}

	done := make(chan struct{})
	glib.IdleAdd(func() bool {
		fn()
		close(done)
		return false
	})
	<-done
}
