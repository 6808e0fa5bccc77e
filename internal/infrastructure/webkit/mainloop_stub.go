//go:build !webkit_cgo

package webkit

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// threadID identifies the OS thread after Run has locked it.
func threadID() int64 { return int64(unix.Gettid()) }

// MainLoop is the headless stand-in for the GLib main loop: a task queue
// drained by a single locked OS thread, so the UI-thread contract holds in
// tests and on machines without WebKitGTK.
type MainLoop struct {
	tasks chan func()

	quitOnce sync.Once
	quit     chan struct{}

	mu       sync.Mutex
	uiThread int64
}

// NewMainLoop creates the loop.
func NewMainLoop() *MainLoop {
	return &MainLoop{
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
}

// Run drains tasks until Quit. It locks the calling goroutine to its OS
// thread, which becomes the UI-owning thread.
func (m *MainLoop) Run() {
	runtime.LockOSThread()
	m.mu.Lock()
	m.uiThread = threadID()
	m.mu.Unlock()

	for {
		select {
		case fn := <-m.tasks:
			fn()
		case <-m.quit:
			return
		}
	}
}

// Quit stops the loop.
func (m *MainLoop) Quit() {
	m.quitOnce.Do(func() { close(m.quit) })
}

func (m *MainLoop) onUIThread() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uiThread != 0 && m.uiThread == threadID()
}

// Invoke schedules fn on the UI thread and returns immediately.
func (m *MainLoop) Invoke(fn func()) {
	select {
	case m.tasks <- fn:
	case <-m.quit:
	}
}

// InvokeSync runs fn on the UI thread and waits for it; calls from the UI
// thread itself run inline.
func (m *MainLoop) InvokeSync(fn func()) {
	if m.onUIThread() {
		fn()
		return
	}

	done := make(chan struct{})
	m.Invoke(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
	case <-m.quit:
	}
}
