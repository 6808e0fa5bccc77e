package port

// MainLoop marshals work onto the single UI-owning thread. The toolkit and
// the rendering engine require that all view-mutating operations happen
// there.
type MainLoop interface {
	// Invoke schedules fn on the UI thread and returns immediately.
	Invoke(fn func())

	// InvokeSync schedules fn on the UI thread and blocks the caller until
	// it has run. Calling it from the UI thread itself runs fn inline.
	InvokeSync(fn func())
}
