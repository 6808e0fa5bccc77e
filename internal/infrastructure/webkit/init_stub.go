//go:build !webkit_cgo

package webkit

// Init is a no-op without webkit_cgo.
func Init() {}
