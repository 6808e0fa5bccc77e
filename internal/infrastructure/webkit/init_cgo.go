//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: gtk4
#include <gtk/gtk.h>
*/
import "C"

// Init initializes GTK. Must be called on the UI thread before any widget
// is created.
func Init() {
	C.gtk_init()
}
