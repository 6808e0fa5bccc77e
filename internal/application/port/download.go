package port

import "context"

// DownloadEventType identifies the lifecycle stage of an engine download.
type DownloadEventType int

const (
	DownloadEventStarted DownloadEventType = iota
	DownloadEventFinished
	DownloadEventFailed
)

// DownloadEvent describes progress of a download the engine completes on the
// bridge's behalf after a response was handed off the inline-display path.
type DownloadEvent struct {
	Type        DownloadEventType
	Filename    string
	Destination string
	Error       error
}

// DownloadEventHandler receives download lifecycle notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}
