package entity

import "time"

// Download records one response handed off to the download path after the
// engine declined to display it inline.
type Download struct {
	ID          int64
	URL         string
	Filename    string
	Destination string
	MIMEType    string
	Completed   bool
	CreatedAt   time.Time
}

// NewDownload creates a pending download record.
func NewDownload(url, filename, destination, mimeType string) *Download {
	return &Download{
		URL:         url,
		Filename:    filename,
		Destination: destination,
		MIMEType:    mimeType,
		CreatedAt:   time.Now(),
	}
}
