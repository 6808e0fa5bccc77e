package webkit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textshop/inlay/internal/application/port"
)

type recordingEvents struct {
	events []port.DownloadEvent
}

func (r *recordingEvents) OnDownloadEvent(_ context.Context, ev port.DownloadEvent) {
	r.events = append(r.events, ev)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.exe", "evil.exe"},
		{"dir/sub/name.tar.gz", "name.tar.gz"},
		{"..", "download"},
		{".", "download"},
		{"", "download"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "a.pdf", filenameFromURL("https://example.org/files/a.pdf"))
	assert.Equal(t, "download", filenameFromURL("https://example.org/"))
	assert.Equal(t, "download", filenameFromURL("://bad"))
}

func TestDownloaderHandleRequest(t *testing.T) {
	dir := t.TempDir()
	events := &recordingEvents{}
	d := NewDownloader(dir, nil, events)

	dest, err := d.HandleRequest(context.Background(), port.DownloadRequested{
		URL:               "https://example.org/report.pdf",
		MIMEType:          "application/pdf",
		SuggestedFilename: "../report.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), dest, "sanitized name must stay inside the directory")
	require.Len(t, events.events, 1)
	assert.Equal(t, port.DownloadEventStarted, events.events[0].Type)
	assert.Equal(t, "report.pdf", events.events[0].Filename)
}

func TestDownloaderFallsBackToURLName(t *testing.T) {
	dir := t.TempDir()
	d := NewDownloader(dir, nil, nil)

	dest, err := d.HandleRequest(context.Background(), port.DownloadRequested{
		URL: "https://example.org/data/archive.tar.gz",
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "archive.tar.gz"), dest)
}
