package webkit

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/domain/repository"
	"github.com/textshop/inlay/internal/logging"
)

const downloadDirPerm = 0o755

// Downloader handles responses the engine declined to display inline. It
// resolves a safe destination under the configured directory, records the
// hand-off in the download log, and notifies the event handler.
type Downloader struct {
	mu     sync.RWMutex
	dir    string
	repo   repository.DownloadRepository
	events port.DownloadEventHandler
}

// NewDownloader creates a downloader writing into dir. repo and events may
// be nil.
func NewDownloader(dir string, repo repository.DownloadRepository, events port.DownloadEventHandler) *Downloader {
	return &Downloader{dir: dir, repo: repo, events: events}
}

// SetDirectory updates the destination directory; applied to downloads
// started afterwards. Wired to config reload.
func (d *Downloader) SetDirectory(path string) {
	d.mu.Lock()
	d.dir = path
	d.mu.Unlock()
}

// HandleRequest accepts a download hand-off and returns the chosen
// destination path.
func (d *Downloader) HandleRequest(ctx context.Context, req port.DownloadRequested) (string, error) {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	dir := d.dir
	events := d.events
	d.mu.RUnlock()

	if err := os.MkdirAll(dir, downloadDirPerm); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	filename := req.SuggestedFilename
	if filename == "" {
		filename = filenameFromURL(req.URL)
	}
	filename = sanitizeFilename(filename)
	dest := filepath.Join(dir, filename)

	if d.repo != nil {
		dl := entity.NewDownload(req.URL, filename, dest, req.MIMEType)
		if err := d.repo.Save(ctx, dl); err != nil {
			log.Warn().Err(err).Str("filename", filename).Msg("failed to record download")
		}
	}

	if events != nil {
		events.OnDownloadEvent(ctx, port.DownloadEvent{
			Type:        port.DownloadEventStarted,
			Filename:    filename,
			Destination: dest,
		})
	}

	log.Info().
		Str("filename", filename).
		Str("destination", dest).
		Str("mime", req.MIMEType).
		Msg("download started")
	return dest, nil
}

// filenameFromURL derives a filename from the URL path.
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "download"
	}
	base := filepath.Base(parsed.Path)
	if base == "." || base == "/" || base == "" {
		return "download"
	}
	return base
}

// sanitizeFilename strips directory components so a suggested filename
// cannot escape the download directory.
func sanitizeFilename(name string) string {
	// filepath.Base only splits on the native separator; normalize
	// backslashes first.
	name = strings.ReplaceAll(name, "\\", "/")

	clean := filepath.Base(name)
	if clean == "." || clean == ".." || clean == "" || clean == "/" {
		return "download"
	}
	return clean
}
