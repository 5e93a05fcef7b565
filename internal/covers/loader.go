package covers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/handiism/albums-tui/internal/config"
	ioutils "github.com/handiism/albums-tui/internal/io"
	"github.com/handiism/albums-tui/internal/model"
)

// maxCachedCoverSize bounds the cached JPEG in pixels per side.
const maxCachedCoverSize = 512

// ErrNoCover is returned for albums that do not reference a cover.
var ErrNoCover = errors.New("album has no cover")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a cover loading update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	AlbumID int64
	Err     error
}

// Fetcher downloads the raw cover image of an album.
type Fetcher interface {
	FetchCover(ctx context.Context, album model.Album) ([]byte, error)
}

// Loader coordinates cover downloads, caching and rendering.
type Loader struct {
	settings     *config.Settings
	fetcher      Fetcher
	cache        *ioutils.Cache
	imageService *ioutils.ImageService
	sem          *semaphore.Weighted
	limit        int

	fetched int32
	cached  int32
	failed  int32

	onProgress func(ProgressEvent)
	sleep      func(ctx context.Context, d time.Duration)
}

// NewLoader creates a new cover Loader.
//
// cache may be nil, in which case every cover is downloaded.
func NewLoader(settings *config.Settings, fetcher Fetcher, cache *ioutils.Cache, onProgress func(ProgressEvent)) *Loader {
	limit := settings.MaxConcurrentCoverDownloads
	if limit < 1 {
		limit = 1
	}
	return &Loader{
		settings:     settings,
		fetcher:      fetcher,
		cache:        cache,
		imageService: ioutils.NewImageService(),
		sem:          semaphore.NewWeighted(int64(limit)),
		limit:        limit,
		onProgress:   onProgress,
		sleep:        sleepContext,
	}
}

// Thumbnail returns the album cover rendered at the configured thumbnail size.
func (l *Loader) Thumbnail(ctx context.Context, album model.Album) (string, error) {
	return l.ThumbnailSized(ctx, album, l.settings.CoverThumbWidth, l.settings.CoverThumbHeight)
}

// ThumbnailSized returns the album cover rendered as cols x rows cells.
func (l *Loader) ThumbnailSized(ctx context.Context, album model.Album, cols, rows int) (string, error) {
	if !album.HasCover() {
		return "", ErrNoCover
	}

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	data, err := l.coverBytes(ctx, album)
	l.sem.Release(1)
	if err != nil {
		return "", err
	}

	return l.imageService.RenderThumbnail(ctx, data, cols, rows)
}

// Prefetch downloads every album cover into the cache.
//
// Failures of individual covers are reported through the progress callback
// and do not stop the others; only cancellation is returned as an error.
func (l *Loader) Prefetch(ctx context.Context, albums []model.Album) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for _, album := range albums {
		if !album.HasCover() {
			continue
		}
		g.Go(func() error {
			if _, err := l.coverBytes(ctx, album); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return nil // Continue with other covers
			}
			return nil
		})
	}

	return g.Wait()
}

// GetProgress returns how many covers were downloaded, served from cache, and failed.
func (l *Loader) GetProgress() (fetched, cached, failed int32) {
	return atomic.LoadInt32(&l.fetched), atomic.LoadInt32(&l.cached), atomic.LoadInt32(&l.failed)
}

// coverBytes returns the normalized JPEG cover, from cache when possible.
func (l *Loader) coverBytes(ctx context.Context, album model.Album) ([]byte, error) {
	name := album.CoverFileName()
	if data, ok := l.cache.Read(ctx, name); ok {
		atomic.AddInt32(&l.cached, 1)
		l.progress(ProgressEvent{Message: fmt.Sprintf("Cover for %q served from cache", album.Title), Level: LevelVerbose, AlbumID: album.ID})
		return data, nil
	}

	raw, err := l.download(ctx, album)
	if err != nil {
		atomic.AddInt32(&l.failed, 1)
		l.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading cover for %q", album.Title), Level: LevelError, AlbumID: album.ID, Err: err})
		return nil, err
	}

	data, err := l.imageService.ResizeImage(ctx, raw, maxCachedCoverSize, maxCachedCoverSize)
	if err != nil {
		atomic.AddInt32(&l.failed, 1)
		l.progress(ProgressEvent{Message: fmt.Sprintf("Cover for %q is not a usable image", album.Title), Level: LevelError, AlbumID: album.ID, Err: err})
		return nil, fmt.Errorf("decode cover for album %d: %w", album.ID, err)
	}
	atomic.AddInt32(&l.fetched, 1)

	if l.cache.Enabled() {
		if err := l.cache.Write(ctx, name, data); err != nil {
			l.progress(ProgressEvent{Message: fmt.Sprintf("Error caching cover for %q", album.Title), Level: LevelWarning, AlbumID: album.ID, Err: err})
		}
	}

	l.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded cover for %q", album.Title), Level: LevelVerbose, AlbumID: album.ID})
	return data, nil
}

func (l *Loader) download(ctx context.Context, album model.Album) ([]byte, error) {
	var data []byte
	var err error

	maxRetries := l.settings.DownloadMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for tries := 0; tries < maxRetries; tries++ {
		data, err = l.fetcher.FetchCover(ctx, album)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if tries+1 < maxRetries {
			l.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for cover of %q", tries+1, maxRetries, album.Title), Level: LevelWarning, AlbumID: album.ID, Err: err})
			l.sleep(ctx, l.settings.RetryCooldown(tries))
		}
	}

	return nil, err
}

func (l *Loader) progress(event ProgressEvent) {
	if l.onProgress != nil {
		l.onProgress(event)
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
