// Package covers fetches album cover images and turns them into terminal
// thumbnails.
//
// # Loader
//
// The Loader coordinates cover retrieval:
//
//  1. Look the cover up in the on-disk cache
//  2. Download it from the album API, retrying with exponential backoff
//  3. Normalize it to a bounded JPEG and store it in the cache
//  4. Render it as a block of half-block characters
//
// # Basic Usage
//
//	loader := covers.NewLoader(settings, apiClient, cache, func(event covers.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	// One thumbnail, e.g. from a Bubble Tea command
//	thumb, err := loader.Thumbnail(ctx, album)
//
//	// Warm the cache for a whole list
//	err := loader.Prefetch(ctx, albums)
//
// # Concurrency
//
// Both Thumbnail and Prefetch honour MaxConcurrentCoverDownloads. Thumbnail
// calls share a weighted semaphore, so any number of callers may run at once
// while at most that many downloads are in flight; Prefetch uses an errgroup
// with the same limit.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent.
// GetProgress returns the running counters.
package covers
