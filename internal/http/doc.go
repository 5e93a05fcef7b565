// Package http provides an HTTP client configured for album API requests.
//
// The Client in this package handles:
//   - User-Agent and bearer token headers
//   - Request IDs for correlating client and server logs
//   - JSON encoding and decoding
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(http.Options{Token: token})
//
//	// Fetch JSON
//	var out []dto.JSONAlbum
//	err := client.GetJSON(ctx, "https://photos.example.com/api/albums", &out)
//
//	// Download a cover image
//	data, err := client.DownloadBytes(ctx, coverURL)
//
// # Errors
//
// Non-2xx responses are reported as *StatusError so callers can branch on
// the status code:
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.Code == 404 {
//	    // not found
//	}
package http
