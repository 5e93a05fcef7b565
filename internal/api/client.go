package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/albums-tui/internal/api/dto"
	"github.com/handiism/albums-tui/internal/http"
	"github.com/handiism/albums-tui/internal/model"
)

// ErrNotFound is returned when the requested album does not exist.
var ErrNotFound = errors.New("album not found")

// Client talks to the album API.
//
// It is the data-source boundary of the application: the UI only ever sees
// model types and errors, never HTTP details.
//
// Example usage:
//
//	client, err := api.NewClient("https://photos.example.com/api", httpClient)
//	albums, err := client.FetchAlbums(ctx)
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchAlbums retrieves the full album collection of the current session,
// in the order the service returns it.
func (c *Client) FetchAlbums(ctx context.Context) ([]model.Album, error) {
	var out []dto.JSONAlbum
	if err := c.http.GetJSON(ctx, c.endpoint("albums"), &out); err != nil {
		return nil, fmt.Errorf("fetch albums: %w", err)
	}
	return dto.ToAlbums(out), nil
}

// FetchAlbum retrieves a single album. It returns ErrNotFound for unknown IDs.
func (c *Client) FetchAlbum(ctx context.Context, id int64) (model.Album, error) {
	var out dto.JSONAlbum
	if err := c.http.GetJSON(ctx, c.endpoint("albums", strconv.FormatInt(id, 10)), &out); err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == 404 {
			return model.Album{}, fmt.Errorf("fetch album %d: %w", id, ErrNotFound)
		}
		return model.Album{}, fmt.Errorf("fetch album %d: %w", id, err)
	}
	return out.ToAlbum(), nil
}

// CreateAlbum creates a new album and returns it as stored by the service.
//
// The request is validated first; invalid requests never reach the network.
func (c *Client) CreateAlbum(ctx context.Context, req model.NewAlbum) (model.Album, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return model.Album{}, err
	}

	var out dto.JSONAlbum
	if err := c.http.PostJSON(ctx, c.endpoint("albums"), dto.FromNewAlbum(req), &out); err != nil {
		return model.Album{}, fmt.Errorf("create album: %w", err)
	}
	return out.ToAlbum(), nil
}

// FetchCover downloads the cover image referenced by the album.
func (c *Client) FetchCover(ctx context.Context, album model.Album) ([]byte, error) {
	if !album.HasCover() {
		return nil, fmt.Errorf("album %d has no cover", album.ID)
	}
	coverURL, err := c.ResolveCoverURL(album.CoverImage)
	if err != nil {
		return nil, err
	}
	data, err := c.http.DownloadBytes(ctx, coverURL)
	if err != nil {
		return nil, fmt.Errorf("fetch cover for album %d: %w", album.ID, err)
	}
	return data, nil
}

// ResolveCoverURL turns a cover reference into an absolute URL.
//
// Absolute references are returned unchanged; relative ones are resolved
// against the API host:
//
//	// base https://photos.example.com/api
//	c.ResolveCoverURL("/uploads/a.jpg") // "https://photos.example.com/uploads/a.jpg"
func (c *Client) ResolveCoverURL(ref string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("parse cover reference %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

func (c *Client) endpoint(segments ...string) string {
	return c.baseURL.JoinPath(segments...).String()
}
