package api

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/handiism/albums-tui/internal/http"
	"github.com/handiism/albums-tui/internal/model"
)

const albumsJSON = `[
	{"id":1,"title":"Trip","description":"Beach","coverImage":"/uploads/1.jpg",
	 "createdAt":"2024-05-01T10:00:00Z","updatedAt":"2024-05-02T08:30:00.250Z","isShared":true},
	{"id":2,"title":"Party","description":null,"coverImage":null,
	 "createdAt":"2024-06-01 18:00:00","updatedAt":"","isShared":false}
]`

func newTestClient(t *testing.T, handler nethttp.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/api", http.NewClient(http.Options{}))
	require.NoError(t, err)
	return client
}

func TestFetchAlbums_PreservesOrderAndDecodes(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, "/api/albums", r.URL.Path)
		_, _ = w.Write([]byte(albumsJSON))
	}))

	albums, err := client.FetchAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 2)

	require.Equal(t, "Trip", albums[0].Title)
	require.Equal(t, "Party", albums[1].Title)
	require.True(t, albums[0].IsShared)
	require.Equal(t, "/uploads/1.jpg", albums[0].CoverImage)
	require.True(t, albums[0].UpdatedAt.Equal(time.Date(2024, 5, 2, 8, 30, 0, 250_000_000, time.UTC)), "UpdatedAt = %v", albums[0].UpdatedAt)

	require.Empty(t, albums[1].Description)
	require.False(t, albums[1].HasCover())
	require.True(t, albums[1].CreatedAt.Equal(time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)), "CreatedAt = %v", albums[1].CreatedAt)
	require.True(t, albums[1].UpdatedAt.IsZero())
}

func TestFetchAlbums_Empty(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	albums, err := client.FetchAlbums(context.Background())
	require.NoError(t, err)
	require.Empty(t, albums)
}

func TestFetchAlbums_ServerError(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "boom", nethttp.StatusInternalServerError)
	}))

	_, err := client.FetchAlbums(context.Background())
	require.Error(t, err)

	var statusErr *http.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 500, statusErr.Code)
}

func TestFetchAlbums_MalformedBody(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"albums":`))
	}))

	_, err := client.FetchAlbums(context.Background())
	require.Error(t, err)
}

func TestFetchAlbum_NotFound(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, "/api/albums/42", r.URL.Path)
		nethttp.NotFound(w, r)
	}))

	_, err := client.FetchAlbum(context.Background(), 42)
	require.True(t, errors.Is(err, ErrNotFound), "error = %v", err)
}

func TestFetchAlbum(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"id":7,"title":"Snow","isShared":true}`))
	}))

	album, err := client.FetchAlbum(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, model.Album{ID: 7, Title: "Snow", IsShared: true}, album)
}

func TestCreateAlbum(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, nethttp.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Trip", body["title"])
		require.Equal(t, "Beach", body["description"])
		require.Equal(t, true, body["isShared"])

		w.WriteHeader(nethttp.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"title":"Trip","description":"Beach","isShared":true}`))
	}))

	album, err := client.CreateAlbum(context.Background(), model.NewAlbum{Title: " Trip ", Description: "Beach", IsShared: true})
	require.NoError(t, err)
	require.Equal(t, int64(3), album.ID)
}

func TestCreateAlbum_InvalidNeverHitsNetwork(t *testing.T) {
	var calls int32
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	_, err := client.CreateAlbum(context.Background(), model.NewAlbum{Title: "  "})
	require.ErrorIs(t, err, model.ErrTitleRequired)
	require.Zero(t, atomic.LoadInt32(&calls))
}

func TestFetchCover_ResolvesRelativeReference(t *testing.T) {
	client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, "/uploads/1.jpg", r.URL.Path)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))

	data, err := client.FetchCover(context.Background(), model.Album{ID: 1, CoverImage: "/uploads/1.jpg"})
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))

	_, err = client.FetchCover(context.Background(), model.Album{ID: 2})
	require.Error(t, err)
}

func TestResolveCoverURL_Absolute(t *testing.T) {
	client, err := NewClient("https://photos.example.com/api", http.NewClient(http.Options{}))
	require.NoError(t, err)

	got, err := client.ResolveCoverURL("https://cdn.example.com/c.png")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/c.png", got)

	got, err = client.ResolveCoverURL("/uploads/a.jpg")
	require.NoError(t, err)
	require.Equal(t, "https://photos.example.com/uploads/a.jpg", got)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient("localhost:8080", http.NewClient(http.Options{}))
	require.Error(t, err)
}
