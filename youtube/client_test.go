package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{
  "pageInfo": {"totalResults": 1000, "resultsPerPage": 2},
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "vid1"},
      "snippet": {
        "title": "Perfect",
        "description": "Ed Sheeran",
        "thumbnails": {"default": {"url": "d.jpg"}, "high": {"url": "h.jpg"}},
        "channelTitle": "Ed Sheeran",
        "channelId": "chan1",
        "publishedAt": "2017-11-09T11:00:00Z"
      }
    },
    {
      "id": {"kind": "youtube#playlist", "playlistId": "pl1"},
      "snippet": {"title": "Love songs", "thumbnails": {}}
    }
  ]
}`

const videoPayload = `{
  "items": [
    {
      "id": "vid1",
      "snippet": {"title": "Perfect", "thumbnails": {"maxres": {"url": "m.jpg"}}},
      "contentDetails": {"duration": "PT4M40S"},
      "statistics": {"viewCount": "3800000000", "likeCount": "21000000", "commentCount": "900000"}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "perfect", q.Get("q"))
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "50", q.Get("maxResults"))
		assert.Equal(t, "relevance", q.Get("order"))
		assert.Equal(t, "moderate", q.Get("safeSearch"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	})

	result, err := client.Search(context.Background(), SearchParams{Query: "  perfect ", MaxResults: 500})
	require.NoError(t, err)

	assert.Equal(t, SourceAPI, result.Source)
	assert.Equal(t, 1000, result.TotalResults)
	assert.Equal(t, 2, result.ResultsPerPage)
	require.Len(t, result.Items, 2)

	first := result.Items[0]
	assert.Equal(t, "vid1", first.ID)
	assert.Equal(t, "video", first.Type)
	assert.Equal(t, "d.jpg", first.Thumbnail.Default)
	assert.Equal(t, "h.jpg", first.Thumbnail.High)
	assert.Empty(t, first.Thumbnail.Medium)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", first.URL)

	second := result.Items[1]
	assert.Equal(t, "pl1", second.ID)
	assert.Equal(t, "playlist", second.Type)
}

func TestSearchValidation(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	_, err := client.Search(context.Background(), SearchParams{Query: "   "})
	assert.True(t, errors.Is(err, ErrEmptyQuery))

	keyless := NewClient(Config{})
	_, err = keyless.Search(context.Background(), SearchParams{Query: "love"})
	assert.True(t, errors.Is(err, ErrNoAPIKey))
}

func TestSearchWithFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "API not enabled"}}`))
	})

	result, err := client.SearchWithFallback(context.Background(), SearchParams{Query: "adele", MaxResults: 5})
	require.NoError(t, err)
	assert.Equal(t, SourceDemo, result.Source)
	assert.Equal(t, DemoNote, result.Note)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "YQHsXMglC9A", result.Items[0].ID)

	_, err = client.SearchWithFallback(context.Background(), SearchParams{Query: ""})
	assert.True(t, errors.Is(err, ErrEmptyQuery))
}

func TestVideo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "snippet,statistics,contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "vid1", r.URL.Query().Get("id"))
		w.Write([]byte(videoPayload))
	})

	v, err := client.Video(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "Perfect", v.Title)
	assert.Equal(t, "PT4M40S", v.Duration)
	assert.Equal(t, "4:40", v.FormattedDuration)
	assert.Equal(t, "3800.0M views", v.FormattedViewCount)
	assert.Equal(t, "21000000", v.LikeCount)
	assert.Equal(t, "m.jpg", v.Thumbnail.Maxres)
	assert.Equal(t, "https://www.youtube.com/embed/vid1?autoplay=1&rel=0&modestbranding=1", v.EmbedURL)
}

func TestVideoErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"no items", http.StatusOK, `{"items": []}`, ErrNotFound},
		{"quota", http.StatusForbidden, `{"error": {"code": 403, "message": "quotaExceeded"}}`, ErrQuotaExceeded},
		{"not found", http.StatusNotFound, ``, ErrNotFound},
		{"server error", http.StatusInternalServerError, `oops`, ErrUpstream},
		{"bad json", http.StatusOK, `{`, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := client.Video(context.Background(), "x")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Status: 403, Message: "quotaExceeded"}
	assert.Equal(t, "youtube API error: 403 quotaExceeded", err.Error())
	assert.Equal(t, "youtube API error: 500", (&APIError{Status: 500}).Error())
}

func TestTrending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "mostPopular", q.Get("chart"))
		assert.Equal(t, "snippet,statistics", q.Get("part"))
		assert.Equal(t, "US", q.Get("regionCode"))
		assert.Equal(t, "10", q.Get("maxResults"))
		assert.Equal(t, "10", q.Get("videoCategoryId"))
		w.Write([]byte(videoPayload))
	})

	result, err := client.Trending(context.Background(), TrendingParams{CategoryID: "10"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "3800.0M views", result.Items[0].FormattedViewCount)
}

func TestTrendingWithoutKey(t *testing.T) {
	_, err := NewClient(Config{}).Trending(context.Background(), TrendingParams{})
	assert.True(t, errors.Is(err, ErrNoAPIKey))
}

func TestClampMaxResults(t *testing.T) {
	assert.Equal(t, DefaultMaxResults, ClampMaxResults(0))
	assert.Equal(t, DefaultMaxResults, ClampMaxResults(-3))
	assert.Equal(t, 7, ClampMaxResults(7))
	assert.Equal(t, MaxResultsLimit, ClampMaxResults(51))
}
