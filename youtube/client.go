// Package youtube proxies the YouTube Data API v3 search, video and
// most-popular endpoints, falling back to a static demo dataset for search
// when the API is unavailable.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"ourlove/logging"
)

const (
	DefaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	DefaultMaxResults = 10
	MaxResultsLimit   = 50
	DefaultRegionCode = "US"
	DefaultTimeout    = 10 * time.Second
)

var (
	ErrNoAPIKey      = errors.New("youtube API key not configured")
	ErrEmptyQuery    = errors.New("search query is required")
	ErrMissingID     = errors.New("video ID is required")
	ErrNotFound      = errors.New("video not found")
	ErrQuotaExceeded = errors.New("youtube API quota exceeded or invalid API key")
	ErrUpstream      = errors.New("youtube API request failed")
)

// APIError is a non-2xx answer from the YouTube API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("youtube API error: %d", e.Status)
	}
	return fmt.Sprintf("youtube API error: %d %s", e.Status, e.Message)
}

// Unwrap maps the status onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusForbidden:
		return ErrQuotaExceeded
	case http.StatusNotFound:
		return ErrNotFound
	}
	return ErrUpstream
}

// Config configures a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client calls the YouTube Data API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient returns a client for cfg, filling in defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
		logger:  cfg.Logger,
	}
}

// HasAPIKey reports whether live API calls are possible.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// ClampMaxResults applies the default and the upper limit.
func ClampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsLimit {
		return MaxResultsLimit
	}
	return n
}

// Search queries the live search endpoint.
func (c *Client) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	query := strings.TrimSpace(p.Query)
	if query == "" {
		return SearchResult{}, ErrEmptyQuery
	}
	if !c.HasAPIKey() {
		return SearchResult{}, ErrNoAPIKey
	}
	kind := p.Type
	if kind == "" {
		kind = "video"
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", kind)
	params.Set("maxResults", strconv.Itoa(ClampMaxResults(p.MaxResults)))
	params.Set("order", "relevance")
	params.Set("safeSearch", "moderate")

	var resp apiSearchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return SearchResult{}, err
	}

	items := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, searchItemToVideo(item))
	}
	return SearchResult{
		Items:          items,
		TotalResults:   resp.PageInfo.TotalResults,
		ResultsPerPage: resp.PageInfo.ResultsPerPage,
		Source:         SourceAPI,
	}, nil
}

// SearchWithFallback runs Search and answers from the demo dataset when the
// live API cannot be used for any reason other than an empty query.
func (c *Client) SearchWithFallback(ctx context.Context, p SearchParams) (SearchResult, error) {
	result, err := c.Search(ctx, p)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, ErrEmptyQuery) {
		return SearchResult{}, err
	}

	c.logger.Info("youtube API not available, using demo data",
		zap.String("query", p.Query),
		zap.Error(err))
	return DemoSearch(p.Query, p.MaxResults), nil
}

// Video returns the details of one video.
func (c *Client) Video(ctx context.Context, id string) (Video, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Video{}, ErrMissingID
	}
	if !c.HasAPIKey() {
		return Video{}, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", id)

	var resp apiVideosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return Video{}, err
	}
	if len(resp.Items) == 0 {
		return Video{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return videoItemToVideo(resp.Items[0]), nil
}

// Trending returns the most popular videos for a region.
func (c *Client) Trending(ctx context.Context, p TrendingParams) (SearchResult, error) {
	if !c.HasAPIKey() {
		return SearchResult{}, ErrNoAPIKey
	}
	region := p.RegionCode
	if region == "" {
		region = DefaultRegionCode
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("chart", "mostPopular")
	params.Set("maxResults", strconv.Itoa(ClampMaxResults(p.MaxResults)))
	params.Set("regionCode", region)
	if p.CategoryID != "" {
		params.Set("videoCategoryId", p.CategoryID)
	}

	var resp apiVideosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return SearchResult{}, err
	}

	items := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, videoItemToVideo(item))
	}
	return SearchResult{
		Items:          items,
		TotalResults:   resp.PageInfo.TotalResults,
		ResultsPerPage: resp.PageInfo.ResultsPerPage,
		Source:         SourceAPI,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrUpstream, err)
	}

	c.logger.Debug("youtube API call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload apiErrorResponse
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}

func thumbnailsFrom(s apiSnippet) Thumbnails {
	return Thumbnails{
		Default: s.Thumbnails["default"].URL,
		Medium:  s.Thumbnails["medium"].URL,
		High:    s.Thumbnails["high"].URL,
		Maxres:  s.Thumbnails["maxres"].URL,
	}
}

func searchItemToVideo(item apiSearchItem) Video {
	id := item.ID.VideoID
	if id == "" {
		id = item.ID.ChannelID
	}
	if id == "" {
		id = item.ID.PlaylistID
	}
	kind := strings.TrimPrefix(item.ID.Kind, "youtube#")
	if kind == "" {
		kind = "video"
	}

	return Video{
		ID:           id,
		Type:         kind,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    thumbnailsFrom(item.Snippet),
		ChannelTitle: item.Snippet.ChannelTitle,
		ChannelID:    item.Snippet.ChannelID,
		PublishedAt:  item.Snippet.PublishedAt,
		URL:          WatchURL(id),
		EmbedURL:     EmbedURL(id),
	}
}

func videoItemToVideo(item apiVideoItem) Video {
	v := Video{
		ID:           item.ID,
		Type:         "video",
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    thumbnailsFrom(item.Snippet),
		ChannelTitle: item.Snippet.ChannelTitle,
		ChannelID:    item.Snippet.ChannelID,
		PublishedAt:  item.Snippet.PublishedAt,
		URL:          WatchURL(item.ID),
		EmbedURL:     EmbedURL(item.ID),
	}
	if item.ContentDetails != nil {
		v.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		v.ViewCount = item.Statistics.ViewCount
		v.LikeCount = item.Statistics.LikeCount
		v.CommentCount = item.Statistics.CommentCount
	}
	v.FormattedDuration = ParseISODuration(v.Duration)
	v.FormattedViewCount = FormatViewCount(v.ViewCount)
	return v
}
