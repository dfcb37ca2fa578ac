package youtube

// Thumbnails holds the image URLs YouTube returns per size.
type Thumbnails struct {
	Default string `json:"default,omitempty"`
	Medium  string `json:"medium,omitempty"`
	High    string `json:"high,omitempty"`
	Maxres  string `json:"maxres,omitempty"`
}

// Video is a search hit or a fully detailed video, as served to clients.
type Video struct {
	ID           string     `json:"id"`
	Type         string     `json:"type,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnail    Thumbnails `json:"thumbnail"`
	ChannelTitle string     `json:"channelTitle"`
	ChannelID    string     `json:"channelId"`
	PublishedAt  string     `json:"publishedAt"`
	URL          string     `json:"url"`
	EmbedURL     string     `json:"embedUrl"`

	// Populated for video details and trending only.
	Duration           string `json:"duration,omitempty"`
	ViewCount          string `json:"viewCount,omitempty"`
	LikeCount          string `json:"likeCount,omitempty"`
	CommentCount       string `json:"commentCount,omitempty"`
	FormattedDuration  string `json:"formattedDuration,omitempty"`
	FormattedViewCount string `json:"formattedViewCount,omitempty"`
}

// Result sources.
const (
	SourceAPI  = "youtube_api"
	SourceDemo = "demo_data"
)

// SearchParams are the inputs of a search.
type SearchParams struct {
	Query      string
	MaxResults int
	Type       string
}

// SearchResult is a page of search hits.
type SearchResult struct {
	Items          []Video
	TotalResults   int
	ResultsPerPage int
	Source         string
	Note           string
}

// TrendingParams are the inputs of a most-popular chart lookup.
type TrendingParams struct {
	MaxResults int
	CategoryID string
	RegionCode string
}

// Raw API payloads.

type apiThumbnail struct {
	URL string `json:"url"`
}

type apiSnippet struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Thumbnails   map[string]apiThumbnail `json:"thumbnails"`
	ChannelTitle string                  `json:"channelTitle"`
	ChannelID    string                  `json:"channelId"`
	PublishedAt  string                  `json:"publishedAt"`
}

type apiPageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

type apiSearchItem struct {
	ID struct {
		Kind       string `json:"kind"`
		VideoID    string `json:"videoId"`
		ChannelID  string `json:"channelId"`
		PlaylistID string `json:"playlistId"`
	} `json:"id"`
	Snippet apiSnippet `json:"snippet"`
}

type apiSearchResponse struct {
	Items    []apiSearchItem `json:"items"`
	PageInfo apiPageInfo     `json:"pageInfo"`
}

type apiVideoItem struct {
	ID             string     `json:"id"`
	Snippet        apiSnippet `json:"snippet"`
	ContentDetails *struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics *struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type apiVideosResponse struct {
	Items    []apiVideoItem `json:"items"`
	PageInfo apiPageInfo    `json:"pageInfo"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
