package youtube

import "strings"

// DemoNote explains why demo results were served.
const DemoNote = "YouTube API not available. Enable YouTube Data API v3 in Google Cloud Console for live search."

func demoVideo(id, title, description, channelTitle, channelID, publishedAt string) Video {
	return Video{
		ID:          id,
		Type:        "video",
		Title:       title,
		Description: description,
		Thumbnail: Thumbnails{
			Default: "https://i.ytimg.com/vi/" + id + "/default.jpg",
			Medium:  "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg",
			High:    "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg",
		},
		ChannelTitle: channelTitle,
		ChannelID:    channelID,
		PublishedAt:  publishedAt,
		URL:          WatchURL(id),
		EmbedURL:     EmbedURL(id),
	}
}

var demoVideos = []Video{
	demoVideo("dQw4w9WgXcQ", "Rick Astley - Never Gonna Give You Up (Official Video)",
		"The official video for 'Never Gonna Give You Up' by Rick Astley...",
		"Rick Astley", "UCuAXFkgsw1L7xaCfnd5JJOw", "2009-10-25T06:57:33Z"),
	demoVideo("9bZkp7q19f0", "PSY - GANGNAM STYLE (강남스타일) M/V",
		"PSY - GANGNAM STYLE official music video...",
		"officialpsy", "UCrDkAvF9ZkmwbKNlYtQ7cFA", "2012-07-15T08:34:21Z"),
	demoVideo("kJQP7kiw5Fk", "Luis Fonsi - Despacito ft. Daddy Yankee",
		"Despacito by Luis Fonsi featuring Daddy Yankee...",
		"LuisFonsiVEVO", "UCJrOtniJ0-NY4bcRiAx0E2A", "2017-01-12T18:30:00Z"),
	demoVideo("JGwWNGJdvx8", "Ed Sheeran - Shape of You (Official Video)",
		"Ed Sheeran's official music video for 'Shape of You'...",
		"Ed Sheeran", "UC0C-w0YjGpqDXGB8IHb662A", "2017-01-30T10:53:17Z"),
	demoVideo("hTWKbfoikeg", "Nirvana - Smells Like Teen Spirit (Official Music Video)",
		"Official Music Video for Smells Like Teen Spirit performed by Nirvana...",
		"NirvanaVEVO", "UCDMZlIIJZplFWwIYWG8QqiQ", "2013-07-16T17:00:07Z"),
	demoVideo("YQHsXMglC9A", "Adele - Hello (Official Music Video)",
		"Adele's official music video for 'Hello'...",
		"AdeleVEVO", "UComP_epzeKzvBX156r6pm1Q", "2015-10-22T15:00:00Z"),
}

// DemoVideos returns a copy of the static fallback dataset.
func DemoVideos() []Video {
	out := make([]Video, len(demoVideos))
	copy(out, demoVideos)
	return out
}

// DemoSearch filters the demo dataset by title, description or channel.
// When nothing matches, the whole dataset is returned. At most maxResults
// items are kept; TotalResults counts the matches before truncation.
func DemoSearch(query string, maxResults int) SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))

	var matches []Video
	for _, v := range demoVideos {
		if strings.Contains(strings.ToLower(v.Title), term) ||
			strings.Contains(strings.ToLower(v.Description), term) ||
			strings.Contains(strings.ToLower(v.ChannelTitle), term) {
			matches = append(matches, v)
		}
	}
	if len(matches) == 0 {
		matches = DemoVideos()
	}

	total := len(matches)
	limit := ClampMaxResults(maxResults)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return SearchResult{
		Items:          matches,
		TotalResults:   total,
		ResultsPerPage: total,
		Source:         SourceDemo,
		Note:           DemoNote,
	}
}
