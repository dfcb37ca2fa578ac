package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRe = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// ParseISODuration turns an ISO 8601 video duration such as PT1H2M3S into
// "1:02:03", or "4:05" when there are no hours. Unknown input yields "".
func ParseISODuration(duration string) string {
	if duration == "" {
		return ""
	}
	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return ""
	}

	hours := leadingInt(m[1])
	minutes := leadingInt(m[2])
	seconds := leadingInt(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func leadingInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimRight(s, "HMS"))
	return n
}

// FormatViewCount renders a raw view count as "1.2M views", "3.4K views"
// or "12 views".
func FormatViewCount(viewCount string) string {
	count, err := strconv.ParseInt(strings.TrimSpace(viewCount), 10, 64)
	if err != nil || count <= 0 {
		return "0 views"
	}
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	}
	return fmt.Sprintf("%d views", count)
}

// WatchURL returns the public watch page for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// EmbedURL returns the autoplaying embed URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id + "?autoplay=1&rel=0&modestbranding=1"
}
