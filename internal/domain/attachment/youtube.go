package attachment

import (
	"fmt"
	"regexp"
)

// URL shapes accepted for youtube boards; first capture group is the video id.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?]+)`),
}

// YouTubeVideoID extracts the video identifier from the known URL shapes.
// An unrecognized URL yields "", never an error.
func YouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// YouTubeThumbnailURL builds the fixed-template thumbnail URL for a video id.
func YouTubeThumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}
