package domain

import "regexp"

// videoIDPatterns are tried in order; the first match wins.
// Each captures everything after the marker up to the next '&', '?' or '/'.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&?/]+)`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([^&?/]+)`),
	regexp.MustCompile(`(?:youtube\.com/v/)([^&?/]+)`),
}

// ExtractVideoID returns the video identifier embedded in a YouTube URL.
// Supported forms are watch?v=, youtu.be/, /embed/ and /v/.
// The boolean is false when no pattern matches.
func ExtractVideoID(rawURL string) (VideoID, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) == 2 {
			return VideoID(m[1]), true
		}
	}

	return "", false
}
