package transcript

import (
	"encoding/xml"
	"html"
	"strings"
)

// playerResponse is the subset of the watch page's ytInitialPlayerResponse
// needed to locate caption tracks.
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// tracks returns the caption tracks, or nil when the video has none.
func (p *playerResponse) tracks() []captionTrack {
	if p.Captions == nil {
		return nil
	}

	return p.Captions.Renderer.CaptionTracks
}

// captionTrack is one available caption language.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated captions
}

// needsPoToken reports whether the track can only be fetched by a browser.
func (t captionTrack) needsPoToken() bool {
	return strings.Contains(t.BaseURL, "&exp=xpe")
}

// timedText is the timedtext XML caption document.
type timedText struct {
	XMLName xml.Name   `xml:"transcript"`
	Lines   []textLine `xml:"text"`
}

// textLine is a single caption fragment.
type textLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// fragments returns the cleaned caption texts in document order.
// Caption text is HTML-escaped inside the XML, so entities are decoded twice.
func (t *timedText) fragments() []string {
	out := make([]string, 0, len(t.Lines))
	for _, line := range t.Lines {
		text := strings.Join(strings.Fields(html.UnescapeString(line.Text)), " ")
		if text != "" {
			out = append(out, text)
		}
	}

	return out
}
