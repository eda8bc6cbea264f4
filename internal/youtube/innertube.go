package youtube

import "regexp"

// Innertube constants, low-level request and response shapes.

const (
	playerPath       = "/youtubei/v1/player"
	watchPath        = "/watch"
	androidVersion   = "20.10.38"
	androidUserAgent = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
	chromeUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	consentFormMarker = `action="https://consent.youtube.com/s"`
	recaptchaMarker   = `class="g-recaptcha"`
	poTokenMarker     = "&exp=xpe"
)

var (
	apiKeyRE       = regexp.MustCompile(`"INNERTUBE_API_KEY":\s*"([a-zA-Z0-9_-]+)"`)
	consentValueRE = regexp.MustCompile(`name="v" value="(.*?)"`)
)

type playerRequest struct {
	Context playerContext `json:"context"`
	VideoID string        `json:"videoId"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

func newPlayerRequest(videoID string) playerRequest {
	return playerRequest{
		Context: playerContext{Client: playerClient{ClientName: "ANDROID", ClientVersion: androidVersion}},
		VideoID: videoID,
	}
}

type playerResponse struct {
	PlayabilityStatus *playabilityStatus `json:"playabilityStatus"`
	Captions          *struct {
		Renderer *struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type playabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type captionTrack struct {
	BaseURL        string      `json:"baseUrl"`
	Name           captionName `json:"name"`
	LanguageCode   string      `json:"languageCode"`
	Kind           string      `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool        `json:"isTranslatable"`
}

type captionName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n captionName) String() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	if len(n.Runs) > 0 {
		return n.Runs[0].Text
	}
	return ""
}
