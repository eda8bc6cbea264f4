package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
	"research-blender-api/internal/transcript"
)

// Response size caps.
const (
	maxWatchPageBytes = 6 * 1024 * 1024
	maxPlayerBytes    = 3 * 1024 * 1024
	maxTimedTextBytes = 2 * 1024 * 1024
	maxErrorBodyBytes = 256
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the YouTube origin. Default: https://www.youtube.com
	BaseURL string
	// Timeout bounds each outbound HTTP request. Default: 30s
	Timeout time.Duration
	// AcceptLanguage is sent with every request. Default: en-US
	AcceptLanguage string
	// Retry configures retries of transient failures. MaxRetries of zero
	// disables retrying.
	Retry RetryConfig
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// DefaultConfig returns sensible defaults for talking to youtube.com.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://www.youtube.com",
		Timeout:        30 * time.Second,
		AcceptLanguage: "en-US",
		Retry:          DefaultRetryConfig(),
	}
}

// Client is a transcript.Provider backed by YouTube. It is safe for
// concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	acceptLanguage string
	retry          RetryConfig
}

var _ transcript.Provider = (*Client)(nil)

// NewClient creates a client. Zero fields in cfg take their defaults.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = def.AcceptLanguage
	}
	if cfg.Retry.InitialBackoff <= 0 {
		cfg.Retry.InitialBackoff = def.Retry.InitialBackoff
	}
	if cfg.Retry.MaxBackoff <= 0 {
		cfg.Retry.MaxBackoff = def.Retry.MaxBackoff
	}
	if cfg.Retry.MaxRetries < 0 {
		cfg.Retry.MaxRetries = 0
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		}
	}

	return &Client{
		httpClient:     hc,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		acceptLanguage: cfg.AcceptLanguage,
		retry:          cfg.Retry,
	}
}

// List returns the caption tracks of a video: manually created tracks
// first, then auto-generated ones, each group in YouTube's order.
func (c *Client) List(ctx context.Context, videoID string) ([]transcript.Track, error) {
	page, err := c.watchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	m := apiKeyRE.FindStringSubmatch(page)
	if m == nil {
		if strings.Contains(page, recaptchaMarker) {
			return nil, ErrRequestBlocked
		}
		return nil, ErrAPIKeyNotFound
	}

	player, err := c.player(ctx, videoID, m[1])
	if err != nil {
		return nil, err
	}

	if err := checkPlayability(videoID, player.PlayabilityStatus); err != nil {
		return nil, err
	}

	if player.Captions == nil || player.Captions.Renderer == nil || player.Captions.Renderer.CaptionTracks == nil {
		return nil, ErrTranscriptsDisabled
	}

	var manual, generated []transcript.Track
	for _, ct := range player.Captions.Renderer.CaptionTracks {
		t := transcript.Track{
			VideoID:        videoID,
			LanguageCode:   ct.LanguageCode,
			Language:       ct.Name.String(),
			IsGenerated:    ct.Kind == "asr",
			IsTranslatable: ct.IsTranslatable,
			BaseURL:        strings.Replace(ct.BaseURL, "&fmt=srv3", "", 1),
		}
		if t.IsGenerated {
			generated = append(generated, t)
		} else {
			manual = append(manual, t)
		}
	}

	tracks := append(manual, generated...)
	logging.Debug("youtube: %s has %d caption tracks (%d manual)", videoID, len(tracks), len(manual))
	return tracks, nil
}

// Fetch returns the segments of the first track matching languages, tried
// in order; for each language a manually created track wins over an
// auto-generated one.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string) ([]transcript.Segment, error) {
	tracks, err := c.List(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := findTrack(tracks, languages)
	if !ok {
		available := make([]string, 0, len(tracks))
		for _, t := range tracks {
			code := t.LanguageCode
			if t.IsGenerated {
				code += " (generated)"
			}
			available = append(available, code)
		}
		return nil, &NoTranscriptFoundError{VideoID: videoID, Requested: languages, Available: available}
	}

	return c.FetchTrack(ctx, track)
}

// FetchTrack downloads and parses the timedtext of a listed track.
func (c *Client) FetchTrack(ctx context.Context, track transcript.Track) ([]transcript.Segment, error) {
	if strings.Contains(track.BaseURL, poTokenMarker) {
		return nil, ErrPoTokenRequired
	}

	resp, err := c.do(ctx, metrics.OpTimedText, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
		if err != nil {
			return nil, err
		}
		c.setBrowserHeaders(req)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readOK(resp, metrics.OpTimedText, maxTimedTextBytes)
	if err != nil {
		return nil, err
	}

	return parseTimedText(body)
}

func findTrack(tracks []transcript.Track, languages []string) (transcript.Track, bool) {
	for _, lang := range languages {
		for _, generated := range []bool{false, true} {
			for _, t := range tracks {
				if t.LanguageCode == lang && t.IsGenerated == generated {
					return t, true
				}
			}
		}
	}
	return transcript.Track{}, false
}

// watchPage loads the watch page, passing the EU consent interstitial once
// if YouTube serves it.
func (c *Client) watchPage(ctx context.Context, videoID string) (string, error) {
	page, err := c.getWatchPage(ctx, videoID, "")
	if err != nil {
		return "", err
	}
	if !strings.Contains(page, consentFormMarker) {
		return page, nil
	}

	m := consentValueRE.FindStringSubmatch(page)
	if m == nil {
		return "", ErrConsentCookie
	}

	page, err = c.getWatchPage(ctx, videoID, "CONSENT=YES+"+m[1])
	if err != nil {
		return "", err
	}
	if strings.Contains(page, consentFormMarker) {
		return "", ErrConsentCookie
	}
	return page, nil
}

func (c *Client) getWatchPage(ctx context.Context, videoID, cookie string) (string, error) {
	watchURL := c.baseURL + watchPath + "?v=" + url.QueryEscape(videoID)

	resp, err := c.do(ctx, metrics.OpWatchPage, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
		if err != nil {
			return nil, err
		}
		c.setBrowserHeaders(req)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
		return req, nil
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := readOK(resp, metrics.OpWatchPage, maxWatchPageBytes)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) player(ctx context.Context, videoID, apiKey string) (*playerResponse, error) {
	payload, err := json.Marshal(newPlayerRequest(videoID))
	if err != nil {
		return nil, err
	}
	playerURL := c.baseURL + playerPath + "?key=" + url.QueryEscape(apiKey)

	resp, err := c.do(ctx, metrics.OpPlayer, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, playerURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", androidUserAgent)
		req.Header.Set("Accept-Language", c.acceptLanguage)
		req.Header.Set("X-Youtube-Client-Name", "3")
		req.Header.Set("X-Youtube-Client-Version", androidVersion)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readOK(resp, metrics.OpPlayer, maxPlayerBytes)
	if err != nil {
		return nil, err
	}

	var pr playerResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &pr, nil
}

func (c *Client) setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", chromeUserAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)
}

// readOK reads a capped body, mapping 429 to ErrRequestBlocked and any
// other non-200 status to *HTTPError.
func readOK(resp *http.Response, op string, limit int64) ([]byte, error) {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRequestBlocked
	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &HTTPError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("youtube %s: read body: %w", op, err)
	}
	return body, nil
}
