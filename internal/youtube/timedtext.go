package youtube

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"

	"research-blender-api/internal/transcript"
)

// timedtext format 1:
//
//	<transcript><text start="0.5" dur="1.2">Hello &amp;amp; welcome</text>...</transcript>
type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

var markupRE = regexp.MustCompile(`(?i)<[^>]*>`)

var errEmptyTimedText = errors.New("empty timedtext response")

// parseTimedText converts timedtext XML into segments. Caption text is
// entity-escaped twice by YouTube, so it is unescaped once more after XML
// decoding and any remaining markup is stripped. Lines without text are
// dropped.
func parseTimedText(data []byte) ([]transcript.Segment, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyTimedText
	}

	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		if line.Text == "" {
			continue
		}

		start, err := parseSeconds(line.Start)
		if err != nil {
			return nil, fmt.Errorf("parse timedtext start %q: %w", line.Start, err)
		}
		dur, err := parseSeconds(line.Dur)
		if err != nil {
			return nil, fmt.Errorf("parse timedtext dur %q: %w", line.Dur, err)
		}

		segments = append(segments, transcript.Segment{
			Start:    start,
			Duration: dur,
			Text:     markupRE.ReplaceAllString(html.UnescapeString(line.Text), ""),
		})
	}

	return segments, nil
}

func parseSeconds(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, nil
	}
	return v, nil
}
