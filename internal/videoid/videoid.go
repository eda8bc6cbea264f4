package videoid

import (
	"regexp"
	"strconv"
)

// Length is the number of characters in a YouTube video identifier.
const Length = 11

var idLen = "{" + strconv.Itoa(Length) + "}"

// Patterns are tried in order; the first submatch wins.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^#&?]` + idLen + `)`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([^#&?]` + idLen + `)`),
}

var bareID = regexp.MustCompile(`^[a-zA-Z0-9_-]` + idLen + `$`)

// Extract returns the video identifier contained in input.
//
// URL patterns are searched anywhere in the string, so scheme, "www." and
// "m." prefixes and trailing query parameters are all accepted. When no
// pattern matches, input itself is accepted if it is a bare identifier.
func Extract(input string) (string, bool) {
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}

	if Valid(input) {
		return input, true
	}

	return "", false
}

// Valid reports whether id is a bare, well-formed video identifier.
func Valid(id string) bool {
	return bareID.MatchString(id)
}

// ThumbnailURL returns the max-resolution thumbnail URL for id.
func ThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}
