package transcript

import "errors"

// ErrNoTranscripts is returned by the fallback tier when the provider
// lists no tracks at all.
var ErrNoTranscripts = errors.New("No transcripts available") //nolint:stylecheck // returned verbatim to API clients

// FetchError reports that both retrieval tiers failed. Its message carries
// only the fallback diagnostic; Primary keeps the first tier's error for
// logging.
type FetchError struct {
	VideoID string
	Primary error
	Err     error
}

// Error returns "Could not fetch transcript: " followed by the fallback error.
func (e *FetchError) Error() string {
	return "Could not fetch transcript: " + e.Err.Error()
}

// Unwrap returns the fallback error.
func (e *FetchError) Unwrap() error {
	return e.Err
}
