// Package youtube implements transcript.Provider against YouTube itself.
//
// Track discovery mirrors what a browser does: the watch page is loaded to
// obtain the Innertube API key, then the Innertube /player endpoint is
// queried with the ANDROID client context, whose response lists caption
// tracks. Each track's timedtext URL returns XML that is parsed into
// transcript segments.
//
// Failures are reported with sentinel and typed errors (ErrVideoUnavailable,
// ErrTranscriptsDisabled, *NoTranscriptFoundError, ...) whose messages are
// stable enough to be classified by substring at the HTTP boundary.
package youtube
