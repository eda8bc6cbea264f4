// Package transcript fetches timed transcripts for a video through a
// pluggable Provider and normalizes them into a Result.
//
// Retrieval is two-tiered. The primary tier asks the provider for the best
// track matching an ordered language preference list. If that fails for
// any reason, the fallback tier lists every available track and fetches
// the first one the provider returns, whatever its language. Only when
// both tiers fail does Fetch return a *FetchError.
//
// The Fetcher holds no per-request state and is safe for concurrent use as
// long as its Provider is.
package transcript
