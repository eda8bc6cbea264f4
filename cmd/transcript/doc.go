// Command transcript fetches a YouTube transcript from the command line
// using the same two-tier strategy as the API server.
//
// Usage:
//
//	transcript [-json] [-lang en,de] [-timestamps] [-timeout 30s] <youtube-url-or-video-id>
//
// The joined transcript text is printed when stdout is a terminal; JSON in
// the API's response shape is printed with -json or when output is piped.
//
// Exit codes:
//
//	0  transcript printed
//	1  invalid URL or fetch failure
//	2  usage error
package main
