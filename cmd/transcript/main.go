package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"research-blender-api/internal/handlers"
	"research-blender-api/internal/transcript"
	"research-blender-api/internal/videoid"
	"research-blender-api/internal/youtube"

	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	defaultTimeout = 30 * time.Second
)

// providerFactory builds the transcript provider; tests replace it.
type providerFactory func(baseURL string, timeout time.Duration) transcript.Provider

func newYouTubeProvider(baseURL string, timeout time.Duration) transcript.Provider {
	return youtube.NewClient(youtube.Config{BaseURL: baseURL, Timeout: timeout, Retry: youtube.DefaultRetryConfig()})
}

func main() {
	// Create a context that cancels on interrupt signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, isTTY, newYouTubeProvider))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, isTTY bool, newProvider providerFactory) int {
	fs := flag.NewFlagSet("transcript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }

	asJSON := fs.Bool("json", false, "print the result as JSON (default when stdout is not a terminal)")
	langs := fs.String("lang", strings.Join(transcript.DefaultLanguages, ","), "comma-separated preferred languages")
	timestamps := fs.Bool("timestamps", false, "print one timed segment per line instead of the joined text")
	timeout := fs.Duration("timeout", defaultTimeout, "overall timeout")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		printUsage(stderr, fs)
		return exitUsage
	}

	id, ok := videoid.Extract(fs.Arg(0))
	if !ok {
		fmt.Fprintln(stderr, "Error: Invalid YouTube URL or video ID")
		return exitError
	}

	baseURL := os.Getenv("YOUTUBE_BASE_URL")
	fetcher := transcript.NewFetcher(newProvider(baseURL, *timeout), transcript.WithLanguages(splitLanguages(*langs)...))

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := fetcher.Fetch(ctx, id)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	switch {
	case *asJSON || !isTTY:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(handlers.TranscriptResponse{
			Success:    true,
			VideoID:    result.VideoID,
			Transcript: result.FullText,
			Segments:   result.Segments,
		}); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	case *timestamps:
		for _, seg := range result.Segments {
			fmt.Fprintf(stdout, "[%s] %s\n", formatTimestamp(seg.Start), seg.Text)
		}
	default:
		fmt.Fprintln(stdout, result.FullText)
	}

	return exitOK
}

func splitLanguages(s string) []string {
	var out []string
	for _, lang := range strings.Split(s, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			out = append(out, lang)
		}
	}
	return out
}

// formatTimestamp renders seconds as m:ss, or h:mm:ss past the hour.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Research Blender transcript fetcher")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: transcript [flags] <youtube-url-or-video-id>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  YOUTUBE_BASE_URL - YouTube origin (default: https://www.youtube.com)")
}
