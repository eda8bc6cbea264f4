package videoid

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch URL without www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"mobile watch URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123", "dQw4w9WgXcQ", true},
		{"watch URL with fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=abcdef", "dQw4w9WgXcQ", true},
		{"short link without scheme", "youtu.be/abcdefghijk", "abcdefghijk", true},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed URL with params", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ", true},
		{"shorts URL", "https://www.youtube.com/shorts/abc_DEF-123", "abc_DEF-123", true},
		{"shorts URL with query", "https://youtube.com/shorts/abc_DEF-123?feature=share", "abc_DEF-123", true},
		{"bare identifier", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"bare identifier with dash and underscore", "_-_-_-_-_-_", "_-_-_-_-_-_", true},
		{"plain text", "not a url", "", false},
		{"empty", "", "", false},
		{"bare identifier too short", "dQw4w9WgXc", "", false},
		{"bare identifier too long", "dQw4w9WgXcQQ", "", false},
		{"bare identifier with invalid char", "dQw4w9WgX!Q", "", false},
		{"watch URL with short token", "https://www.youtube.com/watch?v=abc&x=1", "", false},
		{"other site", "https://vimeo.com/123456789", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if ok && len(got) != Length {
				t.Errorf("Extract(%q) returned %d characters, want %d", tt.input, len(got), Length)
			}
		})
	}
}

func TestExtractTakesFirstElevenCharacters(t *testing.T) {
	// The watch pattern is unanchored; longer tokens are truncated to 11.
	got, ok := Extract("https://www.youtube.com/watch?v=dQw4w9WgXcQEXTRA")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "dQw4w9WgXcQ" {
		t.Errorf("got %q, want %q", got, "dQw4w9WgXcQ")
	}
}

func TestExtractPatternPrecedence(t *testing.T) {
	// The watch/youtu.be/embed family is tried before shorts.
	input := "https://www.youtube.com/shorts/SHORTSxxxxx?ref=https://youtu.be/WATCHxxxxxx"
	got, ok := Extract(input)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "WATCHxxxxxx" {
		t.Errorf("got %q, want the first pattern family to win", got)
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/abcdefghijk",
		"https://www.youtube.com/embed/AAAAAAAAAAA",
		"https://www.youtube.com/shorts/abc_DEF-123",
		"dQw4w9WgXcQ",
	}

	for _, input := range inputs {
		first, ok := Extract(input)
		if !ok {
			t.Fatalf("Extract(%q) failed", input)
		}
		second, ok := Extract(first)
		if !ok || second != first {
			t.Errorf("Extract(%q) = %q, %v; want %q", first, second, ok, first)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("dQw4w9WgXcQ") {
		t.Error("expected dQw4w9WgXcQ to be valid")
	}
	if Valid("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("a URL is not a bare identifier")
	}
}

func TestThumbnailURL(t *testing.T) {
	want := "https://img.youtube.com/vi/abcdefghijk/maxresdefault.jpg"
	if got := ThumbnailURL("abcdefghijk"); got != want {
		t.Errorf("ThumbnailURL() = %q, want %q", got, want)
	}
}
