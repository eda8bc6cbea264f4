package memory

import (
	"math"
	"runtime/debug"
	"testing"
)

func restoreMemoryLimit(t *testing.T) {
	t.Helper()
	prev := debug.SetMemoryLimit(-1)
	t.Cleanup(func() { debug.SetMemoryLimit(prev) })
}

func TestConfigureFromEnvNone(t *testing.T) {
	restoreMemoryLimit(t)
	t.Setenv("GOMEMLIMIT", "")
	t.Setenv("MEMORY_LIMIT", "")

	l := ConfigureFromEnv()
	if l.Source != SourceNone || l.Configured() {
		t.Errorf("Expected no limit, got %+v", l)
	}
}

func TestConfigureFromEnvMemoryLimit(t *testing.T) {
	restoreMemoryLimit(t)
	t.Setenv("GOMEMLIMIT", "")
	t.Setenv("MEMORY_LIMIT", "1073741824")
	t.Setenv("MEMORY_RATIO", "0.5")

	l := ConfigureFromEnv()
	if l.Source != SourceMemoryLimit {
		t.Fatalf("Expected source %s, got %s", SourceMemoryLimit, l.Source)
	}
	if l.GoMemLimit != 536870912 {
		t.Errorf("Expected 512MiB limit, got %d", l.GoMemLimit)
	}
	if got := debug.SetMemoryLimit(-1); got != 536870912 {
		t.Errorf("Expected runtime limit to be applied, got %d", got)
	}
}

func TestConfigureFromEnvInvalid(t *testing.T) {
	restoreMemoryLimit(t)
	t.Setenv("GOMEMLIMIT", "")

	for _, raw := range []string{"lots", "-5", "0"} {
		t.Setenv("MEMORY_LIMIT", raw)
		if l := ConfigureFromEnv(); l.Source != SourceNone {
			t.Errorf("MEMORY_LIMIT=%q: expected no limit, got %+v", raw, l)
		}
	}
}

func TestConfigureFromEnvGOMEMLIMITWins(t *testing.T) {
	restoreMemoryLimit(t)
	debug.SetMemoryLimit(256 << 20)
	t.Setenv("GOMEMLIMIT", "256MiB")
	t.Setenv("MEMORY_LIMIT", "1073741824")

	l := ConfigureFromEnv()
	if l.Source != SourceGOMEMLIMIT {
		t.Errorf("Expected source %s, got %s", SourceGOMEMLIMIT, l.Source)
	}
	if l.GoMemLimit != 256<<20 {
		t.Errorf("Expected current runtime limit reported, got %d", l.GoMemLimit)
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", DefaultMemoryRatio},
		{"0.75", 0.75},
		{"1", 1},
		{"0", DefaultMemoryRatio},
		{"1.5", DefaultMemoryRatio},
		{"half", DefaultMemoryRatio},
	}

	for _, tt := range tests {
		if got := parseRatio(tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseRatio(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{536870912, "512.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
