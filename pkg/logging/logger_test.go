package logging

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN", "unknown", ""} {
		l := New(level)
		if l == nil || l.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestWith(t *testing.T) {
	l := Default().With("component", "test")
	if l == nil || l.Logger == nil {
		t.Fatal("With returned nil logger")
	}
}
