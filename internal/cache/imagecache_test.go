package cache

import (
	"strings"
	"testing"
)

func TestHashContentIsDeterministic(t *testing.T) {
	a := HashContent("a moody rooftop chase at dusk")
	b := HashContent("a moody rooftop chase at dusk")
	if a != b {
		t.Fatalf("same content hashed differently: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d (%q)", len(a), a)
	}
}

func TestHashContentDistinguishesContent(t *testing.T) {
	a := HashContent("storyboard panel one")
	b := HashContent("storyboard panel two")
	if a == b {
		t.Fatalf("different content produced the same hash %q", a)
	}
}

func TestImageKeyPrefix(t *testing.T) {
	key := imageKey("abc123")
	if !strings.HasPrefix(key, "imgcache:") {
		t.Fatalf("expected imgcache: prefix, got %q", key)
	}
	if key != "imgcache:abc123" {
		t.Fatalf("unexpected key %q", key)
	}
}
