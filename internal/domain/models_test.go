package domain

import "testing"

func TestStableIDDeterministic(t *testing.T) {
	a := StableID("https://example.com/news/1")
	b := StableID("https://example.com/news/1")
	if a != b {
		t.Fatalf("same input produced %q and %q", a, b)
	}
	if a == StableID("https://example.com/news/2") {
		t.Fatalf("different inputs collided")
	}
	if len(a) != 12 {
		t.Fatalf("id length = %d, want 12", len(a))
	}
	for _, r := range a {
		if r == '+' || r == '/' || r == '=' {
			t.Fatalf("id %q is not URL safe", a)
		}
	}
}
