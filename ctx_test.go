package anyparse_test

import (
	"testing"

	anyparse "github.com/parsekit/anyparse"
)

func TestCtx_PushOrder(t *testing.T) {
	c := anyparse.NewCtx().Push("b").Push("a")
	got := c.Fragments()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected fragments [a b], got %v", got)
	}
	if msg := anyparse.NewError("boom", c).Error(); msg != "boom in a in b" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCtx_EmptyContext(t *testing.T) {
	c := anyparse.NewCtx()
	if frags := c.Fragments(); len(frags) != 0 {
		t.Fatalf("expected no fragments, got %v", frags)
	}
	if msg := anyparse.NewError("boom", c).Error(); msg != "boom" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCtx_SiblingIsolation(t *testing.T) {
	parent := anyparse.NewCtx().Push("root")
	left := parent.Push("left")
	right := parent.Push("right")

	if got := left.Fragments(); got[0] != "left" || got[1] != "root" {
		t.Fatalf("left saw %v", got)
	}
	if got := right.Fragments(); got[0] != "right" || got[1] != "root" {
		t.Fatalf("right saw %v", got)
	}
	if got := parent.Fragments(); len(got) != 1 || got[0] != "root" {
		t.Fatalf("parent mutated: %v", got)
	}
}
