package anyparse_test

import (
	"encoding/json"
	"strings"
	"testing"

	anyparse "github.com/parsekit/anyparse"
)

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hi", "27"} {
		got, err := anyparse.Run(anyparse.String(), any(s))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("expected %q, got %q", s, got)
		}
	}
}

func TestString_RejectsNonStrings(t *testing.T) {
	for _, v := range []any{5, 2.5, true, nil, []any{}, map[string]any{}} {
		if _, err := anyparse.Run(anyparse.String(), v); err == nil {
			t.Fatalf("expected failure for %v", v)
		}
	}
	_, err := anyparse.Run(anyparse.String(), 5)
	if err == nil || err.Error() != "Value 5 is not a string" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestNumber_AcceptedShapes(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{27.0, 27},
		{float32(1.5), 1.5},
		{3, 3},
		{int64(4), 4},
		{json.Number("2.5"), 2.5},
	}
	for _, tc := range cases {
		got, err := anyparse.Run(anyparse.Number(), tc.in)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("expected %v, got %v", tc.want, got)
		}
	}
}

func TestNumber_RejectsStrings(t *testing.T) {
	_, err := anyparse.Run(anyparse.Number(), "27")
	if err == nil || err.Error() != "Value 27 is not a number" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestBool(t *testing.T) {
	got, err := anyparse.Run(anyparse.Bool(), true)
	if err != nil || got != true {
		t.Fatalf("expected true, got %v (%v)", got, err)
	}
	if _, err := anyparse.Run(anyparse.Bool(), "true"); err == nil {
		t.Fatalf("expected failure for string input")
	} else if !strings.Contains(err.Error(), "is not a boolean") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestIdentityAndUnknown_PassThrough(t *testing.T) {
	for _, v := range []any{nil, 5, "x", []any{1.0}, map[string]any{"k": true}} {
		got, err := anyparse.Run(anyparse.Identity(), v)
		if err != nil {
			t.Fatalf("identity failed for %v: %v", v, err)
		}
		if _, isMap := v.(map[string]any); !isMap {
			if _, isSlice := v.([]any); !isSlice {
				if got != v {
					t.Fatalf("identity changed %v to %v", v, got)
				}
			}
		}
		if _, err := anyparse.Run(anyparse.Unknown(), v); err != nil {
			t.Fatalf("unknown failed for %v: %v", v, err)
		}
	}
}

func TestConstant_IgnoresInput(t *testing.T) {
	p := anyparse.Constant[any]("fixed")
	for _, v := range []any{nil, 5, "whatever"} {
		got, err := anyparse.Run(p, v)
		if err != nil || got != "fixed" {
			t.Fatalf("expected fixed, got %v (%v)", got, err)
		}
	}
}

func TestRecord(t *testing.T) {
	in := map[string]any{"a": 1.0, "b": nil}
	got, err := anyparse.Run(anyparse.Record(), any(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got["a"] != 1.0 {
		t.Fatalf("unexpected record: %v", got)
	}

	for _, v := range []any{nil, 5, "x", []any{}} {
		if _, err := anyparse.Run(anyparse.Record(), v); err == nil {
			t.Fatalf("expected failure for %v", v)
		} else if !strings.Contains(err.Error(), "is not an object") {
			t.Fatalf("unexpected message: %v", err)
		}
	}
}
