package codec_test

import (
	"testing"
	"time"

	"github.com/parsekit/anyparse/codec"
)

func TestTimeRFC3339_RoundTrip(t *testing.T) {
	c := codec.TimeRFC3339()

	got, err := c.DecodeValue("2024-01-02T03:04:05Z")
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	wire, err := c.EncodeValue(got)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if wire != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected wire form: %v", wire)
	}
}

func TestTimeRFC3339_DecodeFailure(t *testing.T) {
	c := codec.TimeRFC3339()
	if _, err := c.DecodeValue("not a date"); err == nil {
		t.Fatalf("expected decode failure")
	}
	if _, err := c.DecodeValue(5); err == nil {
		t.Fatalf("expected decode failure for non-string")
	}
}
