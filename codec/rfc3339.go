package codec

import (
	"time"

	anyparse "github.com/parsekit/anyparse"
)

// TimeRFC3339 returns a Codec converting between date-time strings and
// time.Time. Decoding accepts what anyparse.DateTime accepts; encoding emits
// canonical UTC RFC3339 (nanoseconds trimmed by Go's formatter).
func TimeRFC3339() Codec[any, time.Time] {
	return Codec[any, time.Time]{
		Decode: anyparse.DateTime(),
		Encode: func(t time.Time) (any, error) {
			return t.UTC().Format(time.RFC3339Nano), nil
		},
	}
}
