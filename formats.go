package anyparse

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/parsekit/anyparse/i18n"
)

// dateTimeFloor is the traditional "zero date" boundary. Parses at or before
// it are treated as degenerate and rejected.
var dateTimeFloor = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime returns the calendar date-time parser. The input must be a string
// (non-strings fail with the string parser's error); the string must match one
// of the accepted layouts and denote an instant strictly after the 1899-12-30
// floor, else the parse fails with "Value <v> is not a date and time".
func DateTime() Parser[any, time.Time] { return dateTimeParser{} }

type dateTimeParser struct{}

func (dateTimeParser) Parse(v any, c Ctx) (time.Time, error) {
	s, err := String().Parse(v, c)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateTimeLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			if t.After(dateTimeFloor) {
				return t, nil
			}
			break
		}
	}
	return time.Time{}, typeError(v, "a date and time", c)
}

// URL returns the parser accepting absolute URL strings. The string is
// returned unchanged; anything that is not a string or does not parse as an
// absolute URL fails with `Invalid URL "<v>"`.
func URL() Parser[any, string] { return urlParser{} }

type urlParser struct{}

func (urlParser) Parse(v any, c Ctx) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", urlError(v, c)
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return "", urlError(v, c)
	}
	return s, nil
}

func urlError(v any, c Ctx) *Error {
	msg := i18n.T(CodeInvalidURL, map[string]string{"value": repr(v)})
	return newError(CodeInvalidURL, msg, c)
}

// UUID returns the parser accepting RFC 4122 UUID strings.
func UUID() Parser[any, uuid.UUID] { return uuidParser{} }

type uuidParser struct{}

func (uuidParser) Parse(v any, c Ctx) (uuid.UUID, error) {
	s, err := String().Parse(v, c)
	if err != nil {
		return uuid.Nil, err
	}
	id, perr := uuid.Parse(s)
	if perr != nil {
		return uuid.Nil, typeError(v, "a UUID", c)
	}
	return id, nil
}
