package anyparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/parsekit/anyparse/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidURL    = "invalid_url"
	CodeCondition     = "condition"
	CodeFailed        = "failed"
	CodeNoAlternative = "no_alternative"
)

// Error is the single error kind produced by parsers. Base is the failure
// description; Path holds the location fragments collected while descending,
// innermost first.
type Error struct {
	Code string // One of the codes listed above.
	Base string
	Path []string
}

// Error renders the base message followed by " in <fragment>" for each stored
// fragment, e.g. `Value true is not a number in object property a in array at index 2`.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Base
	}
	b := &strings.Builder{}
	b.WriteString(e.Base)
	for _, f := range e.Path {
		b.WriteString(" in ")
		b.WriteString(f)
	}
	return b.String()
}

// NewError builds a path-annotated Error from a base message and the context
// at the point of failure. Custom parsers should fail through this so their
// errors carry location information like the built-in ones.
func NewError(base string, c Ctx) *Error { return newError(CodeFailed, base, c) }

func newError(code, base string, c Ctx) *Error {
	return &Error{Code: code, Base: base, Path: c.Fragments()}
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// typeError reports a value whose runtime type did not match. expected carries
// its article ("a string", "an object") so the i18n template stays whole.
func typeError(v any, expected string, c Ctx) *Error {
	msg := i18n.T(CodeInvalidType, map[string]string{"value": repr(v), "expected": expected})
	return newError(CodeInvalidType, msg, c)
}

// repr renders an input value for inclusion in error messages. Untyped nil is
// shown as "null" to match the wire vocabulary the inputs come from.
func repr(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
