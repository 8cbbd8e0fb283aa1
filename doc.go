package anyparse

// Package anyparse converts untyped, externally supplied values (the result of
// deserializing JSON, YAML, form data, ...) into strongly typed, validated
// values, with errors that carry a human-readable location path.
//
// It provides:
//
// - A composable Parser[T, U] abstraction (Parse/Run) over materialized values
// - Primitive parsers (String/Number/Bool/DateTime/Record/URL/UUID/Constant)
// - Structural combinators (Object/Array) threading a persistent location Ctx
// - Transformation and branching combinators (Map/Lift/Compose/Optional/
//   Nullable/Default/PreCondition/PostCondition/Fail/Alt)
// - A stable error model via *Error (code, base message, fragment path)
//
// Design policy:
// - Keep only public APIs in the root package; message dictionaries live in i18n/.
// - Place bidirectional codecs under codec/ and input decoding under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  p := anyparse.Object(map[string]anyparse.Parser[any, any]{
//      "name": anyparse.Of(anyparse.String()),
//      "age":  anyparse.Optional(anyparse.Number()),
//  })
//  v, err := source.ParseJSON(p, data)
//
// Parsers are immutable and stateless; a parser built once may be shared and
// reused across goroutines. Each Run creates its own Ctx chain.
