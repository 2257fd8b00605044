// doc.go — package documentation for xgx-failure
//
// Package failure models "why an operation failed" as a plain, comparable,
// serializable value. A failure carries:
//
//   - an id (required, machine-matchable),
//   - an optional integer code,
//   - an optional description (static category text),
//   - an optional information string (instance detail),
//   - an optional cause (any error; local only),
//   - an optional set of attached failures (sub-failures bundled under it).
//
// # Building
//
// Plain is the canonical implementation. Builders are copy-on-write:
//
//	invalid := failure.New("VALIDATION").
//	        WithCode(422).
//	        WithDescription("request rejected").
//	        Attach(
//	                failure.New("MISSING").WithInformation("name"),
//	                failure.New("TOO_LONG").WithInformation("email"),
//	        )
//
// Absent and zero are different: New("X") has no code, New("X").WithCode(0)
// has code 0. The same holds for the attached set: Attach() with no arguments
// marks it present but empty.
//
// # Raising
//
// A failure is data; raising it is explicit.
//
//	return invalid.Err()              // as an error value (*Error)
//	invalid.Raise()                   // as a panic, recovered with Catch
//
//	if caught := failure.Catch(func() { invalid.Raise() }); caught != nil {
//	        fmt.Println(caught) // VALIDATION [422] (request rejected)
//	                            // > MISSING name
//	                            // > TOO_LONG email
//	}
//
// The message is derived once, when the *Error is created, by walking the
// attached tree depth-first; each nesting level adds a "> " prefix. %+v also
// prints the cause and the stack captured at the raise site.
//
// # Equality
//
// Plain values compare by value (Equal), ignoring the cause and the order of
// attached failures. An *Error compares by identity, so it is never equal to
// the Plain it wraps:
//
//	failure.Equal(p, p.Err().(*failure.Error))            // false
//	failure.Equal(p, p.Err().(*failure.Error).Defaults()) // true
//
// # Wire formats
//
// JSON, YAML and TOML codecs share one contract: fields in the order id, code,
// description, information, attached; absent fields omitted (never null); the
// cause never written. Decoding ignores unknown fields, accepts any order and
// fails with *MissingFieldError when an id is missing.
//
//	data, _ := failure.JSON.Encode(invalid)
//	back, err := failure.JSON.Decode(data) // back equals invalid, cause dropped
//
// # Interop
//
// *Error unwraps to the payload's cause, so errors.Is/As follow the chain.
// As, IDOf, HasID and CodeOf locate a raised failure inside any error chain,
// and From converts foreign errors into failures.
package failure
