// Package failure defines a small, serializable failure value model: an
// identifier, an optional numeric code, human text, an opaque cause and a set
// of attached failures.
//
// Design tenets:
//   - Values, not behavior: a Failure is data that can be compared, encoded
//     and rendered. Raising it is a separate, explicit step.
//   - Absent is not zero: optional fields use comma-ok accessors.
//   - The cause is local: it never takes part in equality or encoding.
//   - Interop-first: the raised form (*Error) plays nicely with errors.Is/As.
package failure

import "reflect"

// Failure is the capability set shared by every failure implementation.
//
// Implementations MUST be immutable once constructed. Accessors for optional
// fields report presence through their second result; an absent field is
// distinct from a present zero value.
type Failure interface {
	// ID is a stable, machine-matchable tag. It is not meant for display
	// on its own.
	ID() string

	// Code returns the optional numeric code.
	Code() (int, bool)

	// Description returns the optional static, category-level text.
	Description() (string, bool)

	// Information returns the optional instance-specific detail.
	Information() (string, bool)

	// Cause returns the underlying error, if any. It is never encoded and
	// never compared.
	Cause() error

	// Attached returns the failures bundled under this one. The boolean is
	// false when the set is absent; a present set may be empty.
	Attached() (Set, bool)
}

// equaler is implemented by failures that define their own equality.
type equaler interface {
	Equal(other Failure) bool
}

// Equal reports whether a and b are equal failures.
//
// When a defines Equal(Failure) bool that method decides. Otherwise a and b
// are equal only when they are the same comparable value. Two nil failures are
// equal; a nil and a non-nil failure are not.
func Equal(a, b Failure) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(equaler); ok {
		return eq.Equal(b)
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(a) == reflect.TypeOf(b) {
		return a == b
	}
	return false
}

// Defaults normalizes f to the canonical Plain shape.
//
// A Plain (or *Plain) is returned as-is. Any other implementation is copied
// field by field; attached elements are carried over unchanged. Use
// DeepDefaults to normalize the whole tree.
func Defaults(f Failure) Plain {
	switch v := f.(type) {
	case nil:
		return Plain{}
	case Plain:
		return v
	case *Plain:
		if v == nil {
			return Plain{}
		}
		return *v
	}
	p := Plain{id: f.ID(), cause: f.Cause()}
	if c, ok := f.Code(); ok {
		p.code = some(c)
	}
	if d, ok := f.Description(); ok {
		p.description = some(d)
	}
	if i, ok := f.Information(); ok {
		p.information = some(i)
	}
	if s, ok := f.Attached(); ok {
		p.attached = some(s)
	}
	return p
}

// optional holds a value together with its presence bit.
type optional[T any] struct {
	val T
	ok  bool
}

func some[T any](v T) optional[T] { return optional[T]{val: v, ok: true} }

func (o optional[T]) get() (T, bool) { return o.val, o.ok }
