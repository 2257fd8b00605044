// construct.go — the canonical failure value and its fluent builders.
//
// Scope:
//   - Plain is the six-field default implementation of Failure.
//   - Builders are NON-MUTATING: each returns a fresh Plain (copy-on-write).
//   - Equality is structural over id, code, description, information and
//     attached; the cause is ignored.
//
// Raising:
//   - Err() returns the raised form as an error value.
//   - Raise() panics with it; pair with Catch at the recovery site.
package failure

// Plain is the default Failure implementation: a pure, comparable-by-Equal
// value holder. The zero value is a failure with an empty id.
type Plain struct {
	id          string
	code        optional[int]
	description optional[string]
	information optional[string]
	cause       error
	attached    optional[Set]
}

// New returns a Plain failure with the given id and every optional field
// absent. An empty id is legal but discouraged.
func New(id string) Plain {
	return Plain{id: id}
}

func (p Plain) ID() string                  { return p.id }
func (p Plain) Code() (int, bool)           { return p.code.get() }
func (p Plain) Description() (string, bool) { return p.description.get() }
func (p Plain) Information() (string, bool) { return p.information.get() }
func (p Plain) Cause() error                { return p.cause }
func (p Plain) Attached() (Set, bool)       { return p.attached.get() }

// WithCode returns a copy of p with the code set.
func (p Plain) WithCode(code int) Plain {
	p.code = some(code)
	return p
}

// WithDescription returns a copy of p with the description set.
func (p Plain) WithDescription(description string) Plain {
	p.description = some(description)
	return p
}

// WithInformation returns a copy of p with the information set.
func (p Plain) WithInformation(information string) Plain {
	p.information = some(information)
	return p
}

// WithCause returns a copy of p carrying cause. A nil cause clears it.
func (p Plain) WithCause(cause error) Plain {
	p.cause = cause
	return p
}

// WithAttached returns a copy of p whose attached set is s (present, even if
// empty).
func (p Plain) WithAttached(s Set) Plain {
	p.attached = some(s)
	return p
}

// Attach returns a copy of p with fs added to its attached set. The set
// becomes present even when fs is empty.
func (p Plain) Attach(fs ...Failure) Plain {
	s, _ := p.attached.get()
	p.attached = some(s.With(fs...))
	return p
}

// Equal reports whether other is a Plain with the same id, code,
// description, information and attached set. The cause is not compared.
func (p Plain) Equal(other Failure) bool {
	var o Plain
	switch v := other.(type) {
	case Plain:
		o = v
	case *Plain:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	if p.id != o.id || p.code != o.code || p.description != o.description || p.information != o.information {
		return false
	}
	if p.attached.ok != o.attached.ok {
		return false
	}
	return p.attached.val.Equal(o.attached.val)
}

// Defaults returns p unchanged; Plain is already canonical.
func (p Plain) Defaults() Plain { return p }

// Err returns p raised as an *Error without interrupting control flow.
func (p Plain) Err() error {
	return newError(p, 1)
}

// Raise panics with p wrapped in an *Error. It never returns.
func (p Plain) Raise() {
	panic(newError(p, 1))
}

// -----------------------------------------------------------------------------
// Interface conformance guards
// -----------------------------------------------------------------------------
var (
	_ Failure = Plain{}
	_ Failure = (*Plain)(nil)
	_ equaler = Plain{}
)
