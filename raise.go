// raise.go — the raised form of a failure.
//
// An *Error wraps exactly one Failure (its payload) and is itself a Failure:
// every field is read through to the payload, nothing is copied. It adds the
// derived multi-line message, computed once at construction, and exposes the
// payload's cause through Unwrap so errors.Is/As see the chain.
//
// Equality is identity. An *Error is never equal to a Plain holding the same
// fields; call Defaults on it first when comparing against plain values.
package failure

// Error carries a Failure through Go's error and panic mechanisms.
type Error struct {
	payload Failure
	msg     string
	stk     Stack
}

// NewError wraps f. The message is derived from f's attached tree right away
// and a stack is captured at the call site.
func NewError(f Failure) *Error {
	return newError(f, 1)
}

func newError(f Failure, skip int) *Error {
	return &Error{
		payload: f,
		msg:     Message(f),
		stk:     captureStackDefault(skip + 1), // +1 for newError
	}
}

// Raise panics with f wrapped in an *Error. It never returns.
func Raise(f Failure) {
	panic(newError(f, 1))
}

// Catch runs fn and returns the *Error it raised, or nil when fn returns
// normally. Panics with any other value, a nil *Error included, propagate
// unchanged.
func Catch(fn func()) (caught *Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*Error)
		if !ok || e == nil {
			panic(r)
		}
		caught = e
	}()
	fn()
	return nil
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.payload.Cause() }

func (e *Error) ID() string                  { return e.payload.ID() }
func (e *Error) Code() (int, bool)           { return e.payload.Code() }
func (e *Error) Description() (string, bool) { return e.payload.Description() }
func (e *Error) Information() (string, bool) { return e.payload.Information() }
func (e *Error) Cause() error                { return e.payload.Cause() }
func (e *Error) Attached() (Set, bool)       { return e.payload.Attached() }

// Failure returns the wrapped payload.
func (e *Error) Failure() Failure { return e.payload }

// Defaults returns the payload normalized to a Plain.
func (e *Error) Defaults() Plain { return Defaults(e.payload) }

// Stack returns the frames captured when e was created.
func (e *Error) Stack() Stack { return e.stk }

// Equal reports whether other is this very *Error.
func (e *Error) Equal(other Failure) bool {
	o, ok := other.(*Error)
	return ok && o == e
}

var (
	_ Failure = (*Error)(nil)
	_ error   = (*Error)(nil)
	_ equaler = (*Error)(nil)
)
