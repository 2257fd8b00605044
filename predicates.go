// predicates.go — error-chain helpers for raised failures.
//
// Scope:
//   • Answer "which failure is this error?" for arbitrary error values.
//   • Interop-first: everything goes through errors.As, so single Unwrap()
//     chains and errors.Join trees are both searched.
package failure

import "errors"

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IDOf returns the id of the first raised failure in err's chain, or "" if
// there is none.
func IDOf(err error) string {
	if fe, ok := As(err); ok {
		return fe.ID()
	}
	return ""
}

// HasID reports whether the first raised failure in err's chain has the
// given id.
func HasID(err error, id string) bool {
	fe, ok := As(err)
	return ok && fe.ID() == id
}

// CodeOf returns the code of the first raised failure in err's chain. The
// boolean is false when there is no raised failure or its code is absent.
func CodeOf(err error) (int, bool) {
	if fe, ok := As(err); ok {
		return fe.Code()
	}
	return 0, false
}
