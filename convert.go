// convert.go — bridges between foreign errors and failures.
//
//   - From turns any error into a Failure without losing a raised payload.
//   - Named declares a package-level failure that is built once, on first use.
//   - DeepDefaults normalizes a whole tree to Plain values.
package failure

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// IDException is the id From assigns to foreign errors.
const IDException = "EXCEPTION"

// From converts err into a Failure.
//   - nil → nil
//   - an *Error anywhere in the chain → its payload
//   - anything else → a Plain with id IDException, the root cause's type
//     name as description, err.Error() as information and err as cause
//
// opts run in order on the result, so callers can replace any of those
// defaults. A raised payload is normalized with Defaults first when opts are
// given.
func From(err error, opts ...func(Plain) Plain) Failure {
	if err == nil {
		return nil
	}
	if fe, ok := As(err); ok {
		if len(opts) == 0 {
			return fe.Failure()
		}
		return apply(fe.Defaults(), opts)
	}
	p := New(IDException).
		WithDescription(fmt.Sprintf("%T", errors.Cause(err))).
		WithInformation(err.Error()).
		WithCause(err)
	return apply(p, opts)
}

// Named returns a function yielding the failure with the given id, built on
// the first call by applying opts to New(id) and reused afterwards.
//
//	var ErrQuota = failure.Named("QUOTA_EXCEEDED", func(p failure.Plain) failure.Plain {
//		return p.WithCode(429)
//	})
//	ErrQuota().Raise()
func Named(id string, opts ...func(Plain) Plain) func() Plain {
	return sync.OnceValue(func() Plain {
		return apply(New(id), opts)
	})
}

func apply(p Plain, opts []func(Plain) Plain) Plain {
	for _, opt := range opts {
		p = opt(p)
	}
	return p
}

// DeepDefaults is Defaults applied to f and, recursively, to every attached
// failure. Raised wrappers anywhere in the tree become plain values.
func DeepDefaults(f Failure) Plain {
	p := Defaults(f)
	attached, ok := p.Attached()
	if !ok {
		return p
	}
	children := make([]Failure, 0, attached.Len())
	for child := range attached.All() {
		children = append(children, DeepDefaults(child))
	}
	return p.WithAttached(NewSet(children...))
}
