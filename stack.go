// stack.go — raise-site stack capture.
//
// Every *Error records where it was created so an uncaught raise can be traced
// back to its origin with %+v. Frames are resolved with runtime.CallersFrames,
// which expands inlined calls correctly.
package failure

import "runtime"

// Frame is a single resolved call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified, e.g. pkg.Func or pkg.(*T).Method
}

// Stack lists frames from the most recent call outward.
type Stack []Frame

// maxStackDepth bounds capture on raise paths.
const maxStackDepth = 32

// captureStackDefault captures the caller's stack, skipping skip additional
// frames above the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, maxStackDepth)
}

// captureStack skips runtime.Callers, captureStack and captureStackDefault
// (+3) before applying skip, so skip 0 starts at the function that called
// captureStackDefault.
func captureStack(skip, depth int) Stack {
	if depth <= 0 {
		depth = maxStackDepth
	}
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+3, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{PC: fr.PC, File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			return out
		}
	}
}
