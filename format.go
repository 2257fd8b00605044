// format.go — message derivation and fmt.Formatter for *Error.
//
// Message layout (one line per failure, depth-first, root first):
//
//	ID [code] (description) information
//	> child ID [code] (description) information
//	> > grandchild ID ...
//
// Each bracketed part appears only when its field is present. Children are
// rendered in the attached set's insertion order.
//
// Formatter verbs:
//
//	%s, %v   → the derived message (Error()).
//	%q       → the quoted message.
//	%+v      → the message, then "cause: <%+v of cause>" and "stack:" sections.
package failure

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Message renders f and its attached tree as the multi-line text used by
// *Error. It returns "" for a nil failure.
func Message(f Failure) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	render(&sb, f, "")
	return sb.String()
}

func render(sb *strings.Builder, f Failure, prefix string) {
	if prefix != "" {
		sb.WriteByte('\n')
		sb.WriteString(prefix)
	}
	sb.WriteString(f.ID())
	if code, ok := f.Code(); ok {
		sb.WriteString(" [")
		sb.WriteString(strconv.Itoa(code))
		sb.WriteByte(']')
	}
	if desc, ok := f.Description(); ok {
		sb.WriteString(" (")
		sb.WriteString(desc)
		sb.WriteByte(')')
	}
	if info, ok := f.Information(); ok {
		sb.WriteByte(' ')
		sb.WriteString(info)
	}
	attached, ok := f.Attached()
	if !ok {
		return
	}
	for child := range attached.All() {
		render(sb, child, prefix+"> ")
	}
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.msg)
	default:
		_, _ = io.WriteString(s, e.msg)
	}
}

// formatVerbose writes the message followed by the cause (recursively with
// %+v) and the captured stack. Empty sections are omitted.
func formatVerbose(w io.Writer, e *Error) {
	_, _ = io.WriteString(w, e.msg)
	if cause := e.Cause(); cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", cause)
	}
	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
