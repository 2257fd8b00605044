// Package failurelog adapts failures to pslog structured logging.
//
// The failure core never logs. This package turns a failure (or an error that
// carries one) into key/value pairs and log lines so callers can report it
// through their own pslog.Logger.
package failurelog

import (
	"strconv"
	"strings"

	"pkt.systems/pslog"

	failure "github.com/xgx-io/xgx-failure"
)

// Field keys emitted by Fields.
const (
	KeyID          = "failure_id"
	KeyCode        = "failure_code"
	KeyDescription = "failure_description"
	KeyInformation = "failure_information"
	KeyCause       = "failure_cause"
	KeyAttached    = "failure_attached"
	KeyDepth       = "failure_depth"
	KeyPath        = "failure_path"
)

// Fields returns key/value pairs describing f itself (not its children).
// Absent fields are left out; the attached set is reported as its size.
func Fields(f failure.Failure) []any {
	if f == nil {
		return nil
	}
	kv := []any{KeyID, f.ID()}
	if code, ok := f.Code(); ok {
		kv = append(kv, KeyCode, code)
	}
	if desc, ok := f.Description(); ok {
		kv = append(kv, KeyDescription, desc)
	}
	if info, ok := f.Information(); ok {
		kv = append(kv, KeyInformation, info)
	}
	if cause := f.Cause(); cause != nil {
		kv = append(kv, KeyCause, cause.Error())
	}
	if attached, ok := f.Attached(); ok {
		kv = append(kv, KeyAttached, attached.Len())
	}
	return kv
}

// ErrorFields describes err for a log line. When err carries a raised failure
// its fields are used; otherwise the result is just "error", err.
func ErrorFields(err error) []any {
	if err == nil {
		return nil
	}
	if fe, ok := failure.As(err); ok {
		return append([]any{"error", fe.Error()}, Fields(fe)...)
	}
	return []any{"error", err}
}

// Log writes f to logger: one Warn line for the root and one Debug line per
// attached failure below it. Descendant lines carry their depth and a dotted
// index path from the root (for example "0.1").
func Log(logger pslog.Logger, msg string, f failure.Failure) {
	if logger == nil || f == nil {
		return
	}
	logger.Warn(msg, Fields(f)...)
	logChildren(logger, msg, f, nil)
}

func logChildren(logger pslog.Logger, msg string, f failure.Failure, path []string) {
	attached, ok := f.Attached()
	if !ok {
		return
	}
	i := 0
	for child := range attached.All() {
		childPath := append(path[:len(path):len(path)], strconv.Itoa(i))
		kv := append(Fields(child), KeyDepth, len(childPath), KeyPath, strings.Join(childPath, "."))
		logger.Debug(msg, kv...)
		logChildren(logger, msg, child, childPath)
		i++
	}
}
