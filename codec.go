// codec.go — the wire contract shared by every structured codec.
//
// Wire shape (field tags in this fixed order):
//
//	id           string, required
//	code         integer, optional
//	description  string, optional
//	information  string, optional
//	attached     collection of failures, optional, encoded by the same codec
//
// Rules:
//   - A field is written iff it is present. Absent fields are omitted, never
//     written as null. The cause is never written.
//   - Readers accept any field order, ignore unknown fields and treat an
//     explicit null as absent.
//   - Decoding always yields a Plain with a nil cause. Attached elements are
//     collected into a Set, so duplicates collapse.
//   - Absent and present-but-empty attached sets are distinct on the wire.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Wire field tags.
const (
	tagID          = "id"
	tagCode        = "code"
	tagDescription = "description"
	tagInformation = "information"
	tagAttached    = "attached"
)

// Codec translates failures to and from one structured format.
type Codec interface {
	// Name is the format's short name, e.g. "json".
	Name() string

	// Encode writes f, and recursively its attached failures, in this format.
	Encode(f Failure) ([]byte, error)

	// Decode reads one failure. It fails with *MissingFieldError when an id
	// is missing at any depth and with *MalformedInputError when the input
	// does not match the expected shape.
	Decode(data []byte) (Plain, error)
}

// Built-in codecs.
var (
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
	TOML Codec = tomlCodec{}
)

// CodecFor returns the built-in codec with the given name (case-insensitive).
func CodecFor(name string) (Codec, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	case "toml":
		return TOML, true
	}
	return nil, false
}

// ErrMalformedInput matches every *MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("failure: malformed input")

// MissingFieldError reports that a required wire field was not present.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("failure: missing required field %q", e.Field)
}

// MalformedInputError wraps an error raised by the underlying decoding layer.
type MalformedInputError struct {
	Format string
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("failure: malformed %s input: %v", e.Format, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

func malformed(format string, err error) error {
	return &MalformedInputError{Format: format, Err: err}
}

func missingID() error {
	return &MissingFieldError{Field: tagID}
}
