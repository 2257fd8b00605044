// json.go — JSON codec.
//
// Canonical form:
//
//	{"id":"EXAMPLE","code":100,"description":"D","information":"I","attached":[...]}
//
// Field order follows jsonWire's declaration order. Pointer fields carry
// presence: nil means absent and is dropped by omitempty; a non-nil pointer to
// an empty slice encodes as "attached":[]. HTML characters are written as
// is, not as \u003c escapes.
package failure

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type jsonWire struct {
	ID          *string            `json:"id"`
	Code        *int               `json:"code,omitempty"`
	Description *string            `json:"description,omitempty"`
	Information *string            `json:"information,omitempty"`
	Attached    *[]json.RawMessage `json:"attached,omitempty"`
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (c jsonCodec) Encode(f Failure) ([]byte, error) {
	w, err := c.toWire(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c jsonCodec) toWire(f Failure) (jsonWire, error) {
	id := f.ID()
	w := jsonWire{ID: &id}
	if code, ok := f.Code(); ok {
		w.Code = &code
	}
	if desc, ok := f.Description(); ok {
		w.Description = &desc
	}
	if info, ok := f.Information(); ok {
		w.Information = &info
	}
	if attached, ok := f.Attached(); ok {
		raws := make([]json.RawMessage, 0, attached.Len())
		for child := range attached.All() {
			raw, err := c.Encode(child)
			if err != nil {
				return jsonWire{}, err
			}
			raws = append(raws, raw)
		}
		w.Attached = &raws
	}
	return w, nil
}

func (c jsonCodec) Decode(data []byte) (Plain, error) {
	var w jsonWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Plain{}, malformed(c.Name(), err)
	}
	if w.ID == nil {
		return Plain{}, missingID()
	}
	p := New(*w.ID)
	if w.Code != nil {
		p = p.WithCode(*w.Code)
	}
	if w.Description != nil {
		p = p.WithDescription(*w.Description)
	}
	if w.Information != nil {
		p = p.WithInformation(*w.Information)
	}
	if w.Attached != nil {
		children := make([]Failure, 0, len(*w.Attached))
		for i, raw := range *w.Attached {
			child, err := c.Decode(raw)
			if err != nil {
				return Plain{}, errors.Wrapf(err, "%s[%d]", tagAttached, i)
			}
			children = append(children, child)
		}
		p = p.WithAttached(NewSet(children...))
	}
	return p, nil
}

// MarshalJSON encodes p with the JSON codec.
func (p Plain) MarshalJSON() ([]byte, error) {
	return JSON.Encode(p)
}

// UnmarshalJSON decodes data with the JSON codec into p.
func (p *Plain) UnmarshalJSON(data []byte) error {
	decoded, err := JSON.Decode(data)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

var (
	_ json.Marshaler   = Plain{}
	_ json.Unmarshaler = (*Plain)(nil)
)
