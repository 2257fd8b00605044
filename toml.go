// toml.go — TOML codec.
//
// A failure is a top-level table. Scalars come first in wire order; a
// non-empty attached set is written as an array of tables:
//
//	id = "EXAMPLE"
//	code = 100
//
//	[[attached]]
//	  id = "CHILD"
//
// Nil pointers are skipped by the encoder, which gives the omit-if-absent rule.
package failure

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type tomlWire struct {
	ID          *string     `toml:"id"`
	Code        *int        `toml:"code"`
	Description *string     `toml:"description"`
	Information *string     `toml:"information"`
	Attached    *[]tomlWire `toml:"attached"`
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (c tomlCodec) Encode(f Failure) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c.toWire(f)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c tomlCodec) toWire(f Failure) tomlWire {
	id := f.ID()
	w := tomlWire{ID: &id}
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
		children := make([]tomlWire, 0, attached.Len())
		for child := range attached.All() {
			children = append(children, c.toWire(child))
		}
		w.Attached = &children
	}
	return w
}

func (c tomlCodec) Decode(data []byte) (Plain, error) {
	var w tomlWire
	if _, err := toml.Decode(string(data), &w); err != nil {
		return Plain{}, malformed(c.Name(), err)
	}
	return c.fromWire(w)
}

func (c tomlCodec) fromWire(w tomlWire) (Plain, error) {
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
		for i, cw := range *w.Attached {
			child, err := c.fromWire(cw)
			if err != nil {
				return Plain{}, errors.Wrapf(err, "%s[%d]", tagAttached, i)
			}
			children = append(children, child)
		}
		p = p.WithAttached(NewSet(children...))
	}
	return p, nil
}
