// yaml.go — YAML codec built on yaml.v3 nodes.
//
// Encoding builds a mapping node by hand so keys come out in wire order
// (id, code, description, information, attached). Decoding walks the mapping
// pairs, so key order is free and unknown keys are skipped. Aliases are
// followed; a null scalar counts as absent. Scalars must carry their own tag
// (!!str or !!int): YAML's implicit conversions are not applied.
//
// Decoding a yaml.Node bypasses yaml.v3's alias expansion guard, so fromNode
// counts every failure it visits, alias targets included, against
// maxYAMLFailures.
package failure

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// maxYAMLFailures caps the failures one document may expand to.
const maxYAMLFailures = 10000

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (c yamlCodec) Encode(f Failure) ([]byte, error) {
	node, err := c.toNode(f)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func (c yamlCodec) toNode(f Failure) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	put := func(key string, v any) error {
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return err
		}
		m.Content = append(m.Content, yamlKey(key), val)
		return nil
	}
	if err := put(tagID, f.ID()); err != nil {
		return nil, err
	}
	if code, ok := f.Code(); ok {
		if err := put(tagCode, code); err != nil {
			return nil, err
		}
	}
	if desc, ok := f.Description(); ok {
		if err := put(tagDescription, desc); err != nil {
			return nil, err
		}
	}
	if info, ok := f.Information(); ok {
		if err := put(tagInformation, info); err != nil {
			return nil, err
		}
	}
	if attached, ok := f.Attached(); ok {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for child := range attached.All() {
			n, err := c.toNode(child)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		m.Content = append(m.Content, yamlKey(tagAttached), seq)
	}
	return m, nil
}

func yamlKey(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func (c yamlCodec) Decode(data []byte) (Plain, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Plain{}, malformed(c.Name(), err)
	}
	budget := maxYAMLFailures
	return c.fromNode(&doc, &budget)
}

func (c yamlCodec) fromNode(n *yaml.Node, budget *int) (Plain, error) {
	if *budget <= 0 {
		return Plain{}, malformed(c.Name(), fmt.Errorf("document expands to more than %d failures", maxYAMLFailures))
	}
	*budget--
	n = resolveYAML(n)
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return Plain{}, malformed(c.Name(), fmt.Errorf("empty document"))
		}
		n = resolveYAML(n.Content[0])
	}
	if n.Kind != yaml.MappingNode {
		return Plain{}, malformed(c.Name(), fmt.Errorf("line %d: expected a mapping, got %s", n.Line, n.ShortTag()))
	}

	var (
		id       *string
		p        Plain
		children []Failure
		attached bool
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolveYAML(n.Content[i+1])
		if isYAMLNull(val) {
			continue
		}
		switch key {
		case tagID:
			s, err := c.str(key, val)
			if err != nil {
				return Plain{}, err
			}
			id = &s
		case tagCode:
			if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!int" {
				return Plain{}, c.mismatch(key, "an integer", val)
			}
			var code int
			if err := val.Decode(&code); err != nil {
				return Plain{}, malformed(c.Name(), err)
			}
			p = p.WithCode(code)
		case tagDescription:
			s, err := c.str(key, val)
			if err != nil {
				return Plain{}, err
			}
			p = p.WithDescription(s)
		case tagInformation:
			s, err := c.str(key, val)
			if err != nil {
				return Plain{}, err
			}
			p = p.WithInformation(s)
		case tagAttached:
			if val.Kind != yaml.SequenceNode {
				return Plain{}, malformed(c.Name(), fmt.Errorf("line %d: %s must be a sequence, got %s", val.Line, tagAttached, val.ShortTag()))
			}
			attached = true
			children = make([]Failure, 0, len(val.Content))
			for j, elem := range val.Content {
				child, err := c.fromNode(elem, budget)
				if err != nil {
					return Plain{}, errors.Wrapf(err, "%s[%d]", tagAttached, j)
				}
				children = append(children, child)
			}
		}
	}
	if id == nil {
		return Plain{}, missingID()
	}
	p.id = *id
	if attached {
		p = p.WithAttached(NewSet(children...))
	}
	return p, nil
}

func (c yamlCodec) str(key string, val *yaml.Node) (string, error) {
	if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
		return "", c.mismatch(key, "a string", val)
	}
	return val.Value, nil
}

func (c yamlCodec) mismatch(key, want string, val *yaml.Node) error {
	return malformed(c.Name(), fmt.Errorf("line %d: %s must be %s, got %s", val.Line, key, want, val.ShortTag()))
}

func resolveYAML(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isYAMLNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// MarshalYAML encodes p with the YAML codec's node layout.
func (p Plain) MarshalYAML() (any, error) {
	return yamlCodec{}.toNode(p)
}

// UnmarshalYAML decodes value with the YAML codec into p.
func (p *Plain) UnmarshalYAML(value *yaml.Node) error {
	budget := maxYAMLFailures
	decoded, err := yamlCodec{}.fromNode(value, &budget)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

var (
	_ yaml.Marshaler   = Plain{}
	_ yaml.Unmarshaler = (*Plain)(nil)
)
