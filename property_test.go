package failure

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

// Generate implements quick.Generator with small random trees.
func (Plain) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(genPlain(r, size, 3))
}

func genPlain(r *rand.Rand, size, depth int) Plain {
	str := func() string {
		v, _ := quick.Value(reflect.TypeOf(""), r)
		return v.String()
	}
	p := New(str())
	if r.Intn(2) == 0 {
		p = p.WithCode(r.Intn(2*size+1) - size)
	}
	if r.Intn(2) == 0 {
		p = p.WithDescription(str())
	}
	if r.Intn(2) == 0 {
		p = p.WithInformation(str())
	}
	if depth > 0 && r.Intn(3) == 0 {
		n := r.Intn(3)
		kids := make([]Failure, 0, n)
		for i := 0; i < n; i++ {
			kids = append(kids, genPlain(r, size, depth-1))
		}
		p = p.Attach(kids...)
	}
	return p
}

func TestProperty_JSONRoundTrip(t *testing.T) {
	prop := func(p Plain) bool {
		data, err := JSON.Encode(p)
		if err != nil {
			return false
		}
		back, err := JSON.Decode(data)
		return err == nil && Equal(p, back)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestProperty_EqualIsSymmetricAndReflexive(t *testing.T) {
	prop := func(a, b Plain) bool {
		return Equal(a, a) && Equal(a, b) == Equal(b, a)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestProperty_MessageLineCountMatchesTree(t *testing.T) {
	prop := func(p Plain) bool {
		nodes := 0
		Walk(p, func(Failure, int) bool { nodes++; return true })
		lines := 1
		for _, c := range Message(p) {
			if c == '\n' {
				lines++
			}
		}
		// Strings may carry their own newlines.
		return lines >= nodes
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestProperty_WrapperKeepsPayload(t *testing.T) {
	prop := func(p Plain) bool {
		e := NewError(p)
		return e.Error() == Message(p) && Equal(p, e.Defaults()) && !Equal(p, e)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}
