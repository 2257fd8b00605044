package failure

import (
	"errors"
	"testing"
)

func FuzzJSONDecode(f *testing.F) {
	f.Add([]byte(jsonEmpty))
	f.Add([]byte(jsonFull))
	f.Add([]byte(jsonAttach))
	f.Add([]byte(`{"id":"X","attached":[]}`))
	f.Add([]byte(`{"code":1}`))
	f.Add([]byte(`[1,2`))

	f.Fuzz(func(t *testing.T, data []byte) {
		p, err := JSON.Decode(data)
		if err != nil {
			var missing *MissingFieldError
			if !errors.As(err, &missing) && !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("unexpected error class %T: %v", err, err)
			}
			return
		}
		out, err := JSON.Encode(p)
		if err != nil {
			t.Fatalf("encode decoded value: %v", err)
		}
		back, err := JSON.Decode(out)
		if err != nil {
			t.Fatalf("decode re-encoded value %s: %v", out, err)
		}
		if !Equal(p, back) {
			t.Fatalf("round trip changed value: %s", out)
		}
	})
}

func FuzzMessage(f *testing.F) {
	f.Add("EXAMPLE", 100, true, "DESCRIPTION", "INFO")
	f.Add("", 0, false, "", "")
	f.Add("multi\nline", -1, true, "> quoted", "\x00")

	f.Fuzz(func(t *testing.T, id string, c int, hasCode bool, desc, inf string) {
		p := New(id).WithDescription(desc).WithInformation(inf)
		if hasCode {
			p = p.WithCode(c)
		}
		child := p.Attach(p)
		if got, want := Message(child), Message(p)+"\n> "+Message(p); got != want {
			t.Fatalf("message = %q, want %q", got, want)
		}
		if got := NewError(child).Error(); got != Message(child) {
			t.Fatalf("wrapper message = %q, want %q", got, Message(child))
		}
	})
}
