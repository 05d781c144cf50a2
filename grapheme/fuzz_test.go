package grapheme

import (
	"strings"
	"testing"
)

func FuzzScan(f *testing.F) {
	f.Add("")
	f.Add("IOStream")
	f.Add("granat-äpfel")
	f.Add("10,000 Days")
	f.Add("é́")
	f.Add("👨‍👩‍👧")
	f.Add("\xff\xfe")
	f.Add("ὈΔΥΣΣΕΎΣ")

	f.Fuzz(func(t *testing.T, s string) {
		var b strings.Builder
		offset := 0
		for _, g := range Scan(s) {
			if g.Text == "" {
				t.Fatalf("empty grapheme in %q", s)
			}
			if g.Offset != offset {
				t.Fatalf("offset %d, want %d in %q", g.Offset, offset, s)
			}
			offset = g.End()
			b.WriteString(g.Text)
		}
		if b.String() != s {
			t.Errorf("graphemes do not reconstruct input:\ninput: %q\ngot:   %q", s, b.String())
		}
	})
}
