package segment

import (
	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/grapheme"
)

// Span is one word of a segmented string together with its byte range in the
// scanned text. Empty words have Start == End.
type Span struct {
	Text  string
	Start int
	End   int
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithScanner sets the grapheme scanner used to classify input. When the
// scanner normalizes text, span offsets refer to the normalized text.
func WithScanner(sc *grapheme.Scanner) Option {
	return func(s *Segmenter) {
		if sc != nil {
			s.scanner = sc
		}
	}
}

// Segmenter splits strings with a fixed boundary set. It is safe for
// concurrent use.
type Segmenter struct {
	set     boundary.Set
	scanner *grapheme.Scanner
}

// New returns a Segmenter for set.
func New(set boundary.Set, opts ...Option) *Segmenter {
	s := &Segmenter{set: set}
	for _, opt := range opts {
		opt(s)
	}
	if s.scanner == nil {
		s.scanner = grapheme.NewScanner()
	}
	return s
}

// Boundaries returns the segmenter's boundary set.
func (s *Segmenter) Boundaries() boundary.Set {
	return s.set
}

// Split returns the words of input. Empty input yields no words.
func (s *Segmenter) Split(input string) []string {
	buf := getGraphemeBuf()
	defer putGraphemeBuf(buf)
	gs := s.scanner.AppendScan(*buf, input)
	*buf = gs
	ranges := wordRanges(gs, s.set)
	if len(ranges) == 0 {
		return nil
	}
	words := make([]string, len(ranges))
	for i, r := range ranges {
		words[i] = text(gs[r.from:r.to])
	}
	return words
}

// Spans returns the words of input with their byte ranges.
func (s *Segmenter) Spans(input string) []Span {
	prepared := s.scanner.Prepare(input)
	buf := getGraphemeBuf()
	defer putGraphemeBuf(buf)
	gs := s.scanner.AppendScan(*buf, prepared)
	*buf = gs
	ranges := wordRanges(gs, s.set)
	if len(ranges) == 0 {
		return nil
	}
	spans := make([]Span, len(ranges))
	for i, r := range ranges {
		start, end := byteRange(gs, r, len(prepared))
		spans[i] = Span{Text: prepared[start:end], Start: start, End: end}
	}
	return spans
}

// Split returns the words of input using set and the default scanner.
func Split(input string, set boundary.Set) []string {
	return New(set).Split(input)
}

// Spans returns the words of input with byte ranges using set and the
// default scanner.
func Spans(input string, set boundary.Set) []Span {
	return New(set).Spans(input)
}

// SplitGraphemes segments already scanned graphemes. Each returned word is a
// subslice of gs.
func SplitGraphemes(gs []grapheme.Grapheme, set boundary.Set) [][]grapheme.Grapheme {
	ranges := wordRanges(gs, set)
	if len(ranges) == 0 {
		return nil
	}
	words := make([][]grapheme.Grapheme, len(ranges))
	for i, r := range ranges {
		words[i] = gs[r.from:r.to:r.to]
	}
	return words
}

// wordRange is a half-open range of grapheme indexes.
type wordRange struct {
	from, to int
}

func wordRanges(gs []grapheme.Grapheme, set boundary.Set) []wordRange {
	if len(gs) == 0 {
		return nil
	}
	var out []wordRange
	last := 0
	for i := 0; i < len(gs); {
		_, split, consumed, ok := set.Match(gs[i:])
		if !ok {
			i++
			continue
		}
		p := i + split
		if consumed == 0 {
			if p > last && p < len(gs) {
				out = append(out, wordRange{last, p})
				last = p
			}
			i++
			continue
		}
		out = append(out, wordRange{last, p})
		last = p + consumed
		i = max(last, i+1)
	}
	return append(out, wordRange{last, len(gs)})
}

func byteRange(gs []grapheme.Grapheme, r wordRange, size int) (start, end int) {
	switch {
	case r.from < r.to:
		return gs[r.from].Offset, gs[r.to-1].End()
	case r.from < len(gs):
		return gs[r.from].Offset, gs[r.from].Offset
	default:
		return size, size
	}
}

func text(gs []grapheme.Grapheme) string {
	switch len(gs) {
	case 0:
		return ""
	case 1:
		return gs[0].Text
	}
	n := 0
	for _, g := range gs {
		n += len(g.Text)
	}
	buf := make([]byte, 0, n)
	for _, g := range gs {
		buf = append(buf, g.Text...)
	}
	return string(buf)
}
