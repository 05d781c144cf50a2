package grapheme

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// DefaultDelimiters is the delimiter character set used when none is configured.
const DefaultDelimiters = " -_"

// Class categorizes a grapheme for boundary detection.
type Class uint8

const (
	// Other is any grapheme that is not cased, numeric, or a delimiter.
	Other Class = iota
	// Upper is an uppercase (or titlecase) letter.
	Upper
	// Lower is a lowercase letter.
	Lower
	// Digit is a decimal digit.
	Digit
	// Delimiter is a member of the scanner's delimiter set.
	Delimiter
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Digit:
		return "digit"
	case Delimiter:
		return "delimiter"
	default:
		return "other"
	}
}

// Cased reports whether the class is Upper or Lower.
func (c Class) Cased() bool {
	return c == Upper || c == Lower
}

// Grapheme is one user-perceived character and its classification.
type Grapheme struct {
	// Text is the grapheme cluster exactly as it appears in the scanned text
	Text string
	// Offset is the byte offset of Text in the scanned text
	Offset int
	// Class is the classification of Text
	Class Class
}

// End returns the byte offset just past the grapheme.
func (g Grapheme) End() int {
	return g.Offset + len(g.Text)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDelimiters replaces the delimiter character set. Each rune of chars is
// one delimiter. An empty set means no grapheme is classified as Delimiter.
func WithDelimiters(chars string) Option {
	return func(s *Scanner) {
		s.delimiters = chars
	}
}

// WithNormalization normalizes text to the given Unicode form before scanning.
// Offsets then refer to the normalized text.
func WithNormalization(form norm.Form) Option {
	return func(s *Scanner) {
		s.normalize = true
		s.form = form
	}
}

// Scanner iterates text as classified graphemes. A Scanner is immutable after
// construction and may be shared between goroutines.
type Scanner struct {
	delimiters string
	normalize  bool
	form       norm.Form
}

// NewScanner creates a Scanner. Without options it uses DefaultDelimiters and
// does not normalize.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{delimiters: DefaultDelimiters}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delimiters returns the scanner's delimiter character set.
func (s *Scanner) Delimiters() string {
	return s.delimiters
}

// Prepare returns the text the scanner actually iterates: text itself, or its
// normalized form when normalization is configured.
func (s *Scanner) Prepare(text string) string {
	if s.normalize {
		return s.form.String(text)
	}
	return text
}

// All returns a lazy sequence of the graphemes in text, left to right.
// The sequence may be ranged over any number of times.
func (s *Scanner) All(text string) iter.Seq[Grapheme] {
	text = s.Prepare(text)
	return func(yield func(Grapheme) bool) {
		rest := text
		state := -1
		offset := 0
		for rest != "" {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			g := Grapheme{Text: cluster, Offset: offset, Class: s.Classify(cluster)}
			offset += len(cluster)
			if !yield(g) {
				return
			}
		}
	}
}

// Scan returns all graphemes of text. Empty text yields an empty (nil) slice.
func (s *Scanner) Scan(text string) []Grapheme {
	if text == "" {
		return nil
	}
	return s.AppendScan(make([]Grapheme, 0, utf8.RuneCountInString(text)), text)
}

// AppendScan appends the graphemes of text to dst and returns the extended
// slice.
func (s *Scanner) AppendScan(dst []Grapheme, text string) []Grapheme {
	for g := range s.All(text) {
		dst = append(dst, g)
	}
	return dst
}

// Classify returns the class of a single grapheme cluster.
func (s *Scanner) Classify(cluster string) Class {
	if cluster == "" {
		return Other
	}
	if c, ok := caseClass(cluster); ok {
		return c
	}
	if isDigit(cluster) {
		return Digit
	}
	if s.isDelimiter(cluster) {
		return Delimiter
	}
	return Other
}

func (s *Scanner) isDelimiter(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size != len(cluster) || r == utf8.RuneError {
		return false
	}
	return strings.ContainsRune(s.delimiters, r)
}

// caseClass reports Upper or Lower for graphemes whose upper and lower forms differ.
// Titlecase graphemes (equal to neither form) count as Upper. Letters without a
// simple case mapping (ß) fall back to their Unicode category.
func caseClass(cluster string) (Class, bool) {
	lower := strings.ToLower(cluster)
	upper := strings.ToUpper(cluster)
	if lower == upper {
		r, _ := utf8.DecodeRuneInString(cluster)
		switch {
		case unicode.IsLower(r):
			return Lower, true
		case unicode.IsUpper(r):
			return Upper, true
		}
		return Other, false
	}
	if cluster == lower {
		return Lower, true
	}
	return Upper, true
}

func isDigit(cluster string) bool {
	for i, r := range cluster {
		if i == 0 {
			if !unicode.IsDigit(r) {
				return false
			}
			continue
		}
		if !unicode.Is(unicode.M, r) {
			return false
		}
	}
	return true
}

var defaultScanner = NewScanner()

// All returns a lazy sequence of the graphemes in text using the default scanner.
func All(text string) iter.Seq[Grapheme] {
	return defaultScanner.All(text)
}

// Scan returns all graphemes of text using the default scanner.
func Scan(text string) []Grapheme {
	return defaultScanner.Scan(text)
}

// Classify returns the class of cluster using the default delimiter set.
func Classify(cluster string) Class {
	return defaultScanner.Classify(cluster)
}

// First splits text into its first grapheme cluster and the remainder.
func First(text string) (cluster, rest string) {
	cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(text, -1)
	return cluster, rest
}

// Count returns the number of graphemes in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
