package segment

import (
	"sync"

	"github.com/erraggy/ccase/grapheme"
)

// Grapheme buffer capacity: identifiers rarely exceed a few dozen graphemes.
const (
	graphemeBufCap    = 64
	graphemeBufMaxCap = 4096
)

var graphemeBufPool = sync.Pool{
	New: func() any {
		buf := make([]grapheme.Grapheme, 0, graphemeBufCap)
		return &buf
	},
}

func getGraphemeBuf() *[]grapheme.Grapheme {
	return graphemeBufPool.Get().(*[]grapheme.Grapheme)
}

// putGraphemeBuf returns buf to the pool. Oversized buffers are dropped.
func putGraphemeBuf(buf *[]grapheme.Grapheme) {
	if buf == nil || cap(*buf) > graphemeBufMaxCap {
		return
	}
	clear(*buf)
	*buf = (*buf)[:0]
	graphemeBufPool.Put(buf)
}
