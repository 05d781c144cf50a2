package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the longest input line MapLines accepts.
const MaxLineSize = 1024 * 1024

// MapLines reads r line by line, applies fn to each line and writes the
// results to w, one per line. A trailing carriage return is dropped from
// each input line. It returns the number of lines written.
func MapLines(r io.Reader, w io.Writer, fn func(string) string) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineSize)

	bw := bufio.NewWriter(w)
	n := 0
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if _, err := bw.WriteString(fn(line)); err != nil {
			return n, fmt.Errorf("writing line %d: %w", n+1, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("writing line %d: %w", n+1, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("reading line %d: %w", n+1, err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flushing output: %w", err)
	}
	return n, nil
}
