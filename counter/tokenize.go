package counter

import (
	"bufio"
	"bytes"
	"io"
)

// Tokenize splits text into words made of latin letters and calls fn with
// every word folded to lowercase. Any other byte separates words.
// It stops at the first error returned by fn.
func Tokenize(r io.Reader, fn func(word string) error) error {
	s := bufio.NewScanner(r)
	s.Split(scanWords)

	for s.Scan() {
		if err := fn(string(bytes.ToLower(s.Bytes()))); err != nil {
			return err
		}
	}

	return s.Err()
}

// AddText counts every word of the text.
func (t *Counter) AddText(r io.Reader) error {
	return Tokenize(r, func(word string) error {
		_, err := t.Inc(word)
		return err
	})
}

func isWordByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// scanWords is a bufio.SplitFunc returning runs of latin letters.
func scanWords(data []byte, atEOF bool) (int, []byte, error) {
	// skip leading separators
	start := 0
	for start < len(data) && !isWordByte(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if !isWordByte(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// request more data
	return start, nil, nil
}
