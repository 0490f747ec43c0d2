package trie

import "errors"

var (
	// ErrInvalidKeyCharacter is returned when a key contains a byte outside 'a'..'z'.
	ErrInvalidKeyCharacter = errors.New("invalid key character")

	// ErrIteratorExhausted is returned when an exhausted cursor is read or advanced.
	ErrIteratorExhausted = errors.New("cursor is exhausted")

	// ErrCursorInvalidated is returned by a cursor whose trie gained new nodes
	// after the cursor had been created.
	ErrCursorInvalidated = errors.New("cursor invalidated by a trie mutation")
)
