package trie

// Cursor enumerates the stored keys of a Trie in ascending lexicographic order.
//
// A cursor is either positioned at a stored key or exhausted. It keeps only
// the letters of the current path and the index of the current node; moving
// on is done through child slots and parent back-references, so no recursion
// and no stack are involved.
//
// Allocating new nodes in the trie (materializing a new path) invalidates all
// the cursors created before; they report ErrCursorInvalidated until Reset.
// Writing through an existing value slot does not invalidate cursors.
type Cursor struct {
	trie   *Trie
	prefix string // fixed leading letters, never popped
	key    []byte // current path; key[:len(prefix)] == prefix
	cur    uint32 // node index at the end of key
	gen    uint64 // trie generation the cursor was positioned in
	done   bool
}

// Begin returns a cursor positioned at the smallest stored key,
// or an exhausted cursor if the trie holds no keys.
func (t *Trie) Begin() *Cursor {
	c := &Cursor{trie: t}
	c.Reset()

	return c
}

// BeginPrefix returns a cursor over the stored keys starting with the prefix
// (the prefix itself included). The trie is not modified.
func (t *Trie) BeginPrefix(prefix string) (*Cursor, error) {
	if err := validate(prefix); err != nil {
		return nil, err
	}

	c := &Cursor{trie: t, prefix: prefix}
	c.Reset()

	return c, nil
}

// Reset rewinds the cursor to the smallest key of its range. It also revives
// a cursor invalidated by a trie mutation.
func (c *Cursor) Reset() {
	t := c.trie

	if need := max(t.maxDepth, len(c.prefix)); cap(c.key) < need {
		c.key = make([]byte, 0, need)
	}
	c.key = append(c.key[:0], c.prefix...)
	c.gen = t.gen
	c.done = false

	idx, ok := t.find(c.prefix)
	if !ok {
		c.done = true
		return
	}

	c.cur = idx

	if t.nodes.at(idx).value == 0 {
		c.seek()
	}
}

// Exhausted reports whether the cursor has run past the last key.
func (c *Cursor) Exhausted() bool {
	return c.done
}

// Key returns the current key. The slice aliases the cursor's buffer: it must
// not be modified and is only valid until the next Advance or Reset.
func (c *Cursor) Key() ([]byte, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return c.key, nil
}

// Value returns the value of the current key.
func (c *Cursor) Value() (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.trie.nodes.at(c.cur).value, nil
}

// Advance moves the cursor to the next stored key. Reaching the end is not an
// error: the cursor becomes exhausted. Advancing an exhausted cursor returns
// ErrIteratorExhausted.
func (c *Cursor) Advance() error {
	if err := c.check(); err != nil {
		return err
	}

	c.seek()

	return nil
}

func (c *Cursor) check() error {
	switch {
	case c.done:
		return ErrIteratorExhausted
	case c.gen != c.trie.gen:
		return ErrCursorInvalidated
	}
	return nil
}

// seek repeats structural steps until a node holding a value is reached.
func (c *Cursor) seek() {
	nodes := c.trie.nodes

	for {
		if !c.step() {
			c.done = true
			return
		}
		if nodes.at(c.cur).value != 0 {
			return
		}
	}
}

// step moves to the next path in preorder regardless of whether it is a key.
// It returns false when the cursor's range has no more paths.
func (c *Cursor) step() bool {
	var (
		nodes = c.trie.nodes
		n     = nodes.at(c.cur)
	)

	// descend to the smallest child
	if slot := n.firstChild(0); slot < AlphabetSize {
		c.key = append(c.key, letterOf(slot))
		c.cur = n.child(slot)

		return true
	}

	// look for the next sibling, popping one level at a time
	for len(c.key) > len(c.prefix) {
		var (
			last   = len(c.key) - 1
			parent = nodes.at(n.parent)
			slot   = parent.firstChild(indexOf(c.key[last]) + 1)
		)

		if slot < AlphabetSize {
			c.key[last] = letterOf(slot)
			c.cur = parent.child(slot)

			return true
		}

		c.key = c.key[:last]
		c.cur = n.parent
		n = parent
	}

	return false
}
