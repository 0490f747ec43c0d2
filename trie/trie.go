package trie

// KV represents a key-value pair
type KV struct {
	Key string
	Val uint32
}

// Trie maps letter keys to uint32 values.
type Trie struct {
	nodes    *arena
	maxDepth int
	gen      uint64 // bumped on every node allocation
}

// Stats describes the shape of a Trie.
type Stats struct {
	Nodes     int // allocated nodes including the root
	Keys      int // nodes holding a nonzero value
	MaxDepth  int // length of the longest key ever materialized
	MaxDegree int // largest number of children of a single node
}

// New returns a new Trie optionally initialized with the given key-value pairs.
// It panics if any of the keys contains an unsupported character.
func New(init ...KV) *Trie {
	t := &Trie{
		nodes: newArena(),
	}

	for _, kv := range init {
		if _, err := t.Set(kv.Key, kv.Val); err != nil {
			panic(err)
		}
	}

	return t
}

// Materialize returns a pointer to the value slot of the key creating all the
// missing nodes along its path. The empty key addresses the root's own slot.
//
// The returned pointer stays valid for the life of the trie. Nodes are
// allocated even if the caller only reads through the pointer; use Lookup
// for side-effect free reads.
func (t *Trie) Materialize(key string) (*uint32, error) {
	if err := validate(key); err != nil {
		return nil, err // nothing has been allocated yet
	}

	cur := t.nodes.at(rootIdx)
	curIdx := rootIdx

	for i := 0; i < len(key); i++ {
		slot := indexOf(key[i])
		next := cur.child(slot)

		if next == rootIdx {
			// no child for the letter: add one
			next = t.nodes.alloc(curIdx)
			cur.children[slot] = next
			cur.present.add(slot)
			t.gen++
		}

		curIdx, cur = next, t.nodes.at(next)
	}

	if len(key) > t.maxDepth {
		t.maxDepth = len(key)
	}

	return &cur.value, nil
}

// Lookup returns the value stored for the key without modifying the trie.
// Keys that were never stored, keys holding 0, and keys with unsupported
// characters are all reported as missing.
func (t *Trie) Lookup(key string) (uint32, bool) {
	idx, ok := t.find(key)
	if !ok {
		return 0, false
	}

	val := t.nodes.at(idx).value

	return val, val != 0
}

// Get returns the value of the key or 0. It never allocates nodes.
func (t *Trie) Get(key string) uint32 {
	val, _ := t.Lookup(key)
	return val
}

// Set assigns a value to the key and returns the previous value.
func (t *Trie) Set(key string, val uint32) (uint32, error) {
	slot, err := t.Materialize(key)
	if err != nil {
		return 0, err
	}

	prev := *slot
	*slot = val

	return prev, nil
}

// find walks along the key without creating nodes and returns the index of
// the node at its end.
func (t *Trie) find(key string) (uint32, bool) {
	idx := rootIdx

	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isLetter(c) {
			return 0, false
		}

		idx = t.nodes.at(idx).child(indexOf(c))
		if idx == rootIdx {
			return 0, false
		}
	}

	return idx, true
}

// MaxDepth returns the length of the longest key ever materialized.
func (t *Trie) MaxDepth() int {
	return t.maxDepth
}

// NodeCount returns the number of allocated nodes including the root.
func (t *Trie) NodeCount() int {
	return t.nodes.len()
}

// Len returns the number of stored keys (nodes holding a nonzero value).
func (t *Trie) Len() int {
	num := 0

	t.nodes.each(func(_ uint32, n *node) {
		if n.value != 0 {
			num++
		}
	})

	return num
}

// Stats returns a snapshot of the trie shape.
func (t *Trie) Stats() Stats {
	st := Stats{
		Nodes:    t.nodes.len(),
		MaxDepth: t.maxDepth,
	}

	t.nodes.each(func(_ uint32, n *node) {
		if n.value != 0 {
			st.Keys++
		}
		if d := n.degree(); d > st.MaxDegree {
			st.MaxDegree = d
		}
	})

	return st
}
