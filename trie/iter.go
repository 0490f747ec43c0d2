package trie

import "iter"

// Iter calls a handler for all the keys with a given prefix in ascending order.
// It returns whether all the prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
// The key passed to the handler is only valid during the call, and the handler
// must not add new keys to the trie.
func (t *Trie) Iter(prefix string, handler func(key []byte, val uint32) bool) bool {
	c, err := t.BeginPrefix(prefix)
	if err != nil {
		return true // no key can have such a prefix
	}

	for !c.Exhausted() {
		key, err := c.Key()
		if err != nil {
			return false
		}

		val, _ := c.Value()

		if !handler(key, val) {
			return false
		}

		if err := c.Advance(); err != nil {
			return false
		}
	}

	return true
}

// All returns a sequence of all the key-value pairs in ascending key order.
func (t *Trie) All() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		t.Iter("", func(key []byte, val uint32) bool {
			return yield(string(key), val)
		})
	}
}

// Keys returns all the stored keys in ascending order.
func (t *Trie) Keys() []string {
	keys := make([]string, 0)

	t.Iter("", func(key []byte, _ uint32) bool {
		keys = append(keys, string(key))
		return true
	})

	return keys
}

// Items returns all the key-value pairs in ascending key order.
func (t *Trie) Items() []KV {
	items := make([]KV, 0)

	t.Iter("", func(key []byte, val uint32) bool {
		items = append(items, KV{string(key), val})
		return true
	})

	return items
}
