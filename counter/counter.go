// Package counter counts occurrences of lowercase words on top of a letter trie.
package counter

import (
	"sort"

	"github.com/aglyzov/alphatrie/trie"
)

type CountedKey struct {
	Key   string
	Count uint32
}
type CountedKeySlice []CountedKey

// Counter maps words made of 'a'..'z' to their counts. A count of 0 means
// the word is not counted.
type Counter struct {
	size int
	trie *trie.Trie
}

func InitCounter(counter *Counter, countedKeys ...CountedKey) (*Counter, error) {
	*counter = Counter{trie: trie.New()}
	for _, ckey := range countedKeys {
		if _, err := counter.IncBy(ckey.Key, ckey.Count); err != nil {
			return nil, err
		}
	}
	return counter, nil
}

func NewCounter(countedKeys ...CountedKey) (*Counter, error) {
	return InitCounter(&Counter{}, countedKeys...)
}

// Len returns the number of counted keys.
func (t *Counter) Len() int {
	return t.size
}

func (t *Counter) Empty() bool {
	return t.size == 0
}

// Get returns a count associated with the key
func (t *Counter) Get(key string) uint32 {
	return t.trie.Get(key)
}

// Replace applies a func to a previous count of a key and replaces the value with return value.
// Returns the previous count.
func (t *Counter) Replace(key string, replace func(uint32) uint32) (uint32, error) {
	slot, err := t.trie.Materialize(key)
	if err != nil {
		return 0, err
	}

	prev := *slot
	*slot = replace(prev)

	switch {
	case prev == 0 && *slot != 0:
		t.size++
	case prev != 0 && *slot == 0:
		t.size--
	}

	return prev, nil
}

// Set associates a given count with a key. Returns previous count.
func (t *Counter) Set(key string, count uint32) (uint32, error) {
	return t.Replace(key, func(uint32) uint32 { return count })
}

// IncBy incremets a count associated with the key by a given delta and returns it.
func (t *Counter) IncBy(key string, delta uint32) (uint32, error) {
	prev, err := t.Replace(key, func(prev uint32) uint32 { return prev + delta })
	if err != nil {
		return 0, err
	}
	return prev + delta, nil
}

// Inc incremets a count associated with the key by 1 and returns it.
func (t *Counter) Inc(key string) (uint32, error) {
	return t.IncBy(key, 1)
}

// Merge merges another Counter into this one. Counts of common keys are added up.
// Returns itself.
func (t *Counter) Merge(other *Counter, prefix string) *Counter {
	if other != nil {
		adder := func(ckey CountedKey) bool {
			_, _ = t.IncBy(ckey.Key, ckey.Count) // keys of a Counter are always valid
			return true
		}
		other.Iter(prefix, adder)
	}
	return t
}

// Iter calls a handler for all keys with a given prefix in alphabetical order.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Counter) Iter(prefix string, handler func(CountedKey) bool) bool {
	return t.trie.Iter(prefix, func(key []byte, count uint32) bool {
		return handler(CountedKey{string(key), count})
	})
}

// Keys returns all keys in a sorted order.
func (t *Counter) Keys() []string {
	return t.trie.Keys()
}

// CountedKeys returns a CountedKeySlice sorted by count (descending)
func (t *Counter) CountedKeys() CountedKeySlice {
	pairs := make(CountedKeySlice, 0, t.size)

	t.Iter("", func(ckey CountedKey) bool {
		pairs = append(pairs, ckey)
		return true
	})

	sort.Sort(pairs)

	return pairs
}

// -- CountedKeySlice sort interface --

func (v CountedKeySlice) Len() int      { return len(v) }
func (v CountedKeySlice) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v CountedKeySlice) Less(i, j int) bool {
	if v[i].Count == v[j].Count {
		return v[i].Key < v[j].Key
	}
	return v[i].Count > v[j].Count // inverted logic
}
