package main

import (
	"fmt"

	"github.com/aglyzov/alphatrie/trie"
)

func main() {
	t := trie.New()

	for _, kv := range []trie.KV{{Key: "text", Val: 1}, {Key: "test", Val: 2}} {
		slot, err := t.Materialize(kv.Key)
		if err != nil {
			panic(err)
		}
		*slot = kv.Val
	}

	for c := t.Begin(); !c.Exhausted(); {
		key, _ := c.Key()
		val, _ := c.Value()

		fmt.Printf("%s : %d\n", key, val)

		if err := c.Advance(); err != nil {
			panic(err)
		}
	}
}
