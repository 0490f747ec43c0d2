package trie

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/openacid/testkeys"
)

var cache = map[string][]string{}

// getKeys loads a testkeys corpus keeping only the keys made of 'a'..'z'.
func getKeys(fn string) []string {
	if ks, ok := cache[fn]; ok {
		return ks
	}

	var keys []string
	for _, k := range testkeys.Load(fn) {
		if k = strings.ToLower(k); validate(k) == nil {
			keys = append(keys, k)
		}
	}

	cache[fn] = keys

	return keys
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		if len(keys) < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func getFakeKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = fakeKey(faker) + fakeKey(faker)
	}

	return keys
}

func BenchmarkCorpus_Set(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr := New()
			for j, key := range keys {
				_, _ = tr.Set(key, uint32(j+1))
			}
		}
	})
}

func BenchmarkCorpus_Cursor(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tr := New()
		for j, key := range keys {
			_, _ = tr.Set(key, uint32(j+1))
		}

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for c := tr.Begin(); !c.Exhausted(); _ = c.Advance() {
			}
		}
	})
}

func BenchmarkFake_Lookup(b *testing.B) {
	var (
		keys = getFakeKeys(100_000)
		tr   = New()
	)

	for j, key := range keys {
		_, _ = tr.Set(key, uint32(j+1))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.Lookup(keys[i%len(keys)])
	}
}
