package trie

import (
	"fmt"
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	// AlphabetSize is the number of distinct key letters.
	AlphabetSize = 26

	firstLetter = 'a'
	lastLetter  = firstLetter + AlphabetSize - 1

	letterMask letterSet = 1<<AlphabetSize - 1 // 0b_11..1 (26 bits)
)

// letterSet is a bitmap of child slots: bit N is set when letter 'a'+N has a child.
type letterSet uint32

func (s letterSet) has(idx int) bool {
	return s&(1<<idx) != 0
}

func (s *letterSet) add(idx int) {
	*s |= 1 << idx
}

// next returns the smallest member that is >= from or AlphabetSize if there is none.
func (s letterSet) next(from int) int {
	if from >= AlphabetSize {
		return AlphabetSize
	}

	rest := s & letterMask >> from << from // clear the bits below `from`
	if rest == 0 {
		return AlphabetSize
	}

	return bits.TrailingZeros32(uint32(rest))
}

// count returns the number of members.
func (s letterSet) count() int {
	return int(popcount.Count(uint64(s & letterMask)))
}

func indexOf(c byte) int {
	return int(c - firstLetter)
}

func letterOf(idx int) byte {
	return byte(idx) + firstLetter
}

func isLetter(c byte) bool {
	return c >= firstLetter && c <= lastLetter
}

// validate checks that every byte of the key is a supported letter.
func validate(key string) error {
	for i := 0; i < len(key); i++ {
		if c := key[i]; !isLetter(c) {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidKeyCharacter, c, i)
		}
	}
	return nil
}
