package trie

const (
	blockShift = 8
	blockSize  = 1 << blockShift // nodes per arena block
	blockMask  = blockSize - 1

	rootIdx uint32 = 0 // the root is never a child, so 0 also marks an empty child slot
)

type node struct {
	children [AlphabetSize]uint32
	present  letterSet
	parent   uint32
	value    uint32
}

// child returns the index of the child for the given letter slot (0 if absent).
func (n *node) child(idx int) uint32 {
	return n.children[idx]
}

// firstChild returns the smallest occupied slot that is >= from or AlphabetSize.
func (n *node) firstChild(from int) int {
	return n.present.next(from)
}

func (n *node) degree() int {
	return n.present.count()
}

// arena owns all the nodes of a trie.
//
// Nodes are stored in fixed-size blocks that are never reallocated,
// so pointers to node fields stay valid while the arena grows.
type arena struct {
	blocks [][]node
	size   uint32
}

func newArena() *arena {
	a := &arena{}
	a.alloc(rootIdx) // root is its own parent
	return a
}

// alloc appends a new node and returns its index.
func (a *arena) alloc(parent uint32) uint32 {
	idx := a.size
	if idx&blockMask == 0 {
		a.blocks = append(a.blocks, make([]node, blockSize))
	}
	a.size++

	n := a.at(idx)
	n.parent = parent

	return idx
}

func (a *arena) at(idx uint32) *node {
	return &a.blocks[idx>>blockShift][idx&blockMask]
}

// len returns the number of allocated nodes (including the root).
func (a *arena) len() int {
	return int(a.size)
}

// each calls fn for every allocated node in allocation order.
func (a *arena) each(fn func(idx uint32, n *node)) {
	for idx := uint32(0); idx < a.size; idx++ {
		fn(idx, a.at(idx))
	}
}
