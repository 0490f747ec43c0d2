// Package trie defines a prefix tree over the 26 lowercase latin letters
// mapping every stored key to an uint32 value, and a Cursor enumerating the
// stored keys in ascending lexicographic order.
//
// Nodes live in an arena and are addressed by index. Each node has:
// -----------------------------------------------------------------
//
//   - children - 26 child indices, one slot per letter ('a' is slot 0);
//   - present  - a 26-bit bitmap of the occupied child slots;
//   - parent   - a back-reference to the owning node (used for traversal only);
//   - value    - 0 means no key terminates at the node.
//
// Value sentinel:
// --------------
//
// A key explicitly mapped to 0 is indistinguishable from a key that was never
// stored. Lookup reports such keys as missing and cursors skip them.
//
// Cursor:
// ------
//
// A Cursor walks the tree without recursion and without a stack: it keeps the
// letters of the current path in a buffer sized to the longest key ever stored
// and moves between nodes using only child slots and parent back-references.
//
//	                          ,-- [s]=3 -- [t]=2
//	[root] -- [t] -- [e] --+
//	                          `-- [x] -- [t]=1
//
// The trie above yields "tes":3, "test":2, "text":1.
//
// A Trie is not safe for concurrent use.
package trie
