package profanity

// trieNode represents a node in the byte-level prefix tree.
type trieNode struct {
	children map[byte]*trieNode
	terminal bool // a lexicon word ends here
}

// trie is a prefix tree for fast word matching. Keys are raw bytes, so
// multi-byte Hangul words work without rune decoding.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: make(map[byte]*trieNode)}}
}

func (t *trie) insert(word string) {
	node := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if node.children[c] == nil {
			node.children[c] = &trieNode{children: make(map[byte]*trieNode)}
		}
		node = node.children[c]
	}
	node.terminal = true
}

// matchAt reports whether any lexicon word starts at pos.
func (t *trie) matchAt(text string, pos int) bool {
	node := t.root
	for i := pos; i < len(text); i++ {
		next := node.children[text[i]]
		if next == nil {
			return false
		}
		node = next
		if node.terminal {
			return true
		}
	}
	return false
}
