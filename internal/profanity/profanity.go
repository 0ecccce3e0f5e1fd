// Package profanity implements a lexical profanity detector: a substring
// scan of user-supplied text against a fixed Korean/English lexicon.
package profanity

import "strings"

// defaultLexicon holds the words the detector flags anywhere in the input.
// Korean entries are matched as written; ASCII entries are matched
// case-insensitively.
var defaultLexicon = []string{
	// Korean
	"시발", "씨발", "씨빨", "시부랄", "씨부랄",
	"병신", "븅신", "빙신",
	"개새끼", "개새키", "개색기", "새끼",
	"지랄", "좆", "존나", "졸라",
	"미친놈", "미친년", "또라이",
	"니미", "엠창", "애미",
	// English
	"fuck", "shit", "bitch", "asshole", "bastard", "dick", "cunt",
}

type Detector struct {
	words *trie
}

// New builds a detector over the given lexicon. An empty call uses the
// built-in default lexicon.
func New(words ...string) *Detector {
	if len(words) == 0 {
		words = defaultLexicon
	}
	t := newTrie()
	for _, w := range words {
		t.insert(strings.ToLower(w))
	}
	return &Detector{words: t}
}

// Contains reports whether text contains any lexicon word as a substring.
func (d *Detector) Contains(text string) bool {
	text = strings.ToLower(text)
	for i := 0; i < len(text); i++ {
		if d.words.matchAt(text, i) {
			return true
		}
	}
	return false
}
