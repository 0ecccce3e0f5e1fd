package validation

import "strings"

// allowedPunct is the punctuation/symbol whitelist shared by board names and
// passwords: all printable ASCII punctuation.
const allowedPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isHangulSyllable covers the precomposed syllable block U+AC00..U+D7A3.
func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func isAllowedNameRune(r rune) bool {
	return isHangulSyllable(r) || isASCIILetter(r) || isDigit(r) || strings.ContainsRune(allowedPunct, r)
}

func isAllowedPasswordRune(r rune) bool {
	return isASCIILetter(r) || isDigit(r) || strings.ContainsRune(allowedPunct, r)
}
