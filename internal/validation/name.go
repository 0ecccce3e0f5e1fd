// Package validation holds the pure string-policy validators shared by the
// board and memo services. Each validator returns the first violated rule
// only; callers never see aggregated violations.
package validation

import (
	"strings"
	"unicode/utf8"

	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const (
	nameMinLen      = 2
	nameMaxLenASCII = 16 // names made of ASCII letters only
	nameMaxLen      = 8  // Korean or mixed names render wider
)

// ProfanityChecker is the lexical profanity-detection capability.
type ProfanityChecker interface {
	Contains(text string) bool
}

// BoardNameValidator enforces the board-name policy. Name uniqueness is the
// storage's concern and is checked by the board service before these rules.
type BoardNameValidator struct {
	Profanity ProfanityChecker
}

// Validate applies the name rules in their fixed order: length, edge
// whitespace, character whitelist, profanity.
func (v *BoardNameValidator) Validate(name string) error {
	length := utf8.RuneCountInString(name)
	if length < nameMinLen {
		return internal_errors.ErrNameTooShort
	}
	if length > maxLenFor(name) {
		return internal_errors.ErrNameTooLong
	}

	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return internal_errors.ErrNameEdgeSpace
	}

	for _, r := range name {
		if !isAllowedNameRune(r) {
			return internal_errors.ErrNameDisallowedChar
		}
	}

	if v.Profanity.Contains(name) {
		return internal_errors.ErrNameProfanity
	}
	return nil
}

func maxLenFor(name string) int {
	for _, r := range name {
		if !isASCIILetter(r) {
			return nameMaxLen
		}
	}
	return nameMaxLenASCII
}
