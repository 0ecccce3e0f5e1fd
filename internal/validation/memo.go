package validation

import (
	"strings"
	"unicode/utf8"

	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const (
	authorMinLen  = 1
	authorMaxLen  = 10
	contentMinLen = 1
	contentMaxLen = 100
)

// MemoValidator enforces the author and content policies for memos.
type MemoValidator struct {
	Profanity ProfanityChecker
}

// Author checks profanity, edge whitespace, then length, in that order.
func (v *MemoValidator) Author(author string) error {
	if v.Profanity.Contains(author) {
		return internal_errors.ErrAuthorProfanity
	}
	if strings.HasPrefix(author, " ") || strings.HasSuffix(author, " ") {
		return internal_errors.ErrAuthorEdgeSpace
	}
	length := utf8.RuneCountInString(author)
	if length < authorMinLen || length > authorMaxLen {
		return internal_errors.ErrAuthorLength
	}
	return nil
}

// Content checks profanity then length.
func (v *MemoValidator) Content(content string) error {
	if v.Profanity.Contains(content) {
		return internal_errors.ErrContentProfanity
	}
	length := utf8.RuneCountInString(content)
	if length < contentMinLen || length > contentMaxLen {
		return internal_errors.ErrContentLength
	}
	return nil
}
