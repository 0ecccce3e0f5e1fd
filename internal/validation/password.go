package validation

import (
	"strings"
	"unicode/utf8"

	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const passwordMinLen = 4

// PasswordValidator enforces the password policy: no spaces, whitelisted
// characters, minimum length. There is no maximum length.
type PasswordValidator struct{}

func (v *PasswordValidator) Validate(password string) error {
	if strings.Contains(password, " ") {
		return internal_errors.ErrPasswordSpace
	}
	for _, r := range password {
		if !isAllowedPasswordRune(r) {
			return internal_errors.ErrPasswordDisallowedChar
		}
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		return internal_errors.ErrPasswordTooShort
	}
	return nil
}
