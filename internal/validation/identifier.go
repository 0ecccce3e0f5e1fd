package validation

import "errors"

var ErrMalformedIdentifier = errors.New("identifier must be 24 hexadecimal characters")

// Identifier checks that an externally supplied id is a well-formed storage
// key: exactly 24 hex digits (12 bytes hex-encoded), case-insensitive.
// Callers treat a failure the same as a missing record, so a malformed id
// never reaches the store.
func Identifier(id string) error {
	if len(id) != 24 {
		return ErrMalformedIdentifier
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return ErrMalformedIdentifier
		}
	}
	return nil
}
