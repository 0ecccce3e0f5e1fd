package errors

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Domain failures are fixed values so that services, handlers and tests can
// match them with errors.Is. Clients are expected to branch on the status
// code; the detail strings are stable but informational.
var (
	// board name policy
	ErrNameDuplicate      = &ErrorWithStatusCode{"A board with that name already exists", 400}
	ErrNameTooShort       = &ErrorWithStatusCode{"Board name is too short", 400}
	ErrNameTooLong        = &ErrorWithStatusCode{"Board name is too long", 400}
	ErrNameEdgeSpace      = &ErrorWithStatusCode{"Board name cannot start or end with a space", 400}
	ErrNameDisallowedChar = &ErrorWithStatusCode{"Board name may only contain Korean, English letters, digits and punctuation", 400}
	ErrNameProfanity      = &ErrorWithStatusCode{"Board name cannot contain profanity", 400}

	// password policy
	ErrPasswordSpace          = &ErrorWithStatusCode{"Password cannot contain spaces", 400}
	ErrPasswordDisallowedChar = &ErrorWithStatusCode{"Password may only contain English letters, digits and punctuation", 400}
	ErrPasswordTooShort       = &ErrorWithStatusCode{"Password must be at least 4 characters", 400}

	// memo field policy
	ErrAuthorProfanity  = &ErrorWithStatusCode{"Author name cannot contain profanity", 400}
	ErrAuthorEdgeSpace  = &ErrorWithStatusCode{"Author name cannot start or end with a space", 400}
	ErrAuthorLength     = &ErrorWithStatusCode{"Author name must be between 1 and 10 characters", 400}
	ErrContentProfanity = &ErrorWithStatusCode{"Content cannot contain profanity", 400}
	ErrContentLength    = &ErrorWithStatusCode{"Content must be between 1 and 100 characters", 400}

	ErrBadGraduationDate = &ErrorWithStatusCode{"Graduation date must be formatted as YYYY-MM-DD", 400}
	ErrDuplicatePosition = &ErrorWithStatusCode{"A memo already exists at that position", 400}

	// authentication
	ErrInvalidCredentials = &ErrorWithStatusCode{"Wrong board name or password", 401}
	ErrMissingToken       = &ErrorWithStatusCode{"Authorization required", 401}
	ErrTokenExpired       = &ErrorWithStatusCode{"Token has expired", 401}
	ErrTokenInvalid       = &ErrorWithStatusCode{"Invalid token", 401}
	ErrTokenPayload       = &ErrorWithStatusCode{"Token payload is invalid", 401}

	// authorization
	ErrMemoBoardMismatch = &ErrorWithStatusCode{"Memo does not belong to the board in the token", 403}
	ErrNotGraduated      = &ErrorWithStatusCode{"Board is not viewable until its graduation date", 403}

	// lookups; malformed identifiers collapse into these on purpose
	ErrBoardNotFound = &ErrorWithStatusCode{"Board not found", 404}
	ErrMemoNotFound  = &ErrorWithStatusCode{"Memo not found", 404}
)
