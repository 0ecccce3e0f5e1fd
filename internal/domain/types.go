package domain

type (
	// BoardId and MemoId are store-generated identifiers: 12 bytes,
	// hex-encoded to 24 characters.
	BoardId = string
	MemoId  = string

	BoardName = string
)
