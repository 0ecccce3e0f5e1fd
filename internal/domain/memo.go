package domain

import "time"

type Memo struct {
	Id        MemoId
	BoardId   BoardId
	LocateIdx int
	BgNum     int
	Author    string
	Content   string
	Created   time.Time
}

type MemoCreationData struct {
	BoardId   BoardId
	LocateIdx int
	BgNum     int
	Author    string
	Content   string
}

// MemoSummary is the board-page projection of a memo: position and styling
// only, no text.
type MemoSummary struct {
	Id        MemoId
	LocateIdx int
	BgNum     int
}
