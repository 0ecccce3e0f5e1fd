package domain

import "time"

// KST is the civil timezone used for token expiry and graduation-date
// arithmetic. Graduation dates are entered as calendar days in Korea.
var KST = time.FixedZone("KST", 9*60*60)

type Board struct {
	Id          BoardId
	Name        BoardName
	PassHash    string
	BgNum       int
	GraduatedAt time.Time
	Created     time.Time
}

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        BoardName
	PassHash    string
	BgNum       int
	GraduatedAt time.Time
}

// BoardView is what a GetBoard request returns: board metadata plus memo
// summaries. Memo author/content stay behind the graduation-gated memo read.
type BoardView struct {
	IsSelf bool
	Name   BoardName
	BgNum  int
	Memos  []MemoSummary
}
