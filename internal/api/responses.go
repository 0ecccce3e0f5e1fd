package api

// Response is the uniform envelope: detail is always present, data only on
// success.
type Response struct {
	Detail string      `json:"detail"`
	Data   interface{} `json:"data,omitempty"`
}

type CreateBoardData struct {
	BoardID string `json:"board_id"`
}

type LoginData struct {
	BoardID     string `json:"board_id"`
	AccessToken string `json:"access_token"`
}

type ValidateData struct {
	IsPass bool `json:"is_pass"`
}

type MemoSummary struct {
	MemoID    string `json:"memo_id"`
	LocateIdx int    `json:"locate_idx"`
	BgNum     int    `json:"bg_num"`
}

type BoardData struct {
	IsSelf    bool          `json:"is_self"`
	BoardName string        `json:"board_name"`
	BgNum     int           `json:"bg_num"`
	MemoList  []MemoSummary `json:"memo_list"`
}

type CreateMemoData struct {
	MemoID string `json:"memo_id"`
}

type MemoData struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type Developer struct {
	Name   string `json:"name"`
	Github string `json:"github"`
}

type DeveloperData struct {
	Developers   []Developer `json:"developers"`
	ContactEmail string      `json:"contact_email"`
}
