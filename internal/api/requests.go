// Package api holds the wire-level request and response shapes shared by
// the handlers and their clients.
package api

type CreateBoardRequest struct {
	BoardName   string `json:"board_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	BgNum       int    `json:"bg_num" validate:"gte=0"`
	GraduatedAt string `json:"graduated_at" validate:"required"`
}

type LoginRequest struct {
	BoardName string `json:"board_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type ValidateBoardRequest struct {
	BoardName string `json:"board_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type CreateMemoRequest struct {
	LocateIdx int    `json:"locate_idx"`
	BgNum     int    `json:"bg_num" validate:"gte=0"`
	Author    string `json:"author" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type ValidateMemoRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
}
