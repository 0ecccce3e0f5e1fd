package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memory-page/memoboard/internal/api"
	mw "github.com/memory-page/memoboard/internal/middleware"
	"github.com/memory-page/memoboard/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	boardID, err := h.board.Create(body.BoardName, body.Password, body.BgNum, body.GraduatedAt)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Board created",
		Data:   api.CreateBoardData{BoardID: boardID},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	boardID, token, err := h.board.Login(body.BoardName, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Logged in",
		Data:   api.LoginData{BoardID: boardID, AccessToken: token},
	})
}

func (h *Handler) ValidateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.ValidateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.board.ValidateCredentials(body.BoardName, body.Password); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Board name and password pass validation",
		Data:   api.ValidateData{IsPass: true},
	})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "board_id")

	view, err := h.board.Get(boardID, mw.BoardFromContext(r))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	memoList := make([]api.MemoSummary, len(view.Memos))
	for i, m := range view.Memos {
		memoList[i] = api.MemoSummary{MemoID: m.Id, LocateIdx: m.LocateIdx, BgNum: m.BgNum}
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Board",
		Data: api.BoardData{
			IsSelf:    view.IsSelf,
			BoardName: view.Name,
			BgNum:     view.BgNum,
			MemoList:  memoList,
		},
	})
}

func (h *Handler) CheckGraduation(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "board_id")

	if err := h.board.CheckGraduation(boardID); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{Detail: "Board has graduated"})
}
