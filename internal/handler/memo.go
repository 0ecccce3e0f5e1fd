package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memory-page/memoboard/internal/api"
	mw "github.com/memory-page/memoboard/internal/middleware"
	"github.com/memory-page/memoboard/internal/utils"
)

func (h *Handler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "board_id")

	var body api.CreateMemoRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	memoID, err := h.memo.Create(boardID, body.LocateIdx, body.BgNum, body.Author, body.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Memo created",
		Data:   api.CreateMemoData{MemoID: memoID},
	})
}

func (h *Handler) ValidateMemo(w http.ResponseWriter, r *http.Request) {
	var body api.ValidateMemoRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.memo.Validate(body.Author, body.Content); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Author and content pass validation",
		Data:   api.ValidateData{IsPass: true},
	})
}

func (h *Handler) GetMemo(w http.ResponseWriter, r *http.Request) {
	memoID := chi.URLParam(r, "memo_id")

	memo, err := h.memo.Get(memoID, mw.BoardFromContext(r))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{
		Detail: "Memo",
		Data:   api.MemoData{Author: memo.Author, Content: memo.Content},
	})
}
