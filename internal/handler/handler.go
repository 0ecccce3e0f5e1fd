package handler

import (
	"net/http"

	"github.com/memory-page/memoboard/internal/api"
	"github.com/memory-page/memoboard/internal/service"
	"github.com/memory-page/memoboard/internal/utils"
)

type Handler struct {
	board service.BoardService
	memo  service.MemoService
}

func New(board service.BoardService, memo service.MemoService) *Handler {
	return &Handler{board: board, memo: memo}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.Response{Detail: "I'm ready"})
}
