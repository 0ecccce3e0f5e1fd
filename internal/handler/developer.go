package handler

import (
	"net/http"

	"github.com/memory-page/memoboard/internal/api"
	"github.com/memory-page/memoboard/internal/utils"
)

var developers = api.DeveloperData{
	Developers: []api.Developer{
		{Name: "mseo39", Github: "https://github.com/mseo39"},
		{Name: "DevelopLee20", Github: "https://github.com/DevelopLee20"},
		{Name: "jeong011010", Github: "https://github.com/jeong011010"},
		{Name: "jiwoopark727", Github: "https://github.com/jiwoopark727"},
	},
	ContactEmail: "team@memory-page.dev",
}

func (h *Handler) Developers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.Response{Detail: "Developers", Data: developers})
}
