package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/utils"
	"github.com/itchan-dev/imageboard/shared/validation"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	upload, err := validation.DecodeRequest[api.CreateThreadRequest](w, r, h.maxRequestSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(r.Context(), upload.Data, upload.Media)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, thread)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	posts, err := h.thread.Get(r.Context(), chi.URLParam(r, "board"), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{Posts: posts})
}
