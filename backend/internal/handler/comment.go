package handler

import (
	"net/http"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/utils"
	"github.com/itchan-dev/imageboard/shared/validation"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	upload, err := validation.DecodeRequest[api.CreateCommentRequest](w, r, h.maxRequestSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Create(r.Context(), upload.Data, upload.Media)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, comment)
}
