package handler

import (
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/imageboard/shared/utils"
)

// GetMedia serves an original or a thumbnail. The content type comes from
// the stored bytes; names are random and blobs never change, so responses
// are cacheable forever.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	data, err := h.media.Read(r.Context(), chi.URLParam(r, "file_name"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	headers := w.Header()
	headers.Set("Content-Type", mimetype.Detect(data).String())
	headers.Set("Content-Length", strconv.Itoa(len(data)))
	headers.Set("X-Content-Type-Options", "nosniff")
	headers.Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
