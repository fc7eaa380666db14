package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

// parseIdParam reads a positive integer URL parameter. Anything else cannot
// name an existing row, so it is reported as not found.
func parseIdParam(r *http.Request, name string) (int64, error) {
	param := chi.URLParam(r, name)
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("%s %q: %w", name, param, internal_errors.NotFound)
	}
	return val, nil
}
