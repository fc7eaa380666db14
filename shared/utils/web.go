package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
	"github.com/itchan-dev/imageboard/shared/logger"
)

// WriteErrorAndStatusCode answers with the status of err. Server side
// failures are logged and answered with a generic message so no internal
// detail leaks to the client.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := internal_errors.Status(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// Decode reads a JSON body into body.
func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		if errors.Is(err, io.EOF) {
			return &internal_errors.ParseError{Part: "body", Err: errors.New("body is empty")}
		}
		return &internal_errors.ParseError{Part: "body", Err: err}
	}
	return nil
}
