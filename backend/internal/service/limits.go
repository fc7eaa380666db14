package service

import (
	"fmt"

	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

// Board limits of zero mean unlimited.

func checkLength(field string, length, limit int64) error {
	if limit > 0 && length > limit {
		return &internal_errors.ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", limit)}
	}
	return nil
}

func checkFileSize(size, limit int64) error {
	if limit > 0 && size > limit {
		return &internal_errors.ValidationError{Field: "media", Message: fmt.Sprintf("must be at most %d bytes", limit)}
	}
	return nil
}

// checkCount rejects adding one more item when count already reached limit.
func checkCount(field, what string, count, limit int64) error {
	if limit > 0 && count >= limit {
		return &internal_errors.ValidationError{Field: field, Message: fmt.Sprintf("%s limit of %d reached", what, limit)}
	}
	return nil
}
