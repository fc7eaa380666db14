package api

import (
	"github.com/itchan-dev/imageboard/shared/domain"
)

// Request DTOs

// CreateThreadRequest is the "data" part of a thread creation upload.
// The media part is required and travels next to it.
type CreateThreadRequest struct {
	Subject   *string `json:"sub"`
	Text      *string `json:"com"`
	Board     string  `json:"board" validate:"notblank,max=5"`
	Alias     *string `json:"alias" validate:"omitempty,max=100"`
	MediaDesc *string `json:"media_desc" validate:"omitempty,max=100"`
}

// Response DTOs

// ThreadListResponse wraps the threads of a board with their counters
type ThreadListResponse struct {
	Threads []domain.ThreadSummary `json:"threads"`
}

// ThreadResponse wraps every post of a thread, root first
type ThreadResponse struct {
	Posts []domain.Comment `json:"posts"`
}
