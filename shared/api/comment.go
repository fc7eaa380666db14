package api

// Request DTOs

// CreateCommentRequest is the "data" part of a reply upload. The media part
// is optional, but a reply needs either text or media.
type CreateCommentRequest struct {
	Op        int64   `json:"op" validate:"min=0"`
	Alias     *string `json:"alias" validate:"omitempty,max=100"`
	Text      *string `json:"com"`
	MediaDesc *string `json:"media_desc" validate:"omitempty,max=100"`
}
