package domain

import "time"

// Comment is the single post entity: a thread when Op is nil, a reply to
// thread Op otherwise.
type Comment struct {
	Id        CommentId  `json:"id"`
	Op        *CommentId `json:"op"`
	Board     BoardCode  `json:"board"`
	Alias     *string    `json:"alias"`
	Subject   *string    `json:"sub"`
	Text      *string    `json:"com"`
	Media     *Media     `json:"media,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c *Comment) IsThread() bool {
	return c.Op == nil
}

// to iterate thru layers: service -> storage
type CommentCreationData struct {
	Op      *CommentId
	Board   BoardCode // ignored for replies, they inherit the thread's board
	Alias   *string
	Subject *string
	Text    *string
	Media   *Media
}

// ThreadSummary is a thread root with counters aggregated over its replies.
type ThreadSummary struct {
	Comment
	Replies int64 `json:"replies"`
	Images  int64 `json:"images"`
}

// ThreadStats are the counters of one thread, used to enforce board limits.
type ThreadStats struct {
	Board   BoardCode
	Replies int64
	Images  int64
}
