package domain

type (
	BoardCode = string
	CommentId = int64
	MediaName = string
)
