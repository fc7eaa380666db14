package handler

import (
	"context"

	"github.com/itchan-dev/imageboard/backend/internal/service"
	"github.com/itchan-dev/imageboard/shared/domain"
)

// MediaReader serves stored originals and thumbnails.
type MediaReader interface {
	Read(ctx context.Context, name domain.MediaName) ([]byte, error)
}

// HealthChecker reports whether the content store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board          service.BoardService
	thread         service.ThreadService
	comment        service.CommentService
	media          MediaReader
	health         HealthChecker
	maxRequestSize int64
}

func New(
	board service.BoardService,
	thread service.ThreadService,
	comment service.CommentService,
	media MediaReader,
	health HealthChecker,
	maxRequestSize int64,
) *Handler {
	return &Handler{
		board:          board,
		thread:         thread,
		comment:        comment,
		media:          media,
		health:         health,
		maxRequestSize: maxRequestSize,
	}
}
