package service

import (
	"context"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/domain"
	"github.com/itchan-dev/imageboard/shared/validation"
)

type CommentService interface {
	Create(ctx context.Context, req api.CreateCommentRequest, upload *validation.Upload) (*domain.Comment, error)
}

type Comment struct {
	storage  CommentStorage
	ingestor MediaIngestor
}

type CommentStorage interface {
	GetBoard(ctx context.Context, code domain.BoardCode) (*domain.Board, error)
	ThreadStats(ctx context.Context, id domain.CommentId) (*domain.ThreadStats, error)
	CreateComment(ctx context.Context, data *domain.CommentCreationData) (*domain.Comment, error)
}

func NewComment(storage CommentStorage, ingestor MediaIngestor) CommentService {
	return &Comment{storage, ingestor}
}

// Create replies to a thread. The reply lands on the thread's board.
func (c *Comment) Create(ctx context.Context, req api.CreateCommentRequest, upload *validation.Upload) (*domain.Comment, error) {
	form, err := validation.Comment(req, upload != nil)
	if err != nil {
		return nil, err
	}
	stats, err := c.storage.ThreadStats(ctx, form.Op)
	if err != nil {
		return nil, err
	}
	board, err := c.storage.GetBoard(ctx, stats.Board)
	if err != nil {
		return nil, err
	}

	if err := checkLength("com", form.TextLen, board.MaxComLen); err != nil {
		return nil, err
	}
	if err := checkCount("op", "reply", stats.Replies, board.MaxReplies); err != nil {
		return nil, err
	}

	var media *domain.Media
	if upload != nil {
		if err := checkFileSize(int64(len(upload.Data)), board.MaxFileSize); err != nil {
			return nil, err
		}
		if err := checkCount("media", "image reply", stats.Images, board.MaxImgReplies); err != nil {
			return nil, err
		}
		media, err = c.ingestor.Ingest(ctx, upload.Data)
		if err != nil {
			return nil, err
		}
		media.FileName = validation.FileName(upload.FileName)
		media.Desc = form.MediaDesc
	}

	op := form.Op
	comment, err := c.storage.CreateComment(ctx, &domain.CommentCreationData{
		Op:    &op,
		Alias: form.Alias,
		Text:  form.Text,
		Media: media,
	})
	if err != nil {
		if media != nil {
			c.ingestor.Discard(ctx, media)
		}
		return nil, err
	}
	return comment, nil
}
