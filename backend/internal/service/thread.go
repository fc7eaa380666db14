package service

import (
	"context"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
	"github.com/itchan-dev/imageboard/shared/validation"
)

type ThreadService interface {
	Create(ctx context.Context, req api.CreateThreadRequest, upload *validation.Upload) (*domain.Comment, error)
	GetAll(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error)
	Get(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error)
}

type Thread struct {
	storage  ThreadStorage
	ingestor MediaIngestor
}

type ThreadStorage interface {
	GetBoard(ctx context.Context, code domain.BoardCode) (*domain.Board, error)
	CountThreads(ctx context.Context, board domain.BoardCode) (int64, error)
	CreateComment(ctx context.Context, data *domain.CommentCreationData) (*domain.Comment, error)
	GetThreads(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error)
	GetThread(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error)
}

func NewThread(storage ThreadStorage, ingestor MediaIngestor) ThreadService {
	return &Thread{storage, ingestor}
}

// Create opens a thread. Threads always carry media.
func (t *Thread) Create(ctx context.Context, req api.CreateThreadRequest, upload *validation.Upload) (*domain.Comment, error) {
	form, err := validation.Thread(req)
	if err != nil {
		return nil, err
	}
	board, err := t.storage.GetBoard(ctx, form.Board)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, &internal_errors.ValidationError{Field: "media", Message: "a thread must start with media"}
	}

	if err := checkLength("sub", form.SubjectLen, board.MaxSubLen); err != nil {
		return nil, err
	}
	if err := checkLength("com", form.TextLen, board.MaxComLen); err != nil {
		return nil, err
	}
	if err := checkFileSize(int64(len(upload.Data)), board.MaxFileSize); err != nil {
		return nil, err
	}
	if board.MaxThreads > 0 {
		count, err := t.storage.CountThreads(ctx, board.Code)
		if err != nil {
			return nil, err
		}
		if err := checkCount("board", "thread", count, board.MaxThreads); err != nil {
			return nil, err
		}
	}

	media, err := t.ingestor.Ingest(ctx, upload.Data)
	if err != nil {
		return nil, err
	}
	media.FileName = validation.FileName(upload.FileName)
	media.Desc = form.MediaDesc

	thread, err := t.storage.CreateComment(ctx, &domain.CommentCreationData{
		Board:   board.Code,
		Alias:   form.Alias,
		Subject: form.Subject,
		Text:    form.Text,
		Media:   media,
	})
	if err != nil {
		t.ingestor.Discard(ctx, media)
		return nil, err
	}
	return thread, nil
}

// GetAll lists the threads of an existing board with their counters.
func (t *Thread) GetAll(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error) {
	if _, err := t.storage.GetBoard(ctx, board); err != nil {
		return nil, err
	}
	return t.storage.GetThreads(ctx, board)
}

// Get returns the root of a thread followed by its replies.
func (t *Thread) Get(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error) {
	return t.storage.GetThread(ctx, board, id)
}
