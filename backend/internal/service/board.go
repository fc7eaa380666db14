package service

import (
	"context"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/domain"
	"github.com/itchan-dev/imageboard/shared/validation"
)

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, req api.CreateBoardRequest) (*domain.Board, error)
	GetAll(ctx context.Context) ([]domain.Board, error)
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, data *domain.BoardCreationData) (*domain.Board, error)
	GetBoards(ctx context.Context) ([]domain.Board, error)
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) Create(ctx context.Context, req api.CreateBoardRequest) (*domain.Board, error) {
	data, err := validation.Board(req)
	if err != nil {
		return nil, err
	}
	return b.storage.CreateBoard(ctx, data)
}

func (b *Board) GetAll(ctx context.Context) ([]domain.Board, error) {
	return b.storage.GetBoards(ctx)
}
