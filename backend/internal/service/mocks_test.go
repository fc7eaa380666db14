package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

// MockStorage mocks the board, thread and comment storage interfaces.
type MockStorage struct {
	createBoardFunc   func(ctx context.Context, data *domain.BoardCreationData) (*domain.Board, error)
	getBoardFunc      func(ctx context.Context, code domain.BoardCode) (*domain.Board, error)
	getBoardsFunc     func(ctx context.Context) ([]domain.Board, error)
	countThreadsFunc  func(ctx context.Context, board domain.BoardCode) (int64, error)
	createCommentFunc func(ctx context.Context, data *domain.CommentCreationData) (*domain.Comment, error)
	getThreadsFunc    func(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error)
	getThreadFunc     func(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error)
	threadStatsFunc   func(ctx context.Context, id domain.CommentId) (*domain.ThreadStats, error)
}

func (m *MockStorage) CreateBoard(ctx context.Context, data *domain.BoardCreationData) (*domain.Board, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(ctx, data)
	}
	return &domain.Board{Code: data.Code, Name: data.Name, Desc: data.Desc}, nil
}

func (m *MockStorage) GetBoard(ctx context.Context, code domain.BoardCode) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(ctx, code)
	}
	return &domain.Board{Code: code}, nil
}

func (m *MockStorage) GetBoards(ctx context.Context) ([]domain.Board, error) {
	if m.getBoardsFunc != nil {
		return m.getBoardsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStorage) CountThreads(ctx context.Context, board domain.BoardCode) (int64, error) {
	if m.countThreadsFunc != nil {
		return m.countThreadsFunc(ctx, board)
	}
	return 0, nil
}

func (m *MockStorage) CreateComment(ctx context.Context, data *domain.CommentCreationData) (*domain.Comment, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(ctx, data)
	}
	return &domain.Comment{Id: 1, Op: data.Op, Board: data.Board, Text: data.Text, Media: data.Media}, nil
}

func (m *MockStorage) GetThreads(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error) {
	if m.getThreadsFunc != nil {
		return m.getThreadsFunc(ctx, board)
	}
	return nil, nil
}

func (m *MockStorage) GetThread(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(ctx, board, id)
	}
	return nil, nil
}

func (m *MockStorage) ThreadStats(ctx context.Context, id domain.CommentId) (*domain.ThreadStats, error) {
	if m.threadStatsFunc != nil {
		return m.threadStatsFunc(ctx, id)
	}
	return &domain.ThreadStats{Board: "b"}, nil
}

// MockIngestor mocks the MediaIngestor interface and records discards.
type MockIngestor struct {
	ingestFunc func(ctx context.Context, data []byte) (*domain.Media, error)
	ingested   int
	discarded  []*domain.Media
}

func (m *MockIngestor) Ingest(ctx context.Context, data []byte) (*domain.Media, error) {
	m.ingested++
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, data)
	}
	return &domain.Media{Name: "name", ThumbName: "namet", Size: int64(len(data))}, nil
}

func (m *MockIngestor) Discard(ctx context.Context, media *domain.Media) {
	m.discarded = append(m.discarded, media)
}

// memBlobs is an in-memory BlobStorage. Hooks fail selected calls.
type memBlobs struct {
	mu         sync.Mutex
	blobs      map[string][]byte
	writeFunc  func(name string) error
	deleteFunc func(ctx context.Context, name string) error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{blobs: make(map[string][]byte)}
}

func (m *memBlobs) Write(ctx context.Context, name string, data []byte) error {
	if m.writeFunc != nil {
		if err := m.writeFunc(name); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[name]; ok {
		return fmt.Errorf("blob %s already exists", name)
	}
	m.blobs[name] = append([]byte(nil), data...)
	return nil
}

func (m *memBlobs) Read(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[name]
	if !ok {
		return nil, internal_errors.NotFound
	}
	return data, nil
}

func (m *memBlobs) Delete(ctx context.Context, name string) error {
	if m.deleteFunc != nil {
		if err := m.deleteFunc(ctx, name); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, name)
	return nil
}

func (m *memBlobs) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}
