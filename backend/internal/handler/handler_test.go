package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
	"github.com/itchan-dev/imageboard/shared/validation"
)

// --- Mocks ---

type MockBoardService struct {
	createFunc func(ctx context.Context, req api.CreateBoardRequest) (*domain.Board, error)
	getAllFunc func(ctx context.Context) ([]domain.Board, error)
}

func (m *MockBoardService) Create(ctx context.Context, req api.CreateBoardRequest) (*domain.Board, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Board{Code: req.Code}, nil
}

func (m *MockBoardService) GetAll(ctx context.Context) ([]domain.Board, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []domain.Board{}, nil
}

type MockThreadService struct {
	createFunc func(ctx context.Context, req api.CreateThreadRequest, upload *validation.Upload) (*domain.Comment, error)
	getAllFunc func(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error)
	getFunc    func(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error)
}

func (m *MockThreadService) Create(ctx context.Context, req api.CreateThreadRequest, upload *validation.Upload) (*domain.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req, upload)
	}
	return &domain.Comment{Id: 1, Board: req.Board}, nil
}

func (m *MockThreadService) GetAll(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, board)
	}
	return []domain.ThreadSummary{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, board, id)
	}
	return nil, internal_errors.NotFound
}

type MockCommentService struct {
	createFunc func(ctx context.Context, req api.CreateCommentRequest, upload *validation.Upload) (*domain.Comment, error)
}

func (m *MockCommentService) Create(ctx context.Context, req api.CreateCommentRequest, upload *validation.Upload) (*domain.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req, upload)
	}
	op := req.Op
	return &domain.Comment{Id: 2, Op: &op}, nil
}

type MockMediaReader struct {
	blobs map[string][]byte
}

func (m *MockMediaReader) Read(ctx context.Context, name domain.MediaName) ([]byte, error) {
	data, ok := m.blobs[name]
	if !ok {
		return nil, internal_errors.NotFound
	}
	return data, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

const testMaxRequestSize = 1 << 20

func newTestHandler() *Handler {
	return New(&MockBoardService{}, &MockThreadService{}, &MockCommentService{},
		&MockMediaReader{}, &MockHealthChecker{}, testMaxRequestSize)
}

// serve routes req the same way the real router does, so URL params resolve.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/boards", h.GetBoards)
	r.Get("/{board}", h.GetBoard)
	r.Get("/{board}/thread/{thread}", h.GetThread)
	r.Get("/media/{file_name}", h.GetMedia)
	r.Post("/create_board", h.CreateBoard)
	r.Post("/create_thread", h.CreateThread)
	r.Post("/create_comment", h.CreateComment)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type formPart struct {
	name     string
	filename string
	content  []byte
}

func multipartRequest(t *testing.T, url string, parts ...formPart) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, p := range parts {
		if p.filename != "" {
			fw, err := writer.CreateFormFile(p.name, p.filename)
			require.NoError(t, err)
			_, err = fw.Write(p.content)
			require.NoError(t, err)
			continue
		}
		require.NoError(t, writer.WriteField(p.name, string(p.content)))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
