package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/imageboard/shared/domain"
)

const boardColumns = `code, name, description, max_threads, max_replies, max_img_replies,
	max_sub_len, max_com_len, max_file_size, is_nsfw, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(row scanner) (*domain.Board, error) {
	var b domain.Board
	err := row.Scan(&b.Code, &b.Name, &b.Desc, &b.MaxThreads, &b.MaxReplies, &b.MaxImgReplies,
		&b.MaxSubLen, &b.MaxComLen, &b.MaxFileSize, &b.IsNSFW, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Storage) CreateBoard(ctx context.Context, data *domain.BoardCreationData) (*domain.Board, error) {
	row := s.db.QueryRowContext(ctx, `
	INSERT INTO boards(code, name, description, max_threads, max_replies, max_img_replies,
		max_sub_len, max_com_len, max_file_size, is_nsfw)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING `+boardColumns,
		data.Code, data.Name, data.Desc, data.MaxThreads, data.MaxReplies, data.MaxImgReplies,
		data.MaxSubLen, data.MaxComLen, data.MaxFileSize, data.IsNSFW)
	board, err := scanBoard(row)
	if err != nil {
		return nil, wrap("create board", fmt.Sprintf("board %s", data.Code), err)
	}
	return board, nil
}

func (s *Storage) GetBoard(ctx context.Context, code domain.BoardCode) (*domain.Board, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+boardColumns+` FROM boards WHERE code = $1`, code)
	board, err := scanBoard(row)
	if err != nil {
		return nil, wrap("get board", fmt.Sprintf("board %s", code), err)
	}
	return board, nil
}

// GetBoards returns every board ordered by code.
func (s *Storage) GetBoards(ctx context.Context) ([]domain.Board, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+boardColumns+` FROM boards ORDER BY code`)
	if err != nil {
		return nil, wrap("get boards", "boards", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, wrap("get boards", "boards", err)
		}
		boards = append(boards, *board)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get boards", "boards", err)
	}
	return boards, nil
}

// CountThreads returns the number of threads on a board.
func (s *Storage) CountThreads(ctx context.Context, board domain.BoardCode) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE board = $1 AND op IS NULL`, board).Scan(&n)
	if err != nil {
		return 0, wrap("count threads", fmt.Sprintf("board %s", board), err)
	}
	return n, nil
}
