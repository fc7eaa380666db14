package pg

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

var commentFields = []string{
	"id", "op", "board", "alias", "sub", "com",
	"file_name", "media_name", "media_size", "media_ext", "media_desc", "media_hash",
	"thumb_name", "thumb_size", "created_at",
}

// commentColumns lists the comment columns, qualified by table alias t if set.
func commentColumns(t string) string {
	if t == "" {
		return strings.Join(commentFields, ", ")
	}
	qualified := make([]string, len(commentFields))
	for i, f := range commentFields {
		qualified[i] = t + "." + f
	}
	return strings.Join(qualified, ", ")
}

// scanComment reads commentColumns followed by extra destinations.
func scanComment(row scanner, extra ...any) (*domain.Comment, error) {
	var (
		c                                                   domain.Comment
		op, mediaSize, thumbSize                            sql.NullInt64
		alias, sub, com                                     sql.NullString
		fileName, mediaName, mediaExt, mediaDesc, mediaHash sql.NullString
		thumbName                                           sql.NullString
	)
	dest := []any{
		&c.Id, &op, &c.Board, &alias, &sub, &com,
		&fileName, &mediaName, &mediaSize, &mediaExt, &mediaDesc, &mediaHash,
		&thumbName, &thumbSize, &c.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if op.Valid {
		id := op.Int64
		c.Op = &id
	}
	c.Alias = nullable(alias)
	c.Subject = nullable(sub)
	c.Text = nullable(com)
	if mediaName.Valid {
		c.Media = &domain.Media{
			FileName:  fileName.String,
			Name:      mediaName.String,
			Size:      mediaSize.Int64,
			Ext:       mediaExt.String,
			Desc:      nullable(mediaDesc),
			Hash:      mediaHash.String,
			ThumbName: thumbName.String,
			ThumbSize: thumbSize.Int64,
		}
	}
	return &c, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// mediaArgs flattens media into the file_name..thumb_size columns.
func mediaArgs(m *domain.Media) []any {
	if m == nil {
		return []any{nil, nil, nil, nil, nil, nil, nil, nil}
	}
	return []any{m.FileName, m.Name, m.Size, m.Ext, m.Desc, m.Hash, m.ThumbName, m.ThumbSize}
}

// CreateComment inserts a thread when data.Op is nil and a reply otherwise.
// A reply is only inserted when its parent is a thread, and it takes the
// parent's board. A missing or non-thread parent yields NotFound.
func (s *Storage) CreateComment(ctx context.Context, data *domain.CommentCreationData) (*domain.Comment, error) {
	if data.Op == nil {
		args := append([]any{data.Board, data.Alias, data.Subject, data.Text}, mediaArgs(data.Media)...)
		row := s.db.QueryRowContext(ctx, `
		INSERT INTO comments(op, board, alias, sub, com,
			file_name, media_name, media_size, media_ext, media_desc, media_hash, thumb_name, thumb_size)
		VALUES(NULL, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+commentColumns(""), args...)
		thread, err := scanComment(row)
		if err != nil {
			return nil, wrap("create thread", fmt.Sprintf("board %s", data.Board), err)
		}
		return thread, nil
	}

	// Parameter types are spelled out: in INSERT ... SELECT they are not
	// inferred from the target columns.
	args := append([]any{*data.Op, data.Alias, data.Text}, mediaArgs(data.Media)...)
	row := s.db.QueryRowContext(ctx, `
	INSERT INTO comments(op, board, alias, sub, com,
		file_name, media_name, media_size, media_ext, media_desc, media_hash, thumb_name, thumb_size)
	SELECT t.id, t.board, $2::TEXT, NULL, $3::TEXT,
		$4::TEXT, $5::TEXT, $6::BIGINT, $7::TEXT, $8::TEXT, $9::TEXT, $10::TEXT, $11::BIGINT
	FROM comments t
	WHERE t.id = $1 AND t.op IS NULL
	RETURNING `+commentColumns(""), args...)
	reply, err := scanComment(row)
	if err != nil {
		return nil, wrap("create comment", fmt.Sprintf("thread %d", *data.Op), err)
	}
	return reply, nil
}

// GetThreads returns the threads of a board, newest first, with reply and
// image counts computed over their replies.
func (s *Storage) GetThreads(ctx context.Context, board domain.BoardCode) ([]domain.ThreadSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT `+commentColumns("c")+`, COUNT(r.id), COUNT(r.media_name)
	FROM comments c
	LEFT JOIN comments r ON r.op = c.id
	WHERE c.op IS NULL AND c.board = $1
	GROUP BY c.id
	ORDER BY c.id DESC`, board)
	if err != nil {
		return nil, wrap("get threads", fmt.Sprintf("board %s", board), err)
	}
	defer rows.Close()

	threads := []domain.ThreadSummary{}
	for rows.Next() {
		var summary domain.ThreadSummary
		c, err := scanComment(rows, &summary.Replies, &summary.Images)
		if err != nil {
			return nil, wrap("get threads", fmt.Sprintf("board %s", board), err)
		}
		summary.Comment = *c
		threads = append(threads, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get threads", fmt.Sprintf("board %s", board), err)
	}
	return threads, nil
}

// GetThread returns the thread root followed by its replies in id order.
func (s *Storage) GetThread(ctx context.Context, board domain.BoardCode, id domain.CommentId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT `+commentColumns("c")+`
	FROM comments c
	WHERE c.board = $1 AND ((c.id = $2 AND c.op IS NULL) OR c.op = $2)
	ORDER BY c.id`, board, id)
	if err != nil {
		return nil, wrap("get thread", fmt.Sprintf("thread %d", id), err)
	}
	defer rows.Close()

	var posts []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, wrap("get thread", fmt.Sprintf("thread %d", id), err)
		}
		posts = append(posts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get thread", fmt.Sprintf("thread %d", id), err)
	}
	if len(posts) == 0 || !posts[0].IsThread() {
		return nil, fmt.Errorf("thread %d: %w", id, internal_errors.NotFound)
	}
	return posts, nil
}

// ThreadStats returns the board and counters of a thread. Replies and
// unknown ids yield NotFound.
func (s *Storage) ThreadStats(ctx context.Context, id domain.CommentId) (*domain.ThreadStats, error) {
	var stats domain.ThreadStats
	err := s.db.QueryRowContext(ctx, `
	SELECT c.board, COUNT(r.id), COUNT(r.media_name)
	FROM comments c
	LEFT JOIN comments r ON r.op = c.id
	WHERE c.id = $1 AND c.op IS NULL
	GROUP BY c.id`, id).Scan(&stats.Board, &stats.Replies, &stats.Images)
	if err != nil {
		return nil, wrap("thread stats", fmt.Sprintf("thread %d", id), err)
	}
	return &stats, nil
}
