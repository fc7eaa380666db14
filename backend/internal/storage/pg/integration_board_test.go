package pg

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

func TestCreateBoard(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored row", func(t *testing.T) {
		testBegins := time.Now().Add(-time.Second)
		data := &domain.BoardCreationData{
			Code: generateCode(t), Name: "Random", Desc: "Anything goes",
			MaxThreads: 10, MaxReplies: 100, MaxImgReplies: 50,
			MaxSubLen: 80, MaxComLen: 2000, MaxFileSize: 1 << 20, IsNSFW: true,
		}

		board, err := storage.CreateBoard(ctx, data)

		require.NoError(t, err)
		assert.Equal(t, data.Code, board.Code)
		assert.Equal(t, "Random", board.Name)
		assert.Equal(t, "Anything goes", board.Desc)
		assert.Equal(t, int64(10), board.MaxThreads)
		assert.Equal(t, int64(100), board.MaxReplies)
		assert.Equal(t, int64(50), board.MaxImgReplies)
		assert.Equal(t, int64(80), board.MaxSubLen)
		assert.Equal(t, int64(2000), board.MaxComLen)
		assert.Equal(t, int64(1<<20), board.MaxFileSize)
		assert.True(t, board.IsNSFW)
		assert.True(t, board.CreatedAt.After(testBegins))
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		board := createTestBoard(t, nil)

		_, err := storage.CreateBoard(ctx, &domain.BoardCreationData{Code: board.Code, Name: "Other", Desc: "Other"})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, internal_errors.Status(err))
	})

	t.Run("negative limit violates check", func(t *testing.T) {
		_, err := storage.CreateBoard(ctx, &domain.BoardCreationData{Code: generateCode(t), Name: "n", Desc: "d", MaxThreads: -1})

		var storeErr *internal_errors.StoreError
		require.ErrorAs(t, err, &storeErr)
	})
}

func TestGetBoard(t *testing.T) {
	ctx := context.Background()
	created := createTestBoard(t, func(d *domain.BoardCreationData) { d.MaxReplies = 7 })

	t.Run("existing board", func(t *testing.T) {
		board, err := storage.GetBoard(ctx, created.Code)
		require.NoError(t, err)
		assert.Equal(t, created.Code, board.Code)
		assert.Equal(t, int64(7), board.MaxReplies)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := storage.GetBoard(ctx, "00000")
		assert.ErrorIs(t, err, internal_errors.NotFound)
	})
}

func TestGetBoards(t *testing.T) {
	ctx := context.Background()
	a := createTestBoard(t, nil)
	b := createTestBoard(t, nil)

	boards, err := storage.GetBoards(ctx)
	require.NoError(t, err)

	codes := make([]string, 0, len(boards))
	for _, board := range boards {
		codes = append(codes, board.Code)
	}
	assert.Contains(t, codes, a.Code)
	assert.Contains(t, codes, b.Code)
	assert.IsNonDecreasing(t, codes)
}

func TestPing(t *testing.T) {
	assert.NoError(t, storage.Ping(context.Background()))
}
