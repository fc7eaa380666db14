package setup

import (
	"context"

	"github.com/itchan-dev/imageboard/backend/internal/handler"
	"github.com/itchan-dev/imageboard/backend/internal/service"
	"github.com/itchan-dev/imageboard/backend/internal/storage/fs"
	"github.com/itchan-dev/imageboard/backend/internal/storage/pg"
	"github.com/itchan-dev/imageboard/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.Private.Pg)
	if err != nil {
		return nil, err
	}

	blobs, err := fs.New(cfg.Public.Media.Path)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	ingestor := service.NewIngestor(blobs, cfg.Public.Media)
	board := service.NewBoard(storage)
	thread := service.NewThread(storage, ingestor)
	comment := service.NewComment(storage, ingestor)

	h := handler.New(board, thread, comment, ingestor, storage, cfg.Public.MaxRequestSize)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
	}, nil
}

// Cleanup releases what SetupDependencies acquired.
func (d *Dependencies) Cleanup() error {
	return d.Storage.Cleanup()
}
