package service

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/itchan-dev/imageboard/backend/internal/service/utils"
	"github.com/itchan-dev/imageboard/shared/config"
	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
	"github.com/itchan-dev/imageboard/shared/logger"
	"github.com/itchan-dev/imageboard/shared/middleware/metrics"
)

// thumbSuffix turns an original's name into its thumbnail's name.
const thumbSuffix = "t"

// BlobStorage keeps uploaded bytes under opaque names.
type BlobStorage interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

// MediaIngestor turns an uploaded buffer into a stored original/thumbnail pair.
type MediaIngestor interface {
	Ingest(ctx context.Context, data []byte) (*domain.Media, error)
	// Discard removes the blobs of media that ended up unused.
	Discard(ctx context.Context, media *domain.Media)
}

type Ingestor struct {
	blobs     BlobStorage
	thumbnail utils.ThumbnailOptions
}

func NewIngestor(blobs BlobStorage, cfg config.Media) *Ingestor {
	return &Ingestor{
		blobs: blobs,
		thumbnail: utils.ThumbnailOptions{
			Size:           cfg.Thumbnail.Size,
			JPEGQuality:    cfg.Thumbnail.JPEGQuality,
			MaxDecodedSize: cfg.MaxDecodedImageSize,
		},
	}
}

// Ingest sniffs the buffer, renders its thumbnail, then writes the original
// and the thumbnail in that order. Nothing is written unless the thumbnail
// could be made. A failure of the second write leaves the original behind.
func (i *Ingestor) Ingest(ctx context.Context, data []byte) (*domain.Media, error) {
	if len(data) == 0 {
		metrics.ObserveIngestion(metrics.IngestEmpty)
		return nil, &internal_errors.ValidationError{Field: "media", Message: "must not be empty"}
	}

	mtype := mimetype.Detect(data)
	if !isBinary(mtype) {
		metrics.ObserveIngestion(metrics.IngestUnknownType)
		return nil, &internal_errors.UnknownMediaTypeError{Detected: mtype.String()}
	}

	thumb, err := utils.Thumbnail(data, i.thumbnail)
	if err != nil {
		metrics.ObserveIngestion(metrics.IngestThumbnail)
		return nil, &internal_errors.ThumbnailError{Err: err}
	}

	name := uuid.NewString()
	thumbName := name + thumbSuffix

	if err := i.blobs.Write(ctx, name, data); err != nil {
		metrics.ObserveIngestion(metrics.IngestStore)
		return nil, err
	}
	if err := i.blobs.Write(ctx, thumbName, thumb); err != nil {
		metrics.ObserveIngestion(metrics.IngestStore)
		logger.Log.Warn("original stored without thumbnail", "media", name, "error", err)
		return nil, err
	}
	metrics.ObserveIngestion(metrics.IngestOK)
	metrics.ObserveIngestedBytes(int64(len(data) + len(thumb)))

	sum := blake2b.Sum256(data)
	return &domain.Media{
		Name:      name,
		Size:      int64(len(data)),
		Ext:       strings.TrimPrefix(strings.ToLower(mtype.Extension()), "."),
		Hash:      hex.EncodeToString(sum[:]),
		ThumbName: thumbName,
		ThumbSize: int64(len(thumb)),
	}, nil
}

// Discard deletes both blobs of media. It runs after a failed insert, so it
// must not depend on the request still being alive.
func (i *Ingestor) Discard(ctx context.Context, media *domain.Media) {
	if media == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	err := errors.Join(
		i.blobs.Delete(ctx, media.Name),
		i.blobs.Delete(ctx, media.ThumbName),
	)
	if err != nil {
		logger.Log.Error("failed to discard media", "media", media.Name, "error", err)
	}
}

// Read returns a stored original or thumbnail.
func (i *Ingestor) Read(ctx context.Context, name domain.MediaName) ([]byte, error) {
	return i.blobs.Read(ctx, name)
}

// isBinary reports whether sniffing recognised a binary format. Text of any
// kind and unrecognised data are not media.
func isBinary(mtype *mimetype.MIME) bool {
	if mtype.Is("application/octet-stream") {
		return false
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return false
		}
	}
	return true
}
