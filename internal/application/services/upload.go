package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/domain/attachment"
	"realty-office-api/internal/media"
)

var ErrTooManyFiles = errors.New("too many files in one request")

// UploadService runs the normalize -> transform -> watermark -> upload chain
// for the files of one request. Transform failures degrade to the original
// bytes; upload failures abort the whole batch so no record ever points at a
// half-uploaded set.
type UploadService struct {
	log        *zap.Logger
	storage    ports.Storage
	transform  *media.Transformer
	compositor *media.Compositor
	maxFiles   int
}

func NewUploadService(
	logger *zap.Logger,
	storage ports.Storage,
	transform *media.Transformer,
	compositor *media.Compositor,
	maxFiles int,
) ports.UploadPipeline {
	return &UploadService{
		log:        logger,
		storage:    storage,
		transform:  transform,
		compositor: compositor,
		maxFiles:   maxFiles,
	}
}

func (us *UploadService) Process(ctx context.Context, files []*multipart.FileHeader) ([]attachment.Ref, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if us.maxFiles > 0 && len(files) > us.maxFiles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(files), us.maxFiles)
	}

	namer := media.NewNamer()
	refs := make([]attachment.Ref, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for idx, fh := range files {
		g.Go(func() error {
			ref, err := us.processOne(gctx, namer, fh)
			if err != nil {
				return err
			}
			refs[idx] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return refs, nil
}

func (us *UploadService) processOne(
	ctx context.Context,
	namer *media.Namer,
	fh *multipart.FileHeader,
) (attachment.Ref, error) {
	f, err := fh.Open()
	if err != nil {
		return attachment.Ref{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return attachment.Ref{}, err
	}

	nn := namer.Normalize(fh.Filename)
	key := nn.StorageKey
	mediaType := fh.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	if media.IsRaster(mediaType) {
		out, terr := us.transform.Transform(data)
		if terr != nil {
			// a broken image still uploads as-is
			us.log.Warn("image transform failed, storing original",
				zap.String("file", nn.DisplayName),
				zap.Error(terr),
			)
		} else {
			data = us.compositor.Apply(ctx, out)
			mediaType = "image/jpeg"
			key = rewriteExt(key, ".jpg")
		}
	}

	if err = us.storage.Upload(ctx, key, data, mediaType, false); err != nil {
		return attachment.Ref{}, err
	}

	return attachment.Ref{
		PublicURL:   us.storage.PublicURL(key),
		StorageKey:  key,
		DisplayName: nn.DisplayName,
		Size:        int64(len(data)),
		MediaType:   mediaType,
	}, nil
}

// rewriteExt swaps the trailing extension of a storage key. The key shape is
// `<base>_<millis>_<seq><ext>`; only text after the last dot of the final
// segment is replaced.
func rewriteExt(key, ext string) string {
	dot := strings.LastIndex(key, ".")
	under := strings.LastIndex(key, "_")
	if dot > under {
		key = key[:dot]
	}
	return key + ext
}
