package ports

import (
	"context"
	"mime/multipart"

	"realty-office-api/internal/domain/attachment"
)

// UploadPipeline turns the raw file parts of one request into terminal
// attachment refs: normalize name, transform, watermark, upload. All-or-
// nothing: one fatal upload failure fails the whole batch before any record
// is written.
type UploadPipeline interface {
	Process(ctx context.Context, files []*multipart.FileHeader) ([]attachment.Ref, error)
}
