package media

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// TransformError marks a decode/resize/encode failure of a single file. The
// orchestrator recovers from it by uploading the pre-stage bytes.
type TransformError struct {
	Op  string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("image transform %s: %v", e.Op, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Transformer downscales oversized raster images and re-encodes them to JPEG
// at a fixed quality. Images at or under the width cap keep their dimensions;
// nothing is ever upscaled.
type Transformer struct {
	maxWidth int
	quality  int
}

func NewTransformer(maxWidth, quality int) *Transformer {
	return &Transformer{maxWidth: maxWidth, quality: quality}
}

// IsRaster reports whether the declared media type goes through the
// transform/watermark stages. Everything else passes the pipeline untouched.
func IsRaster(mediaType string) bool {
	if !strings.HasPrefix(mediaType, "image/") {
		return false
	}
	return !strings.HasPrefix(mediaType, "image/svg")
}

func (t *Transformer) Transform(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &TransformError{Op: "decode", Err: err}
	}

	if t.maxWidth > 0 && img.Bounds().Dx() > t.maxWidth {
		img = imaging.Resize(img, t.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return nil, &TransformError{Op: "encode", Err: err}
	}

	return buf.Bytes(), nil
}
