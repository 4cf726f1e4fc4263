package media

import (
	"bytes"
	"context"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

type Anchor string

const (
	AnchorCenter      Anchor = "center"
	AnchorTopLeft     Anchor = "top_left"
	AnchorTopRight    Anchor = "top_right"
	AnchorBottomLeft  Anchor = "bottom_left"
	AnchorBottomRight Anchor = "bottom_right"
)

type (
	// Overlay is one decoded watermark with its placement rules. The
	// rendered width is a fraction of the source width, capped at the
	// overlay's native resolution so marks are never upsampled.
	Overlay struct {
		Name          string
		Image         image.Image
		Anchor        Anchor
		WidthFraction float64
	}

	// OverlayProvider yields the current overlay set. Implementations may
	// cache; callers must not mutate the returned slice.
	OverlayProvider interface {
		Overlays(ctx context.Context) ([]Overlay, error)
	}

	// Compositor stamps every configured overlay onto an image buffer in a
	// single flattened pass. Watermarking is cosmetic: any failure returns
	// the input buffer unchanged and the upload proceeds.
	Compositor struct {
		provider OverlayProvider
		quality  int
		logger   *zap.Logger
	}
)

func NewCompositor(provider OverlayProvider, quality int, logger *zap.Logger) *Compositor {
	return &Compositor{provider: provider, quality: quality, logger: logger}
}

// Apply composites the overlay set onto data and re-encodes. Best effort by
// design: errors are logged and the pre-watermark buffer is returned.
func (c *Compositor) Apply(ctx context.Context, data []byte) []byte {
	overlays, err := c.provider.Overlays(ctx)
	if err != nil {
		c.logger.Warn("watermark overlays unavailable", zap.Error(err))
		return data
	}
	if len(overlays) == 0 {
		return data
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("watermark decode failed", zap.Error(err))
		return data
	}

	out := Composite(src, overlays)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		c.logger.Warn("watermark encode failed", zap.Error(err))
		return data
	}

	return buf.Bytes()
}

// Composite renders every overlay onto src at its anchor. The output keeps
// the source dimensions.
func Composite(src image.Image, overlays []Overlay) *image.NRGBA {
	out := imaging.Clone(src)
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	for _, ov := range overlays {
		w := OverlayWidth(srcW, ov)
		if w < 1 {
			continue
		}

		mark := ov.Image
		if w != mark.Bounds().Dx() {
			mark = imaging.Resize(mark, w, 0, imaging.Lanczos)
		}

		pt := anchorPoint(srcW, srcH, mark.Bounds().Dx(), mark.Bounds().Dy(), ov.Anchor)
		out = imaging.Overlay(out, mark, pt, 1.0)
	}

	return out
}

// OverlayWidth is min(floor(srcWidth*fraction), native overlay width).
func OverlayWidth(srcWidth int, ov Overlay) int {
	w := int(math.Floor(float64(srcWidth) * ov.WidthFraction))
	if native := ov.Image.Bounds().Dx(); w > native {
		w = native
	}
	return w
}

func anchorPoint(srcW, srcH, markW, markH int, a Anchor) image.Point {
	switch a {
	case AnchorTopLeft:
		return image.Pt(0, 0)
	case AnchorTopRight:
		return image.Pt(srcW-markW, 0)
	case AnchorBottomLeft:
		return image.Pt(0, srcH-markH)
	case AnchorBottomRight:
		return image.Pt(srcW-markW, srcH-markH)
	default:
		return image.Pt((srcW-markW)/2, (srcH-markH)/2)
	}
}
