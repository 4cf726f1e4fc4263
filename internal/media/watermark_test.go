package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func overlayOf(w, h int, anchor Anchor, frac float64) Overlay {
	return Overlay{
		Name:          "logo",
		Image:         imaging.New(w, h, image.Black.C),
		Anchor:        anchor,
		WidthFraction: frac,
	}
}

func TestOverlayWidth(t *testing.T) {
	tests := []struct {
		name   string
		srcW   int
		native int
		frac   float64
		want   int
	}{
		{"half of source", 1000, 900, 0.5, 500},
		{"clamped to native", 1000, 300, 0.5, 300},
		{"floor rounding", 333, 900, 0.5, 166},
		{"full width", 800, 900, 1.0, 800},
		{"tiny source", 1, 900, 0.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov := overlayOf(tt.native, tt.native/3+1, AnchorCenter, tt.frac)
			assert.Equal(t, tt.want, OverlayWidth(tt.srcW, ov))
		})
	}
}

func TestComposite(t *testing.T) {
	t.Run("keeps source dimensions", func(t *testing.T) {
		src := imaging.New(400, 300, image.White.C)
		out := Composite(src, []Overlay{
			overlayOf(200, 100, AnchorCenter, 0.5),
			overlayOf(200, 100, AnchorBottomRight, 0.3),
		})
		assert.Equal(t, 400, out.Bounds().Dx())
		assert.Equal(t, 300, out.Bounds().Dy())
	})

	t.Run("darkens pixels under the mark", func(t *testing.T) {
		src := imaging.New(400, 300, image.White.C)
		out := Composite(src, []Overlay{overlayOf(200, 100, AnchorCenter, 0.5)})

		r, g, b, _ := out.At(200, 150).RGBA()
		assert.Less(t, r+g+b, uint32(3*0xffff), "center pixel should carry the mark")

		r, g, b, _ = out.At(2, 2).RGBA()
		assert.Equal(t, uint32(3*0xffff), r+g+b, "corner pixel should stay white")
	})

	t.Run("zero-width overlay is skipped", func(t *testing.T) {
		src := imaging.New(2, 2, image.White.C)
		out := Composite(src, []Overlay{overlayOf(100, 50, AnchorCenter, 0.1)})
		r, g, b, _ := out.At(1, 1).RGBA()
		assert.Equal(t, uint32(3*0xffff), r+g+b)
	})
}

type failingProvider struct{}

func (failingProvider) Overlays(context.Context) ([]Overlay, error) {
	return nil, errors.New("boom")
}

func TestCompositor_Apply(t *testing.T) {
	logger := zap.NewNop()

	t.Run("provider error returns input unchanged", func(t *testing.T) {
		c := NewCompositor(failingProvider{}, 80, logger)
		in := []byte("payload")
		assert.Equal(t, in, c.Apply(context.Background(), in))
	})

	t.Run("no overlays returns input unchanged", func(t *testing.T) {
		c := NewCompositor(NewStaticProvider(nil), 80, logger)
		in := []byte("payload")
		assert.Equal(t, in, c.Apply(context.Background(), in))
	})

	t.Run("undecodable input returns input unchanged", func(t *testing.T) {
		c := NewCompositor(NewStaticProvider([]Overlay{overlayOf(10, 10, AnchorCenter, 0.5)}), 80, logger)
		in := []byte("not an image")
		assert.Equal(t, in, c.Apply(context.Background(), in))
	})

	t.Run("marks a decodable image", func(t *testing.T) {
		c := NewCompositor(NewStaticProvider([]Overlay{overlayOf(100, 50, AnchorCenter, 0.5)}), 80, logger)

		src := imaging.New(200, 200, image.White.C)
		var buf bytes.Buffer
		require.NoError(t, imaging.Encode(&buf, src, imaging.PNG))

		out := c.Apply(context.Background(), buf.Bytes())
		require.NotEqual(t, buf.Bytes(), out)
		assert.Equal(t, []byte{0xFF, 0xD8}, out[:2], "re-encoded as jpeg")
	})
}

type countingSource struct {
	calls  int
	assets []OverlayAsset
	err    error
}

func (s *countingSource) FetchOverlayAssets(context.Context) ([]OverlayAsset, error) {
	s.calls++
	return s.assets, s.err
}

func pngAsset(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(20, 10, image.Black.C), imaging.PNG))
	return buf.Bytes()
}

func TestCachedProvider(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("caches between fetches", func(t *testing.T) {
		src := &countingSource{assets: []OverlayAsset{{
			Name:          "logo",
			Data:          pngAsset(t),
			Anchor:        AnchorCenter,
			WidthFraction: 0.5,
		}}}
		p := NewCachedProvider(src, time.Hour, logger)

		first, err := p.Overlays(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		_, err = p.Overlays(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		src := &countingSource{}
		p := NewCachedProvider(src, time.Hour, logger)

		_, err := p.Overlays(ctx)
		require.NoError(t, err)
		p.Invalidate()
		_, err = p.Overlays(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("undecodable asset is skipped", func(t *testing.T) {
		src := &countingSource{assets: []OverlayAsset{{
			Name: "broken",
			Data: []byte("junk"),
		}}}
		p := NewCachedProvider(src, time.Hour, logger)

		ovs, err := p.Overlays(ctx)
		require.NoError(t, err)
		assert.Empty(t, ovs)
	})
}
