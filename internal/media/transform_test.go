package media

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, image.White.C)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer(1200, 80)

	t.Run("oversized image is capped at max width", func(t *testing.T) {
		out, err := tr.Transform(encodePNG(t, 2400, 1600))
		require.NoError(t, err)

		w, h := decodeSize(t, out)
		assert.Equal(t, 1200, w)
		assert.InDelta(t, 800, h, 1)
	})

	t.Run("small image keeps its dimensions", func(t *testing.T) {
		out, err := tr.Transform(encodePNG(t, 640, 480))
		require.NoError(t, err)

		w, h := decodeSize(t, out)
		assert.Equal(t, 640, w)
		assert.Equal(t, 480, h)
	})

	t.Run("exact width is not resized", func(t *testing.T) {
		out, err := tr.Transform(encodePNG(t, 1200, 900))
		require.NoError(t, err)

		w, _ := decodeSize(t, out)
		assert.Equal(t, 1200, w)
	})

	t.Run("undecodable input is a typed error", func(t *testing.T) {
		_, err := tr.Transform([]byte("not an image"))
		require.Error(t, err)

		var terr *TransformError
		assert.True(t, errors.As(err, &terr))
		assert.Equal(t, "decode", terr.Op)
	})

	t.Run("output is jpeg", func(t *testing.T) {
		out, err := tr.Transform(encodePNG(t, 100, 100))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(out), 2)
		assert.Equal(t, []byte{0xFF, 0xD8}, out[:2])
	})
}

func TestIsRaster(t *testing.T) {
	assert.True(t, IsRaster("image/jpeg"))
	assert.True(t, IsRaster("image/png"))
	assert.False(t, IsRaster("image/svg+xml"))
	assert.False(t, IsRaster("application/zip"))
	assert.False(t, IsRaster("video/mp4"))
}
