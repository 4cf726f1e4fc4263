package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextMark(t *testing.T) {
	img, err := RenderTextMark("부동산공인중개사무소", 48, 128)
	require.NoError(t, err)

	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)

	wide, err := RenderTextMark("a much longer watermark text line", 48, 128)
	require.NoError(t, err)
	short, err := RenderTextMark("ab", 48, 128)
	require.NoError(t, err)
	assert.Greater(t, wide.Bounds().Dx(), short.Bounds().Dx())
}
