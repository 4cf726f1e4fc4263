package media

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// garble mimics a multipart layer that decoded UTF-8 bytes as latin-1: every
// byte of the real name becomes one rune.
func garble(name string) string {
	runes := make([]rune, 0, len(name))
	for _, b := range []byte(name) {
		runes = append(runes, rune(b))
	}
	return string(runes)
}

func TestRepairFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain ascii unchanged",
			in:   "floorplan.jpg",
			want: "floorplan.jpg",
		},
		{
			name: "garbled korean repaired",
			in:   garble("한글.jpg"),
			want: "한글.jpg",
		},
		{
			name: "proper utf-8 kept",
			in:   "한글.jpg",
			want: "한글.jpg",
		},
		{
			// latin-1 encodable but the raw bytes are not valid UTF-8
			name: "accented latin kept",
			in:   "café.jpg",
			want: "café.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairFilename(tt.in))
		})
	}
}

func TestNamer_Normalize(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	n := &Namer{now: func() time.Time { return fixed }}

	t.Run("key shape and display round-trip", func(t *testing.T) {
		nn := n.Normalize("한글 현장.jpg")

		assert.Equal(t, "한글 현장.jpg", nn.DisplayName)
		assert.True(t, strings.HasSuffix(nn.StorageKey, ".jpg"))
		assert.Contains(t, nn.StorageKey, "_1700000000000_")

		base, err := DisplayBaseFromKey(nn.StorageKey)
		require.NoError(t, err)
		assert.Equal(t, "한글 현장", base)
	})

	t.Run("garbled upload name round-trips through repair", func(t *testing.T) {
		nn := n.Normalize(garble("매물사진.png"))
		assert.Equal(t, "매물사진.png", nn.DisplayName)
	})

	t.Run("keys are unique within one batch", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			nn := n.Normalize("same.jpg")
			_, dup := seen[nn.StorageKey]
			assert.False(t, dup, "duplicate key %q", nn.StorageKey)
			seen[nn.StorageKey] = struct{}{}
		}
	})

	t.Run("key charset is url-safe", func(t *testing.T) {
		nn := n.Normalize("집 사진 (최종)?.png")
		assert.NotContains(t, nn.StorageKey, " ")
		assert.NotContains(t, nn.StorageKey, "?")
		assert.NotContains(t, nn.StorageKey, "(")
	})

	t.Run("extension is lowered and sanitized", func(t *testing.T) {
		nn := n.Normalize("SCAN.JPG")
		assert.True(t, strings.HasSuffix(nn.StorageKey, ".jpg"))
	})

	t.Run("empty base falls back to opaque name", func(t *testing.T) {
		nn := n.Normalize(".jpg")
		assert.True(t, strings.HasSuffix(nn.StorageKey, ".jpg"))
		base, err := DisplayBaseFromKey(nn.StorageKey)
		require.NoError(t, err)
		assert.NotEmpty(t, base)
	})
}
