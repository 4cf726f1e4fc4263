package services

import (
	"bytes"
	"context"
	"image"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"realty-office-api/internal/media"
)

type fakeStorage struct {
	mu       sync.Mutex
	uploads  map[string][]byte
	types    map[string]string
	failName string // fail any key containing this substring
	removed  []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		uploads: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, contentType string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failName != "" && strings.Contains(key, f.failName) {
		return assert.AnError
	}
	f.uploads[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeStorage) SignedURL(_ context.Context, key string, _ time.Duration, _ string) (string, error) {
	return "https://cdn.example.com/" + key + "?signed", nil
}

func (f *fakeStorage) Remove(_ context.Context, keys []string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, keys...)
	return len(keys)
}

// fileHeaders round-trips in-memory parts through a real multipart body so
// the handlers under test see what the http server would hand them.
func fileHeaders(t *testing.T, parts map[string]struct {
	data []byte
	typ  string
}) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, part := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		h.Set("Content-Type", part.typ)
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(part.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, image.White.C), imaging.PNG))
	return buf.Bytes()
}

func newPipeline(store *fakeStorage, maxFiles int) *UploadService {
	logger := zap.NewNop()
	return &UploadService{
		log:        logger,
		storage:    store,
		transform:  media.NewTransformer(1200, 80),
		compositor: media.NewCompositor(media.NewStaticProvider(nil), 80, logger),
		maxFiles:   maxFiles,
	}
}

func TestUploadService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		refs, err := newPipeline(newFakeStorage(), 10).Process(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("raster image is re-encoded and renamed to jpg", func(t *testing.T) {
		store := newFakeStorage()
		fhs := fileHeaders(t, map[string]struct {
			data []byte
			typ  string
		}{
			"현장사진.png": {pngBytes(t, 100, 100), "image/png"},
		})

		refs, err := newPipeline(store, 10).Process(ctx, fhs)
		require.NoError(t, err)
		require.Len(t, refs, 1)

		assert.True(t, strings.HasSuffix(refs[0].StorageKey, ".jpg"))
		assert.Equal(t, "image/jpeg", refs[0].MediaType)
		assert.Equal(t, "현장사진.png", refs[0].DisplayName)
		assert.Equal(t, "https://cdn.example.com/"+refs[0].StorageKey, refs[0].PublicURL)

		stored := store.uploads[refs[0].StorageKey]
		require.NotEmpty(t, stored)
		assert.Equal(t, []byte{0xFF, 0xD8}, stored[:2])
		assert.Equal(t, int64(len(stored)), refs[0].Size)
	})

	t.Run("non-raster file passes through untouched", func(t *testing.T) {
		store := newFakeStorage()
		payload := []byte("PK\x03\x04 archive bytes")
		fhs := fileHeaders(t, map[string]struct {
			data []byte
			typ  string
		}{
			"계약서.zip": {payload, "application/zip"},
		})

		refs, err := newPipeline(store, 10).Process(ctx, fhs)
		require.NoError(t, err)
		require.Len(t, refs, 1)

		assert.True(t, strings.HasSuffix(refs[0].StorageKey, ".zip"))
		assert.Equal(t, "application/zip", refs[0].MediaType)
		assert.Equal(t, payload, store.uploads[refs[0].StorageKey])
	})

	t.Run("broken image falls back to original bytes", func(t *testing.T) {
		store := newFakeStorage()
		payload := []byte("not really a png")
		fhs := fileHeaders(t, map[string]struct {
			data []byte
			typ  string
		}{
			"broken.png": {payload, "image/png"},
		})

		refs, err := newPipeline(store, 10).Process(ctx, fhs)
		require.NoError(t, err)
		require.Len(t, refs, 1)

		assert.True(t, strings.HasSuffix(refs[0].StorageKey, ".png"))
		assert.Equal(t, "image/png", refs[0].MediaType)
		assert.Equal(t, payload, store.uploads[refs[0].StorageKey])
	})

	t.Run("one upload failure fails the whole batch", func(t *testing.T) {
		store := newFakeStorage()
		store.failName = "bad"
		fhs := fileHeaders(t, map[string]struct {
			data []byte
			typ  string
		}{
			"good.zip": {[]byte("fine"), "application/zip"},
			"bad.zip":  {[]byte("doomed"), "application/zip"},
		})

		refs, err := newPipeline(store, 10).Process(ctx, fhs)
		require.Error(t, err)
		assert.Nil(t, refs)
	})

	t.Run("batch over the limit is rejected", func(t *testing.T) {
		fhs := fileHeaders(t, map[string]struct {
			data []byte
			typ  string
		}{
			"a.zip": {[]byte("a"), "application/zip"},
			"b.zip": {[]byte("b"), "application/zip"},
		})

		_, err := newPipeline(newFakeStorage(), 1).Process(ctx, fhs)
		require.ErrorIs(t, err, ErrTooManyFiles)
	})
}

func TestRewriteExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo_1700000000000_1.png", "photo_1700000000000_1.jpg"},
		{"noext_1700000000000_2", "noext_1700000000000_2.jpg"},
		{"dotted.name_1700000000000_3.webp", "dotted.name_1700000000000_3.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rewriteExt(tt.in, ".jpg"))
	}
}
