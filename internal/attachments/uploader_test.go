package attachments

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newUploader(t *testing.T, maxBytes int64) (*Uploader, string) {
	dir := t.TempDir()
	u := NewUploader(NewLocal(dir, "/uploads"), Options{
		MaxBytes:     maxBytes,
		MaxDimension: 32,
		Quality:      80,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return u, dir
}

func TestSaveDocumentAsIs(t *testing.T) {
	u, dir := newUploader(t, 1<<20)
	content := []byte("%PDF-1.4 contract")

	url, err := u.Save(context.Background(), "suppliers", fileHeader(t, "Supply Contract.pdf", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/suppliers/"))
	assert.True(t, strings.HasSuffix(url, "_Supply_Contract.pdf"))

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveImageIsDownscaledToWebP(t *testing.T) {
	u, dir := newUploader(t, 1<<20)

	url, err := u.Save(context.Background(), "flavors", fileHeader(t, "matcha.png", pngBytes(t, 64, 48)))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(url, "_matcha.webp"), url)

	f, err := os.Open(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	defer f.Close()

	cfg, err := webp.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	u, _ := newUploader(t, 1<<20)
	_, err := u.Save(context.Background(), "employees", fileHeader(t, "run.exe", []byte("MZ")))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	u, _ := newUploader(t, 8)
	_, err := u.Save(context.Background(), "suppliers", fileHeader(t, "big.pdf", bytes.Repeat([]byte("x"), 64)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "passwd", sanitize("../../etc/passwd"))
	assert.Equal(t, "my_photo.jpg", sanitize("my photo.jpg"))
	assert.Equal(t, "file", sanitize("..."))
	assert.Equal(t, "x.png", sanitize(`C:\Users\me\x.png`))
}

func TestFitKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, image.Image(img), fit(img, 32))
}
