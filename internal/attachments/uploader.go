package attachments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

var (
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrTooLarge        = errors.New("file too large")
)

var allowedExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
	"pdf": true, "doc": true, "docx": true,
}

var rasterExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Options struct {
	MaxBytes     int64
	MaxDimension int
	Quality      float32
}

// Uploader validates incoming files, normalises raster images to WebP and
// hands the result to a Storage.
type Uploader struct {
	storage Storage
	opts    Options
	log     *slog.Logger
}

func NewUploader(storage Storage, opts Options, log *slog.Logger) *Uploader {
	return &Uploader{storage: storage, opts: opts, log: log}
}

// Save stores fh under folder and returns its public path.
func (u *Uploader) Save(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	name := sanitize(fh.Filename)
	ext := extension(name)
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, fh.Filename)
	}
	if u.opts.MaxBytes > 0 && fh.Size > u.opts.MaxBytes {
		return "", ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	body, err := readLimited(f, u.opts.MaxBytes)
	if err != nil {
		return "", err
	}

	contentType := http.DetectContentType(body)
	if rasterExtensions[ext] {
		if converted, err := u.toWebP(body); err == nil {
			body = converted
			contentType = "image/webp"
			name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		} else {
			u.log.WarnContext(ctx, "image conversion failed, storing original", "file", name, "error", err)
		}
	}

	key := folder + "/" + strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + name
	return u.storage.Put(ctx, key, body, contentType)
}

func (u *Uploader) toWebP(body []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	img = fit(img, u.opts.MaxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: u.opts.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit scales img down so neither side exceeds limit. Smaller images are
// returned unchanged.
func fit(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if limit <= 0 || (w <= limit && h <= limit) {
		return img
	}

	nw, nh := limit, limit
	if w >= h {
		nh = h * limit / w
	} else {
		nw = w * limit / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, ErrTooLarge
	}
	return body, nil
}

func sanitize(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
