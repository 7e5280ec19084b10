package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"golang.org/x/image/draw"
)

type ImageOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

var DefaultImageOptions = ImageOptions{MaxW: 1600, MaxH: 1600, Quality: 80}

// maxPixels bounds the decoded size of an uploaded image. Headers are checked
// before decoding, since the decoder allocates the full pixel buffer up front.
const maxPixels = 40_000_000

// FileStore keeps uploads on local disk under dir and serves them from
// urlPrefix. Images are re-encoded to webp; other files are stored verbatim.
type FileStore struct {
	dir       string
	urlPrefix string
	opts      ImageOptions
	log       zerolog.Logger
}

func NewFileStore(dir, urlPrefix string, opts ImageOptions, log zerolog.Logger) *FileStore {
	return &FileStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		opts:      opts,
		log:       log.With().Str("component", "file_store").Logger(),
	}
}

func (s *FileStore) Save(ctx context.Context, folder string, upload domain.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, ext, err := s.normalise(upload.Data)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dir := filepath.Join(s.dir, folder)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	s.log.Debug().Str("folder", folder).Str("file", name).Int("bytes", len(data)).Msg("upload stored")

	return path.Join(s.urlPrefix, folder, name), nil
}

func (s *FileStore) normalise(data []byte) ([]byte, string, error) {
	mt := mimetype.Detect(data)

	var decode func([]byte) (image.Image, error)
	var decodeConfig func([]byte) (image.Config, error)
	switch {
	case mt.Is("image/jpeg"):
		decode = func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) }
		decodeConfig = func(b []byte) (image.Config, error) { return jpeg.DecodeConfig(bytes.NewReader(b)) }
	case mt.Is("image/png"):
		decode = func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) }
		decodeConfig = func(b []byte) (image.Config, error) { return png.DecodeConfig(bytes.NewReader(b)) }
	case mt.Is("image/webp"):
		decode = func(b []byte) (image.Image, error) { return webp.Decode(bytes.NewReader(b)) }
		decodeConfig = func(b []byte) (image.Config, error) { return webp.DecodeConfig(bytes.NewReader(b)) }
	default:
		return data, mt.Extension(), nil
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unreadable image: %v", domain.ErrValidation, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, "", fmt.Errorf("%w: image dimensions %dx%d exceed %d pixels", domain.ErrValidation, cfg.Width, cfg.Height, maxPixels)
	}

	img, err := decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unreadable image: %v", domain.ErrValidation, err)
	}

	var buf bytes.Buffer
	img = downscale(img, s.opts.MaxW, s.opts.MaxH)
	if err := webp.Encode(&buf, img, &webp.Options{Quality: s.opts.Quality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode webp: %w", err)
	}

	return buf.Bytes(), ".webp", nil
}

// downscale keeps the aspect ratio and never enlarges.
func downscale(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 && h > maxH {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	if scale == 1.0 {
		return src
	}

	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Delete removes a file previously returned by Save. Unknown files are
// ignored; URLs outside the store are rejected.
func (s *FileStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || rel == "" {
		return fmt.Errorf("url %q is not served by this store", url)
	}

	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("url %q escapes the upload folder", url)
	}

	if err := os.Remove(filepath.Join(s.dir, clean)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}
