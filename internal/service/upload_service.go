package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"aventra/internal/storage"

	"github.com/google/uuid"
)

const (
	UploadURLPrefix = "/uploads/"
	sniffLen        = 512

	defaultPlaceholderWidth  = 600
	defaultPlaceholderHeight = 400
	maxPlaceholderSide       = 2000
	defaultPlaceholderText   = "Aventra"
)

// allowedImageTypes maps sniffed content types to their accepted file
// extensions; the first extension is canonical.
var allowedImageTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (*UploadResult, error)
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
	MaxSize() int64
}

type uploadService struct {
	store   storage.Storage
	maxSize int64
}

func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &uploadService{store: store, maxSize: maxSize}
}

func (s *uploadService) MaxSize() int64 { return s.maxSize }

// Upload sniffs the image type from the content, not the client's header,
// and stores the file under a random name keeping the original extension
// when it matches the content.
func (s *uploadService) Upload(ctx context.Context, filename string, r io.Reader, size int64) (*UploadResult, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return nil, invalidf("file too large (max %d MB)", s.maxSize/(1024*1024))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, invalidf("file is empty")
	}

	contentType := http.DetectContentType(head)
	exts, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, invalidf("unsupported file type, allowed: JPEG, PNG, GIF, WebP")
	}

	ext := exts[0]
	original := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if e == original {
			ext = original
		}
	}

	name := uuid.New().String() + ext
	body := io.MultiReader(bytes.NewReader(head), r)

	if err := s.store.Save(ctx, name, body, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &UploadResult{URL: UploadURLPrefix + name, Filename: name}, nil
}

func (s *uploadService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, storage.ObjectInfo{}, invalidf("invalid file name")
	}
	return s.store.Open(ctx, name)
}

func clampSide(v, def int) int {
	if v <= 0 {
		return def
	}
	if v > maxPlaceholderSide {
		return maxPlaceholderSide
	}
	return v
}

// PlaceholderSVG renders a grey w x h image with text centred on it.
func PlaceholderSVG(w, h int, text string) string {
	w = clampSide(w, defaultPlaceholderWidth)
	h = clampSide(h, defaultPlaceholderHeight)
	if strings.TrimSpace(text) == "" {
		text = defaultPlaceholderText
	}

	fontSize := h / 8
	if fontSize < 10 {
		fontSize = 10
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e2e8f0"/>`+
		`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" `+
		`font-family="sans-serif" font-size="%d" fill="#64748b">%s</text></svg>`,
		w, h, w, h, fontSize, html.EscapeString(text))
}
