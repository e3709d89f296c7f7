package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Per-category upload policy: MIME allow-list plus a size ceiling.
var uploadPolicies = map[string]struct {
	maxBytes int64
	mimes    map[string]string // content type → extension
}{
	"logo": {
		maxBytes: 2 << 20,
		mimes:    map[string]string{"image/png": ".png", "image/jpeg": ".jpg", "image/webp": ".webp"},
	},
	"photo": {
		maxBytes: 5 << 20,
		mimes:    map[string]string{"image/png": ".png", "image/jpeg": ".jpg", "image/webp": ".webp"},
	},
	"document": {
		maxBytes: 10 << 20,
		mimes: map[string]string{
			"image/png": ".png", "image/jpeg": ".jpg",
			"application/pdf": ".pdf",
		},
	},
}

type MediaHandler struct {
	dir string
}

func NewMediaHandler(dir string) *MediaHandler { return &MediaHandler{dir: dir} }

// Upload accepts one multipart file under "file" with a "category" form
// field and stores it under a random name.
func (h *MediaHandler) Upload(c echo.Context) error {
	category := c.FormValue("category")
	policy, ok := uploadPolicies[category]
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown upload category"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file"})
	}
	if fh.Size > policy.maxBytes {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()

	// Sniff the content type instead of trusting the client header.
	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	contentType := http.DetectContentType(head[:n])
	contentType = strings.SplitN(contentType, ";", 2)[0]
	ext, ok := policy.mimes[contentType]
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type"})
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}

	destDir := filepath.Join(h.dir, category)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	name := uuid.NewString() + ext
	destPath := filepath.Join(destDir, name)

	dst, err := os.Create(destPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(src, policy.maxBytes)); err != nil {
		_ = os.Remove(destPath)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"path": "/uploads/" + category + "/" + name,
	})
}
