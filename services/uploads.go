package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadService writes uploaded product images into the public asset
// directory and hands back the relative path stored on the product record.
type UploadService struct {
	dir string
	now func() time.Time
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir, now: time.Now}
}

// safeAssetName derives a filesystem-safe name from the client-supplied
// filename: the path is stripped, anything outside a small whitelist becomes
// '_', and a timestamp prefix keeps unrelated uploads with the same name
// from colliding.
func safeAssetName(raw string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(raw, "\\", "/"))

	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return '_'
	}, base)

	if strings.Trim(safe, "._-") == "" {
		safe = uuid.NewString()
	}

	return now.Format("20060102150405") + "_" + safe
}

// Store writes the upload to the asset directory and returns the path
// relative to the static root, e.g. "uploads/20240101120000_shirt.png".
func (u *UploadService) Store(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(u.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := safeAssetName(filename, u.now())

	out, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "uploads/" + name, nil
}
