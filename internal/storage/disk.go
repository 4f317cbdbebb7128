package storage

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-catalog-api/internal/domain"
	"go-catalog-api/pkg/utils"
)

// ImageStore persists gallery image payloads and returns the stored
// reference kept on the gallery row.
type ImageStore interface {
	Save(productID string, data []byte) (string, error)
	Remove(ref string) error
}

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Decode turns an API image payload (base64, optionally a data: URL) into
// raw bytes. Anything undecodable is a malformed image.
func Decode(payload string) ([]byte, error) {
	s := payload
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, domain.ErrMalformedImage
		}
		s = s[comma+1:]
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil || len(b) == 0 {
		return nil, domain.ErrMalformedImage
	}
	return b, nil
}

// Disk stores images under <Root>/gallery/<product-id>/<uuid>.<ext>.
type Disk struct{ Root string }

func NewDisk(root string) *Disk { return &Disk{Root: root} }

func (d *Disk) Save(productID string, data []byte) (string, error) {
	ext, ok := imageExt[http.DetectContentType(data)]
	if !ok {
		return "", domain.ErrMalformedImage
	}
	dir := filepath.Join(d.Root, "gallery", productID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := utils.NewID() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("gallery", productID, name)), nil
}

func (d *Disk) Remove(ref string) error {
	err := os.Remove(filepath.Join(d.Root, filepath.FromSlash(ref)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
