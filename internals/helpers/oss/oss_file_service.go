package oss

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"path"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxPhotoWidth = 1280
	webpQuality   = float32(80)
)

// UploadImageWebP re-encodes an uploaded image to WebP and stores it under
// folder/. Returns the public URL and the object key used for later deletion.
func UploadImageWebP(fh *multipart.FileHeader, folder string) (url, key string, err error) {
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("oss: file exceeds %d bytes", maxUploadSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("oss: open upload: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("oss: decode image: %w", err)
	}
	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("oss: encode webp: %w", err)
	}

	bucket, err := Bucket()
	if err != nil {
		return "", "", err
	}

	key = path.Join(folder, fmt.Sprintf("%d-%s.webp", time.Now().Unix(), uuid.NewString()))
	if err := bucket.PutObject(key, bytes.NewReader(buf.Bytes())); err != nil {
		return "", "", fmt.Errorf("oss: put object: %w", err)
	}
	return PublicURL(key), key, nil
}

// DeleteObject removes a stored object; callers treat failures as best-effort.
func DeleteObject(key string) error {
	if key == "" {
		return nil
	}
	bucket, err := Bucket()
	if err != nil {
		return err
	}
	return bucket.DeleteObject(key)
}
