package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Sulasulait/coshikowa-agency.com/config"
)

const proofPrefix = "payment-proofs"

// DetectMIME sniffs the real content type from the file's first bytes, so a
// renamed .exe does not pass as a jpeg.
func DetectMIME(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

// SaveProof writes an uploaded receipt under a path namespaced by payment id
// and timestamp and returns its public URL. The timestamp avoids collisions
// between re-uploads; earlier files are kept as-is.
func SaveProof(paymentID string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(config.UPLOAD_DIR, proofPrefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(fh.Filename)
	name := fmt.Sprintf("%s-%d%s", paymentID, time.Now().UnixMilli(), ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return config.UPLOAD_BASE_URL + "/" + proofPrefix + "/" + name, nil
}
