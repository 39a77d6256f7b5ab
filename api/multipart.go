package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Multipart field names the backend expects for book uploads.
const (
	pdfFieldName   = "pdfFile"
	coverFieldName = "coverImages"
)

type multipartForm struct {
	data        []byte
	contentType string
}

// buildBookForm assembles the multipart body for book create/update: scalar
// fields first, then the pdfFile part (when a path is given) and one
// coverImages part per cover.
func buildBookForm(fields map[string]string, pdfPath string, coverPaths []string) (*multipartForm, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if pdfPath != "" {
		if err := attachFile(w, pdfFieldName, pdfPath); err != nil {
			return nil, err
		}
	}
	for _, cover := range coverPaths {
		if err := attachFile(w, coverFieldName, cover); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &multipartForm{data: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}
