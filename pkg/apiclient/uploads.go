package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// UploadImages sends local image files to the platform's upload endpoint
// as a single multipart request and returns the hosted URLs in input order.
//
// The platform stores and serves uploads itself; the client never talks to
// the underlying object store directly.
func (c *Client) UploadImages(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for _, path := range paths {
		if err := appendFilePart(form, path); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload form: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/uploads/images", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload images: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var urls []string
	if err := decodeEnvelope(resp, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

func appendFilePart(form *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	part, err := form.CreateFormFile("images", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form part for %s: %w", path, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read upload file %s: %w", path, err)
	}
	return nil
}
