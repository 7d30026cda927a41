// Package source fetches raw .vox bytes from the filesystem or over HTTP.
// Failures are reported as *Error so callers can tell them apart from
// decode errors.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source hands back the complete contents behind a locator.
type Source interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// Error is an upstream failure to obtain bytes.
type Error struct {
	Locator string
	Err     error
}

func (e *Error) Error() string { return fmt.Sprintf("source %s: %v", e.Locator, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// File reads local paths.
type File struct{}

func (File) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Locator: path, Err: err}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Locator: path, Err: err}
	}
	return b, nil
}

// HTTP issues a GET per fetch. A nil Client means http.DefaultClient.
type HTTP struct {
	Client *http.Client
	// MaxBytes caps the body size; 0 means no limit.
	MaxBytes int64
}

func (h HTTP) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Locator: url, Err: err}
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{Locator: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Locator: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	var body io.Reader = resp.Body
	if h.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, h.MaxBytes+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, &Error{Locator: url, Err: err}
	}
	if h.MaxBytes > 0 && int64(len(b)) > h.MaxBytes {
		return nil, &Error{Locator: url, Err: fmt.Errorf("body exceeds %d bytes", h.MaxBytes)}
	}
	return b, nil
}

// Auto dispatches http(s) URLs to HTTP and everything else to File.
type Auto struct {
	HTTP HTTP
	File File
}

func (a Auto) Fetch(ctx context.Context, locator string) ([]byte, error) {
	l := strings.ToLower(locator)
	if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") {
		return a.HTTP.Fetch(ctx, locator)
	}
	return a.File.Fetch(ctx, strings.TrimPrefix(locator, "file://"))
}

// Load fetches locator from src and strips any compression wrapper.
func Load(ctx context.Context, src Source, locator string) ([]byte, error) {
	b, err := src.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}
	out, err := Decompress(b)
	if err != nil {
		return nil, &Error{Locator: locator, Err: err}
	}
	return out, nil
}
