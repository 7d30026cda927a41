package source

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var payload = append([]byte("VOX "), bytes.Repeat([]byte{1, 2, 3, 4}, 64)...)

func TestFileFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.vox")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	b, err := File{}.Fetch(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, payload, b)

	_, err = File{}.Fetch(context.Background(), filepath.Join(dir, "missing.vox"))
	var se *Error
	require.ErrorAs(t, err, &se)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestHTTPFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/model.vox" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	b, err := HTTP{Client: srv.Client()}.Fetch(context.Background(), srv.URL+"/model.vox")
	require.NoError(t, err)
	require.Equal(t, payload, b)

	_, err = HTTP{}.Fetch(context.Background(), srv.URL+"/nope.vox")
	var se *Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, srv.URL+"/nope.vox", se.Locator)

	_, err = HTTP{MaxBytes: 16}.Fetch(context.Background(), srv.URL+"/model.vox")
	require.ErrorAs(t, err, &se)
}

func TestAutoDispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()
	path := filepath.Join(t.TempDir(), "local.vox")
	require.NoError(t, os.WriteFile(path, []byte("local"), 0o644))

	a := Auto{}
	b, err := a.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "remote", string(b))

	b, err = a.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	require.Equal(t, "local", string(b))
}

func TestFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := File{}.Fetch(ctx, "whatever.vox")
	require.ErrorIs(t, err, context.Canceled)
}

func compressWith(t *testing.T, comp Compression, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch comp {
	case CompGzip:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(b)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case CompZlib:
		w := zlib.NewWriter(&buf)
		_, err := w.Write(b)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case CompZstd:
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		return enc.EncodeAll(b, nil)
	case CompXZ:
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(b)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		return b
	}
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	for _, comp := range []Compression{CompNone, CompGzip, CompZlib, CompZstd, CompXZ} {
		t.Run(comp.String(), func(t *testing.T) {
			wrapped := compressWith(t, comp, payload)
			require.Equal(t, comp, Detect(wrapped))
			out, err := Decompress(wrapped)
			require.NoError(t, err)
			require.Equal(t, payload, out)
		})
	}
}

func TestDecompressLimit(t *testing.T) {
	big := bytes.Repeat([]byte{0}, 64<<10)
	for _, comp := range []Compression{CompGzip, CompZlib, CompZstd, CompXZ} {
		t.Run(comp.String(), func(t *testing.T) {
			wrapped := compressWith(t, comp, big)
			_, err := DecompressLimit(wrapped, 1<<10)
			require.ErrorIs(t, err, ErrTooLarge)

			out, err := DecompressLimit(wrapped, int64(len(big)))
			require.NoError(t, err)
			require.Len(t, out, len(big))
		})
	}
}

func TestLoadCorruptStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.vox.zst")
	wrapped := compressWith(t, CompZstd, payload)
	require.NoError(t, os.WriteFile(path, wrapped[:len(wrapped)/2], 0o644))

	_, err := Load(context.Background(), File{}, path)
	var se *Error
	require.True(t, errors.As(err, &se))
	require.Equal(t, path, se.Locator)
}
