package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies a wrapper recognised by Decompress.
type Compression uint8

const (
	CompNone Compression = iota
	CompGzip
	CompZlib
	CompZstd
	CompXZ
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompGzip:
		return "gzip"
	case CompZlib:
		return "zlib"
	case CompZstd:
		return "zstd"
	case CompXZ:
		return "xz"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Detect sniffs the compression wrapper from the leading bytes. Plain .vox
// data starts with "VOX " and is never mistaken for any of these.
func Detect(b []byte) Compression {
	switch {
	case bytes.HasPrefix(b, zstdMagic):
		return CompZstd
	case bytes.HasPrefix(b, xzMagic):
		return CompXZ
	case bytes.HasPrefix(b, gzipMagic):
		return CompGzip
	case len(b) >= 2 && b[0]&0x0f == 8 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0:
		return CompZlib
	}
	return CompNone
}

// DefaultMaxDecompressed caps the output of Decompress.
const DefaultMaxDecompressed = 256 << 20

// ErrTooLarge is returned when decompressed output exceeds its cap.
var ErrTooLarge = errors.New("decompressed data exceeds limit")

// Decompress unwraps b when it carries a known compression header and
// returns it unchanged otherwise.
func Decompress(b []byte) ([]byte, error) {
	return DecompressLimit(b, DefaultMaxDecompressed)
}

// DecompressLimit is Decompress with an explicit cap on the output size.
// A cap below 1 means DefaultMaxDecompressed.
func DecompressLimit(b []byte, max int64) ([]byte, error) {
	if max < 1 {
		max = DefaultMaxDecompressed
	}
	switch comp := Detect(b); comp {
	case CompNone:
		return b, nil
	case CompZstd:
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(max)))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(b, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("zstd: %w", ErrTooLarge)
		}
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	case CompXZ:
		xr, err := xz.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		return readAll(comp, xr, max)
	case CompGzip:
		gr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gr.Close()
		return readAll(comp, gr, max)
	case CompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		defer zr.Close()
		return readAll(comp, zr, max)
	default:
		return nil, fmt.Errorf("unsupported compression %s", comp)
	}
}

func readAll(comp Compression, r io.Reader, max int64) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", comp, err)
	}
	if int64(len(out)) > max {
		return nil, fmt.Errorf("%s: %w", comp, ErrTooLarge)
	}
	return out, nil
}
