// Package vox decodes MagicaVoxel-style ".vox" files: a "VOX " magic, a
// version number and a tree of length-prefixed chunks.
package vox

import (
	"io"
	"log/slog"
)

const magic = "VOX "

// DefaultMaxDepth bounds chunk nesting. Real files nest a handful of levels.
const DefaultMaxDepth = 64

// UnknownChunkPolicy selects what happens to chunk ids the decoder has no
// content decoder for.
type UnknownChunkPolicy uint8

const (
	// UnknownSkip skips the chunk's declared content.
	UnknownSkip UnknownChunkPolicy = iota
	// UnknownError fails the decode with KindUnknownChunk.
	UnknownError
)

// ChildrenPolicy selects how the declared children length is used.
type ChildrenPolicy uint8

const (
	// ChildrenEnforce parses children from exactly the declared region and
	// fails with KindChildrenLength when they overrun it.
	ChildrenEnforce ChildrenPolicy = iota
	// ChildrenIgnore keeps parsing chunks until the buffer is exhausted,
	// whatever the declared length says.
	ChildrenIgnore
)

// ChunkHeader is the fixed 12-byte prefix of every chunk.
type ChunkHeader struct {
	ID          string
	ContentLen  uint32
	ChildrenLen uint32
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger routes diagnostics (version, skipped chunks) to l.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

func WithUnknownChunkPolicy(p UnknownChunkPolicy) Option {
	return func(d *Decoder) { d.unknown = p }
}

func WithChildrenPolicy(p ChildrenPolicy) Option {
	return func(d *Decoder) { d.children = p }
}

// WithMaxDepth caps how deep chunks may nest below the root chunk. Values
// below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxDepth = n
		}
	}
}

// Decoder holds decode settings. It keeps no per-call state and is safe for
// concurrent use.
type Decoder struct {
	logger   *slog.Logger
	unknown  UnknownChunkPolicy
	children ChildrenPolicy
	maxDepth int
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Decode parses a complete .vox buffer. buf is read but never modified or
// retained. On error no partial model is returned.
func Decode(buf []byte, opts ...Option) (*Model, error) {
	return NewDecoder(opts...).Decode(buf)
}

func (d *Decoder) Decode(buf []byte) (*Model, error) {
	c := newCursor(buf)
	id, err := c.readASCII(4)
	if err != nil {
		return nil, err
	}
	if id != magic {
		return nil, &DecodeError{Kind: KindBadMagic, Offset: 0, Value: id}
	}
	ver, err := c.readUint32()
	if err != nil {
		return nil, err
	}
	d.logger.Debug("vox format version", "version", ver)

	b := newBuilder(ver)
	if err := d.chunk(c, b, 0); err != nil {
		return nil, err
	}
	if c.hasNext() {
		d.logger.Warn("ignoring trailing bytes after root chunk", "offset", c.offset(), "bytes", c.remaining())
	}
	return b.finish(), nil
}

func (d *Decoder) header(c *cursor) (ChunkHeader, error) {
	var h ChunkHeader
	var err error
	if h.ID, err = c.readASCII(4); err != nil {
		return h, err
	}
	if h.ContentLen, err = c.readUint32(); err != nil {
		return h, err
	}
	if h.ChildrenLen, err = c.readUint32(); err != nil {
		return h, err
	}
	return h, nil
}

func (d *Decoder) chunk(c *cursor, b *builder, depth int) error {
	start := c.offset()
	if depth > d.maxDepth {
		return &DecodeError{Kind: KindNestingDepth, Offset: start}
	}
	h, err := d.header(c)
	if err != nil {
		return err
	}
	content, err := c.sub(h.ContentLen)
	if err != nil {
		return err
	}
	if err := d.contents(h, start, content, b); err != nil {
		return err
	}

	if d.children == ChildrenIgnore {
		for c.hasNext() {
			if err := d.chunkFlat(c, b); err != nil {
				return err
			}
		}
		return nil
	}

	end := uint64(c.pos) + uint64(h.ChildrenLen)
	for uint64(c.pos) < end {
		if err := d.chunk(c, b, depth+1); err != nil {
			return err
		}
	}
	if uint64(c.pos) != end {
		return &DecodeError{
			Kind:   KindChildrenLength,
			Offset: c.offset(),
			Value:  h.ID,
		}
	}
	return nil
}

// chunkFlat decodes one chunk without descending; under ChildrenIgnore every
// chunk after the root is read as the next item of a flat sequence.
func (d *Decoder) chunkFlat(c *cursor, b *builder) error {
	start := c.offset()
	h, err := d.header(c)
	if err != nil {
		return err
	}
	content, err := c.sub(h.ContentLen)
	if err != nil {
		return err
	}
	return d.contents(h, start, content, b)
}

func (d *Decoder) contents(h ChunkHeader, start int, content *cursor, b *builder) error {
	var err error
	switch h.ID {
	case "MAIN":
	case "PACK":
		err = decodePack(content, b)
	case "SIZE":
		err = decodeSize(content, b)
	case "XYZI":
		err = decodeXYZI(content, b)
	case "RGBA":
		err = decodeRGBA(content, b, d.logger)
	case "MATT":
		err = decodeMATT(content, b)
	default:
		if d.unknown == UnknownError {
			return &DecodeError{Kind: KindUnknownChunk, Offset: start, Value: h.ID}
		}
		d.logger.Debug("skipping chunk", "id", h.ID, "offset", start, "bytes", h.ContentLen)
		return nil
	}
	if err != nil {
		return err
	}
	if n := content.remaining(); n > 0 {
		d.logger.Debug("chunk content not fully consumed", "id", h.ID, "offset", start, "unread", n)
	}
	return nil
}
