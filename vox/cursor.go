package vox

import "fmt"

// cursor reads sequentially from a borrowed buffer. base is the offset of
// data[0] in the full input so errors from bounded sub-cursors report
// absolute positions.
type cursor struct {
	data []byte
	pos  int
	base int
}

func newCursor(b []byte) *cursor { return &cursor{data: b} }

func (c *cursor) outOfBounds(want int) error {
	return &DecodeError{
		Kind:   KindOutOfBounds,
		Offset: c.base + c.pos,
		Err:    fmt.Errorf("need %d byte(s), %d left", want, len(c.data)-c.pos),
	}
}

func (c *cursor) offset() int { return c.base + c.pos }

func (c *cursor) hasNext() bool { return c.pos < len(c.data) }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) next() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.outOfBounds(1)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// readUint32 accumulates four bytes least-significant first.
func (c *cursor) readUint32() (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := c.next()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

func (c *cursor) readASCII(n int) (string, error) {
	if n > c.remaining() {
		return "", c.outOfBounds(n)
	}
	s := string(c.data[c.pos : c.pos+n])
	c.pos += n
	return s, nil
}

func (c *cursor) skip(n int) error {
	if n > c.remaining() {
		return c.outOfBounds(n)
	}
	c.pos += n
	return nil
}

// sub returns a cursor over the next n bytes and advances past them.
func (c *cursor) sub(n uint32) (*cursor, error) {
	if uint64(n) > uint64(c.remaining()) {
		return nil, c.outOfBounds(int(n))
	}
	s := &cursor{data: c.data[c.pos : c.pos+int(n)], base: c.base + c.pos}
	c.pos += int(n)
	return s, nil
}
