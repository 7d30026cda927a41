package vox

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	KindOutOfBounds ErrorKind = iota + 1
	KindBadMagic
	KindUnknownChunk
	KindChildrenLength
	KindNestingDepth
)

func (k ErrorKind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindBadMagic:
		return "bad magic"
	case KindUnknownChunk:
		return "unknown chunk"
	case KindChildrenLength:
		return "children length mismatch"
	case KindNestingDepth:
		return "chunks nested too deep"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is. A *DecodeError matches the sentinel of its kind.
var (
	ErrOutOfBounds    = errors.New("vox: out of bounds")
	ErrBadMagic       = errors.New("vox: bad magic")
	ErrUnknownChunk   = errors.New("vox: unknown chunk")
	ErrChildrenLength = errors.New("vox: children length mismatch")
	ErrNestingDepth   = errors.New("vox: chunks nested too deep")
)

// DecodeError reports why a buffer could not be decoded. Offset is the read
// position in the input at the time of failure; Value holds the offending raw
// value when there is one (the mismatched magic, the unknown chunk id).
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Value  string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("vox: %s at offset %d", e.Kind, e.Offset)
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrOutOfBounds:
		return e.Kind == KindOutOfBounds
	case ErrBadMagic:
		return e.Kind == KindBadMagic
	case ErrUnknownChunk:
		return e.Kind == KindUnknownChunk
	case ErrChildrenLength:
		return e.Kind == KindChildrenLength
	case ErrNestingDepth:
		return e.Kind == KindNestingDepth
	}
	return false
}
