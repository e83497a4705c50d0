// Package compression implements the optional whole-buffer compression
// framing that wraps an encoded NBT document: none, gzip, or zlib, picked on
// read by sniffing the leading byte and applied on write per the caller's
// chosen Mode.
package compression

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// Mode identifies a compression framing.
type Mode int

const (
	// None means the buffer is raw, uncompressed NBT.
	None Mode = iota
	// GZIP means the buffer is gzip-framed (magic 0x1F 0x8B).
	GZIP
	// Zlib means the buffer is zlib-framed (magic byte 0x78).
	Zlib
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case GZIP:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Codec compresses and decompresses whole buffers for one framing.
type Codec interface {
	Mode() Mode
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Detect inspects the leading bytes of data and reports which framing
// produced it. An uncompressed NBT document always begins with a tag-type
// byte in [0, 12], none of which collide with the gzip or zlib magic.
func Detect(data []byte) (Mode, error) {
	if len(data) == 0 {
		return None, utils.WrapError("compression detect", errs.EndOfStream)
	}
	switch {
	case len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B:
		return GZIP, nil
	case data[0] == 0x78:
		return Zlib, nil
	case data[0] <= 12:
		return None, nil
	default:
		return None, utils.WrapError(fmt.Sprintf("compression detect: unrecognized leading byte 0x%02X", data[0]), errs.FormatError)
	}
}

// ForMode returns the Codec implementing the given framing.
func ForMode(m Mode) (Codec, error) {
	switch m {
	case None:
		return noneCodec{}, nil
	case GZIP:
		return gzipCodec{level: gzip.DefaultCompression}, nil
	case Zlib:
		return zlibCodec{level: zlib.DefaultCompression}, nil
	default:
		return nil, utils.WrapError(fmt.Sprintf("compression: unknown mode %d", int(m)), errs.FormatError)
	}
}

type noneCodec struct{}

func (noneCodec) Mode() Mode { return None }

func (noneCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (noneCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

type gzipCodec struct {
	level int
}

func (gzipCodec) Mode() Mode { return GZIP }

func (c gzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("compression: gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("compression: gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression: gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

func (gzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compression: gzip reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compression: gzip read: %w", err)
	}
	return out, nil
}

type zlibCodec struct {
	level int
}

func (zlibCodec) Mode() Mode { return Zlib }

func (c zlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("compression: zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("compression: zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression: zlib close: %w", err)
	}
	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compression: zlib reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compression: zlib read: %w", err)
	}
	return out, nil
}
