package nbt

import (
	"fmt"
	"os"

	"github.com/gonbt/nbt/internal/compression"
	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/stream"
	"github.com/gonbt/nbt/internal/utils"
)

// Compression selects the framing wrapped around an encoded document.
type Compression int

const (
	// AutoDetect reads the leading bytes to pick a framing on Load. It is
	// the default for Load; passing it explicitly to Save fails with
	// ErrRangeError, since there is nothing to sniff on the way out.
	AutoDetect Compression = iota
	NoCompression
	GZIP
	Zlib
)

func (c Compression) toMode() (compression.Mode, error) {
	switch c {
	case NoCompression:
		return compression.None, nil
	case GZIP:
		return compression.GZIP, nil
	case Zlib:
		return compression.Zlib, nil
	default:
		return 0, utils.WrapError(fmt.Sprintf("compression: invalid mode %d for this operation", int(c)), errs.RangeError)
	}
}

func fromMode(m compression.Mode) Compression {
	switch m {
	case compression.None:
		return NoCompression
	case compression.GZIP:
		return GZIP
	case compression.Zlib:
		return Zlib
	default:
		return AutoDetect
	}
}

// File binds a root Compound to its on-disk representation: byte order,
// the compression framing last seen on decode or used on encode, and an
// optional decode-time filter.
type File struct {
	root       *CompoundTag
	bigEndian  bool
	lastComp   Compression
	lastCompOK bool
	filter     Filter
}

// Option configures Load/Save behavior.
type Option func(*fileOptions)

type fileOptions struct {
	bigEndian   bool
	compression Compression
	compSet     bool
	filter      Filter
}

// WithBigEndian selects big-endian byte order for New and Load, overriding
// DefaultBigEndian. Save ignores it and encodes in the File's own order.
func WithBigEndian() Option {
	return func(o *fileOptions) { o.bigEndian = true }
}

// WithLittleEndian selects little-endian byte order for New and Load,
// overriding DefaultBigEndian. Save ignores it and encodes in the File's
// own order.
func WithLittleEndian() Option {
	return func(o *fileOptions) { o.bigEndian = false }
}

// WithCompression pins the compression framing used on Save, or read on
// Load instead of auto-detecting. Passing AutoDetect to Save fails with
// ErrRangeError.
func WithCompression(c Compression) Option {
	return func(o *fileOptions) { o.compression = c; o.compSet = true }
}

// WithFilter installs a decode-time filter invoked after each tag and its
// subtree have been fully read.
func WithFilter(f Filter) Option {
	return func(o *fileOptions) { o.filter = f }
}

func resolveOptions(opts []Option) fileOptions {
	o := fileOptions{bigEndian: DefaultBigEndian}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// New creates a File wrapping an empty, unnamed root Compound.
func New(opts ...Option) *File {
	o := resolveOptions(opts)
	return &File{
		root:      NewCompound(""),
		bigEndian: o.bigEndian,
	}
}

// Load reads and decodes an NBT document from path, auto-detecting
// compression unless WithCompression is given.
func Load(path string, opts ...Option) (*File, error) {
	//nolint:gosec // G304: caller-provided path is intentional for a file-format library
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError("file load", err)
	}
	return LoadBuffer(data, opts...)
}

// LoadBuffer decodes an NBT document from an in-memory buffer.
func LoadBuffer(data []byte, opts ...Option) (*File, error) {
	o := resolveOptions(opts)

	var mode compression.Mode
	var resolved Compression
	if o.compSet && o.compression != AutoDetect {
		m, err := o.compression.toMode()
		if err != nil {
			return nil, err
		}
		mode, resolved = m, o.compression
	} else {
		detected, err := compression.Detect(data)
		if err != nil {
			return nil, err
		}
		mode, resolved = detected, fromMode(detected)
	}

	codec, err := compression.ForMode(mode)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, utils.WrapError("file load: decompress", err)
	}

	s, err := stream.Wrap(raw, 0, len(raw), o.bigEndian)
	if err != nil {
		return nil, utils.WrapError("file load: wrap buffer", err)
	}

	root, err := decodeRoot(s, o.filter)
	if err != nil {
		return nil, utils.WrapError("file load: decode", err)
	}

	return &File{
		root:       root,
		bigEndian:  o.bigEndian,
		lastComp:   resolved,
		lastCompOK: true,
		filter:     o.filter,
	}, nil
}

// Save encodes the file's root Compound and writes it to path.
func (f *File) Save(path string, opts ...Option) error {
	data, err := f.SaveBuffer(opts...)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: NBT documents are not secrets; 0644 matches typical file-format tooling
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return utils.WrapError("file save", err)
	}
	return nil
}

// SaveBuffer encodes the file's root Compound into an in-memory buffer.
func (f *File) SaveBuffer(opts ...Option) ([]byte, error) {
	if err := mustCompoundRoot(f.root); err != nil {
		return nil, err
	}

	o := resolveOptions(opts)

	chosen := o.compression
	if !o.compSet {
		switch {
		case f.lastCompOK:
			chosen = f.lastComp
		default:
			chosen = GZIP
		}
	}
	mode, err := chosen.toMode()
	if err != nil {
		return nil, err
	}

	s := stream.New(256, f.bigEndian)
	if err := encodeRoot(s, f.root); err != nil {
		return nil, utils.WrapError("file save: encode", err)
	}

	codec, err := compression.ForMode(mode)
	if err != nil {
		return nil, err
	}
	out, err := codec.Compress(s.Bytes())
	if err != nil {
		return nil, utils.WrapError("file save: compress", err)
	}

	f.lastComp = chosen
	f.lastCompOK = true
	return out, nil
}

// Root returns the file's root Compound.
func (f *File) Root() *CompoundTag { return f.root }

// SetRoot replaces the file's root Compound.
func (f *File) SetRoot(root *CompoundTag) { f.root = root }

// Walk traverses the tree depth-first starting at the root, calling fn for
// every tag including the root itself.
func (f *File) Walk(fn func(path string, t Tag)) {
	walkTag(f.root, fn)
}

func walkTag(t Tag, fn func(string, Tag)) {
	fn(t.Path(), t)
	switch c := t.(type) {
	case *CompoundTag:
		for _, child := range c.Tags() {
			walkTag(child, fn)
		}
	case *ListTag:
		for _, elem := range c.Items() {
			walkTag(elem, fn)
		}
	}
}

// Pretty renders the file's root Compound as an indented tree.
func (f *File) Pretty() string {
	return Pretty(f.root)
}

// mustCompoundRoot validates that root is non-nil and usable as an
// encodable document root; its name being empty text is fine, but a nil
// root is a format error.
func mustCompoundRoot(root *CompoundTag) error {
	if root == nil {
		return utils.WrapError("file: root is nil", errs.FormatError)
	}
	return nil
}
