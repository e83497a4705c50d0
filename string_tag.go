package nbt

import (
	"fmt"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// StringTag holds a UTF-8 string, capped at 65535 bytes by the wire
// format's uint16 length prefix.
type StringTag struct {
	baseTag
	value string
}

// NewString creates a named StringTag. Returns ErrRangeError if value's
// UTF-8 byte length exceeds utils.MaxStringBytes.
func NewString(name, value string) (*StringTag, error) {
	if len(value) > utils.MaxStringBytes {
		return nil, utils.WrapError(fmt.Sprintf("string tag %q: value length %d exceeds %d bytes", name, len(value), utils.MaxStringBytes), errs.RangeError)
	}
	return &StringTag{baseTag: baseTag{name: name}, value: value}, nil
}

func (t *StringTag) Type() TagType { return TagString }

func (t *StringTag) Value() string { return t.value }

// SetValue updates the tag's value. Returns ErrRangeError if the new
// value's UTF-8 byte length exceeds utils.MaxStringBytes.
func (t *StringTag) SetValue(v string) error {
	if len(v) > utils.MaxStringBytes {
		return utils.WrapError(fmt.Sprintf("string tag %q: value length %d exceeds %d bytes", t.name, len(v), utils.MaxStringBytes), errs.RangeError)
	}
	t.value = v
	return nil
}

func (t *StringTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *StringTag) Path() string { return buildPath(t) }

func (t *StringTag) Clone() Tag {
	return &StringTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *StringTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "String", t.name, fmt.Sprintf("%q", t.value))}
}
