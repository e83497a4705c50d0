package nbt

import (
	"fmt"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/stream"
	"github.com/gonbt/nbt/internal/utils"
)

// encodeRoot writes the top-level Compound frame: type byte, name, body.
func encodeRoot(s *stream.Stream, root *CompoundTag) error {
	if err := s.WriteInt8(int8(TagCompound)); err != nil {
		return err
	}
	if err := s.WriteString(root.Name()); err != nil {
		return err
	}
	return encodeCompoundBody(s, root)
}

func encodeCompoundBody(s *stream.Stream, c *CompoundTag) error {
	for _, child := range c.Tags() {
		if child.Name() == "" {
			return utils.WrapError("encode compound: child has no name", errs.FormatError)
		}
		if err := s.WriteInt8(int8(child.Type())); err != nil {
			return err
		}
		if err := s.WriteString(child.Name()); err != nil {
			return err
		}
		if err := encodePayload(s, child); err != nil {
			return err
		}
	}
	return s.WriteInt8(int8(TagEnd))
}

func encodeListBody(s *stream.Stream, l *ListTag) error {
	elemType := l.ElementType()
	if elemType == TagUnknown || elemType == TagEnd {
		return utils.WrapError(fmt.Sprintf("encode list %q: element type unset", l.Name()), errs.FormatError)
	}
	if err := s.WriteInt8(int8(elemType)); err != nil {
		return err
	}
	if err := s.WriteInt32(int32(l.Length())); err != nil {
		return err
	}
	for _, elem := range l.Items() {
		if err := encodePayload(s, elem); err != nil {
			return err
		}
	}
	return nil
}

// encodePayload writes the body for tag (its type and name, if any, are
// written by the caller).
func encodePayload(s *stream.Stream, tag Tag) error {
	switch t := tag.(type) {
	case *ByteTag:
		return s.WriteInt8(t.Value())

	case *ShortTag:
		return s.WriteInt16(t.Value())

	case *IntTag:
		return s.WriteInt32(t.Value())

	case *LongTag:
		return s.WriteInt64(t.Value())

	case *FloatTag:
		return s.WriteFloat32(t.Value())

	case *DoubleTag:
		return s.WriteFloat64(t.Value())

	case *ByteArrayTag:
		v := t.Value()
		if err := s.WriteInt32(int32(len(v))); err != nil {
			return err
		}
		for _, b := range v {
			if err := s.WriteInt8(b); err != nil {
				return err
			}
		}
		return nil

	case *StringTag:
		return s.WriteString(t.Value())

	case *ListTag:
		return encodeListBody(s, t)

	case *CompoundTag:
		return encodeCompoundBody(s, t)

	case *IntArrayTag:
		v := t.Value()
		if err := s.WriteInt32(int32(len(v))); err != nil {
			return err
		}
		for _, x := range v {
			if err := s.WriteInt32(x); err != nil {
				return err
			}
		}
		return nil

	case *LongArrayTag:
		v := t.Value()
		if err := s.WriteInt32(int32(len(v))); err != nil {
			return err
		}
		for _, x := range v {
			if err := s.WriteInt64(x); err != nil {
				return err
			}
		}
		return nil

	default:
		return utils.WrapError(fmt.Sprintf("encode: unsupported tag type %T", tag), errs.FormatError)
	}
}
