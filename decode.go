package nbt

import (
	"fmt"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/stream"
	"github.com/gonbt/nbt/internal/utils"
)

// Filter is invoked after a tag and its entire subtree have been decoded.
// Returning false discards the tag from its parent; the stream position
// has already advanced past it, so subsequent siblings parse normally.
type Filter func(t Tag) bool

func readTypeByte(s *stream.Stream) (TagType, error) {
	b, err := s.ReadInt8()
	if err != nil {
		return 0, err
	}
	return TagType(uint8(b)), nil
}

// decodeRoot reads the top-level Compound frame: type byte, name, body.
func decodeRoot(s *stream.Stream, filter Filter) (*CompoundTag, error) {
	tt, err := readTypeByte(s)
	if err != nil {
		return nil, err
	}
	if tt != TagCompound {
		return nil, utils.WrapError(fmt.Sprintf("decode root: expected Compound (10), got %s", tt), errs.FormatError)
	}
	name, err := s.ReadString()
	if err != nil {
		return nil, err
	}
	root := NewCompound(name)
	if err := decodeCompoundBody(s, root, filter); err != nil {
		return nil, err
	}
	return root, nil
}

func decodeCompoundBody(s *stream.Stream, into *CompoundTag, filter Filter) error {
	for {
		tt, err := readTypeByte(s)
		if err != nil {
			return err
		}
		if tt == TagEnd {
			return nil
		}
		name, err := s.ReadString()
		if err != nil {
			return err
		}
		child, err := decodePayload(s, tt, name, filter)
		if err != nil {
			return err
		}
		if filter == nil || filter(child) {
			_ = into.Put(child)
		}
	}
}

func decodeListBody(s *stream.Stream, into *ListTag, filter Filter) error {
	elemType, err := readTypeByte(s)
	if err != nil {
		return err
	}
	count, err := s.ReadInt32()
	if err != nil {
		return err
	}
	if count < 0 {
		return utils.WrapError(fmt.Sprintf("decode list: negative length %d", count), errs.FormatError)
	}
	if err := utils.ValidateBufferSize(uint64(count), utils.MaxListElements, "list length"); err != nil {
		return utils.WrapError(err.Error(), errs.FormatError)
	}

	if err := into.SetElementType(elemType); err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		elem, err := decodePayload(s, elemType, "", filter)
		if err != nil {
			return err
		}
		if filter == nil || filter(elem) {
			_ = into.Push(elem)
		}
	}
	return nil
}

// decodePayload reads the body for a tag of the given type (the type byte
// and name, if any, have already been consumed by the caller) and returns
// the constructed, named tag.
func decodePayload(s *stream.Stream, tt TagType, name string, filter Filter) (Tag, error) {
	switch tt {
	case TagByte:
		v, err := s.ReadInt8()
		if err != nil {
			return nil, err
		}
		return NewByte(name, v), nil

	case TagShort:
		v, err := s.ReadInt16()
		if err != nil {
			return nil, err
		}
		return NewShort(name, v), nil

	case TagInt:
		v, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		return NewInt(name, v), nil

	case TagLong:
		v, err := s.ReadInt64()
		if err != nil {
			return nil, err
		}
		return NewLong(name, v), nil

	case TagFloat:
		v, err := s.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return NewFloat(name, v), nil

	case TagDouble:
		v, err := s.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return NewDouble(name, v), nil

	case TagByteArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, utils.WrapError(fmt.Sprintf("decode byte array %q: negative length %d", name, n), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(uint64(n), utils.MaxArrayElements, "byte array length"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		payload, err := utils.CalculatePayloadSize(uint64(n), 1)
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("decode byte array %q: %s", name, err.Error()), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(payload, utils.MaxArrayPayloadBytes, "byte array payload"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		vals := make([]int8, n)
		for i := range vals {
			b, err := s.ReadInt8()
			if err != nil {
				return nil, err
			}
			vals[i] = b
		}
		return NewByteArray(name, vals), nil

	case TagString:
		v, err := s.ReadString()
		if err != nil {
			return nil, err
		}
		st, err := NewString(name, v)
		if err != nil {
			return nil, err
		}
		return st, nil

	case TagList:
		lt := NewList(name)
		if err := decodeListBody(s, lt, filter); err != nil {
			return nil, err
		}
		return lt, nil

	case TagCompound:
		ct := NewCompound(name)
		if err := decodeCompoundBody(s, ct, filter); err != nil {
			return nil, err
		}
		return ct, nil

	case TagIntArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, utils.WrapError(fmt.Sprintf("decode int array %q: negative length %d", name, n), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(uint64(n), utils.MaxArrayElements, "int array length"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		payload, err := utils.CalculatePayloadSize(uint64(n), 4)
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("decode int array %q: %s", name, err.Error()), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(payload, utils.MaxArrayPayloadBytes, "int array payload"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		vals := make([]int32, n)
		for i := range vals {
			v, err := s.ReadInt32()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return NewIntArray(name, vals), nil

	case TagLongArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, utils.WrapError(fmt.Sprintf("decode long array %q: negative length %d", name, n), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(uint64(n), utils.MaxArrayElements, "long array length"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		payload, err := utils.CalculatePayloadSize(uint64(n), 8)
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("decode long array %q: %s", name, err.Error()), errs.FormatError)
		}
		if err := utils.ValidateBufferSize(payload, utils.MaxArrayPayloadBytes, "long array payload"); err != nil {
			return nil, utils.WrapError(err.Error(), errs.FormatError)
		}
		vals := make([]int64, n)
		for i := range vals {
			v, err := s.ReadInt64()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return NewLongArray(name, vals), nil

	default:
		return nil, utils.WrapError(fmt.Sprintf("decode %q: unknown tag type code %d", name, uint8(tt)), errs.FormatError)
	}
}
