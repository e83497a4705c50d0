package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonbt/nbt/internal/stream"
)

func roundTrip(t *testing.T, root *CompoundTag, bigEndian bool) *CompoundTag {
	t.Helper()
	s := stream.New(64, bigEndian)
	require.NoError(t, encodeRoot(s, root))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), bigEndian)
	require.NoError(t, err)

	out, err := decodeRoot(in, nil)
	require.NoError(t, err)
	return out
}

func TestRoundTrip_EmptyRoot(t *testing.T) {
	root := NewCompound("")
	out := roundTrip(t, root, true)
	assert.Equal(t, 0, out.Size())
	assert.Equal(t, "", out.Name())
}

func TestRoundTrip_ScalarsAndString(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewByte("b", -7)))
	require.NoError(t, root.Put(NewShort("s", -1234)))
	require.NoError(t, root.Put(NewInt("i", 123456)))
	require.NoError(t, root.Put(NewLong("l", 1<<40)))
	require.NoError(t, root.Put(NewFloat("f", 3.5)))
	require.NoError(t, root.Put(NewDouble("d", 2.25)))
	require.NoError(t, root.Put(mustString(t, "str", "hello")))

	out := roundTrip(t, root, true)
	assert.Equal(t, "doc", out.Name())
	assert.Equal(t, int8(-7), out.Get("b").(*ByteTag).Value())
	assert.Equal(t, int16(-1234), out.Get("s").(*ShortTag).Value())
	assert.Equal(t, int32(123456), out.Get("i").(*IntTag).Value())
	assert.Equal(t, int64(1<<40), out.Get("l").(*LongTag).Value())
	assert.Equal(t, float32(3.5), out.Get("f").(*FloatTag).Value())
	assert.Equal(t, 2.25, out.Get("d").(*DoubleTag).Value())
	assert.Equal(t, "hello", out.Get("str").(*StringTag).Value())
}

func TestRoundTrip_HomogeneousList(t *testing.T) {
	root := NewCompound("doc")
	l := NewList("nums")
	require.NoError(t, l.Push(NewInt("", 1)))
	require.NoError(t, l.Push(NewInt("", 2)))
	require.NoError(t, l.Push(NewInt("", 3)))
	require.NoError(t, root.Put(l))

	out := roundTrip(t, root, true)
	outList := out.Get("nums").(*ListTag)
	assert.Equal(t, 3, outList.Length())
	assert.Equal(t, int32(2), outList.At(1).(*IntTag).Value())
}

func TestRoundTrip_NestedCompound(t *testing.T) {
	root := NewCompound("doc")
	inner := NewCompound("inner")
	require.NoError(t, inner.Put(NewInt("x", 5)))
	require.NoError(t, root.Put(inner))

	out := roundTrip(t, root, true)
	assert.Equal(t, int32(5), out.Get("inner").(*CompoundTag).Get("x").(*IntTag).Value())
}

func TestRoundTrip_Arrays(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewByteArray("ba", []int8{1, 2, 3})))
	require.NoError(t, root.Put(NewIntArray("ia", []int32{10, 20, 30})))
	require.NoError(t, root.Put(NewLongArray("la", []int64{100, 200})))

	out := roundTrip(t, root, true)
	assert.Equal(t, []int8{1, 2, 3}, out.Get("ba").(*ByteArrayTag).Value())
	assert.Equal(t, []int32{10, 20, 30}, out.Get("ia").(*IntArrayTag).Value())
	assert.Equal(t, []int64{100, 200}, out.Get("la").(*LongArrayTag).Value())
}

func TestDecode_AcceptsEmptyListWithEndElementType(t *testing.T) {
	s := stream.New(32, true)
	require.NoError(t, s.WriteInt8(int8(TagCompound)))
	require.NoError(t, s.WriteString(""))
	require.NoError(t, s.WriteInt8(int8(TagList)))
	require.NoError(t, s.WriteString("empty"))
	require.NoError(t, s.WriteInt8(int8(TagEnd)))
	require.NoError(t, s.WriteInt32(0))
	require.NoError(t, s.WriteInt8(int8(TagEnd)))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	out, err := decodeRoot(in, nil)
	require.NoError(t, err)

	l := out.Get("empty").(*ListTag)
	assert.Equal(t, TagEnd, l.ElementType())
	assert.Equal(t, 0, l.Length())
}

func TestEncode_ListWithEndElementTypeFails(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewListOf("empty", TagEnd)))

	s := stream.New(64, true)
	err := encodeRoot(s, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestEncode_ListWithUnsetTypeFails(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewList("empty")))

	s := stream.New(64, true)
	err := encodeRoot(s, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestDecode_RejectsNonCompoundRoot(t *testing.T) {
	s := stream.New(8, true)
	require.NoError(t, s.WriteInt8(int8(TagInt)))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	_, err = decodeRoot(in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestDecode_NegativeArrayLengthFails(t *testing.T) {
	s := stream.New(32, true)
	require.NoError(t, s.WriteInt8(int8(TagCompound)))
	require.NoError(t, s.WriteString(""))
	require.NoError(t, s.WriteInt8(int8(TagByteArray)))
	require.NoError(t, s.WriteString("ba"))
	require.NoError(t, s.WriteInt32(-1))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	_, err = decodeRoot(in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestDecode_RejectsInvalidListElementType(t *testing.T) {
	s := stream.New(32, true)
	require.NoError(t, s.WriteInt8(int8(TagCompound)))
	require.NoError(t, s.WriteString(""))
	require.NoError(t, s.WriteInt8(int8(TagList)))
	require.NoError(t, s.WriteString("bad"))
	require.NoError(t, s.WriteInt8(0x7F))
	require.NoError(t, s.WriteInt32(0))
	require.NoError(t, s.WriteInt8(int8(TagEnd)))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	_, err = decodeRoot(in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestList_SetElementType(t *testing.T) {
	l := NewList("items")
	require.NoError(t, l.SetElementType(TagInt))
	assert.Equal(t, TagInt, l.ElementType())

	require.NoError(t, l.Push(NewInt("", 1)))
	assert.ErrorIs(t, l.SetElementType(TagShort), ErrFormatError)
	assert.NoError(t, l.SetElementType(TagInt))

	err := l.SetElementType(TagType(0x7F))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestDecode_RejectsOversizedLongArrayPayload(t *testing.T) {
	s := stream.New(32, true)
	require.NoError(t, s.WriteInt8(int8(TagCompound)))
	require.NoError(t, s.WriteString(""))
	require.NoError(t, s.WriteInt8(int8(TagLongArray)))
	require.NoError(t, s.WriteString("la"))
	require.NoError(t, s.WriteInt32(200_000_000)) // under MaxArrayElements, over MaxArrayPayloadBytes at 8 bytes/element

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	_, err = decodeRoot(in, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatError)
}

func TestDecode_FilterDiscardsTag(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewInt("keep", 1)))
	require.NoError(t, root.Put(NewInt("drop", 2)))

	s := stream.New(64, true)
	require.NoError(t, encodeRoot(s, root))

	in, err := stream.Wrap(s.Bytes(), 0, len(s.Bytes()), true)
	require.NoError(t, err)

	filter := func(tag Tag) bool { return tag.Name() != "drop" }
	out, err := decodeRoot(in, filter)
	require.NoError(t, err)

	assert.True(t, out.Has("keep"))
	assert.False(t, out.Has("drop"))
}

func TestRoundTrip_LittleEndian(t *testing.T) {
	root := NewCompound("doc")
	require.NoError(t, root.Put(NewInt("i", 123456)))

	out := roundTrip(t, root, false)
	assert.Equal(t, int32(123456), out.Get("i").(*IntTag).Value())
}
