package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_New(t *testing.T) {
	f := New()
	assert.Equal(t, "", f.Root().Name())
	assert.Equal(t, 0, f.Root().Size())
}

func TestFile_SaveLoadRoundTrip_NoCompression(t *testing.T) {
	f := New()
	require.NoError(t, f.Root().Put(NewInt("level", 7)))

	data, err := f.SaveBuffer(WithCompression(NoCompression))
	require.NoError(t, err)

	loaded, err := LoadBuffer(data)
	require.NoError(t, err)
	assert.Equal(t, int32(7), loaded.Root().Get("level").(*IntTag).Value())
}

func TestFile_SaveLoadRoundTrip_GZIPAutoDetected(t *testing.T) {
	f := New()
	require.NoError(t, f.Root().Put(mustString(t, "name", "world")))

	data, err := f.SaveBuffer(WithCompression(GZIP))
	require.NoError(t, err)
	assert.Equal(t, byte(0x1F), data[0])

	loaded, err := LoadBuffer(data)
	require.NoError(t, err)
	assert.Equal(t, "world", loaded.Root().Get("name").(*StringTag).Value())
}

func TestFile_SaveLoadRoundTrip_ZlibAutoDetected(t *testing.T) {
	f := New()
	require.NoError(t, f.Root().Put(NewInt("x", 1)))

	data, err := f.SaveBuffer(WithCompression(Zlib))
	require.NoError(t, err)
	assert.Equal(t, byte(0x78), data[0])

	loaded, err := LoadBuffer(data)
	require.NoError(t, err)
	assert.Equal(t, int32(1), loaded.Root().Get("x").(*IntTag).Value())
}

func TestFile_SaveAutoDetectFails(t *testing.T) {
	f := New()
	_, err := f.SaveBuffer(WithCompression(AutoDetect))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRangeError)
}

func TestFile_SavePreservesLastCompressionFromLoad(t *testing.T) {
	f := New()
	data, err := f.SaveBuffer(WithCompression(Zlib))
	require.NoError(t, err)

	loaded, err := LoadBuffer(data)
	require.NoError(t, err)

	again, err := loaded.SaveBuffer()
	require.NoError(t, err)
	assert.Equal(t, byte(0x78), again[0], "re-saving without an explicit mode should reuse the last-seen compression")
}

func TestFile_Walk(t *testing.T) {
	f := New()
	inner := NewCompound("inner")
	require.NoError(t, inner.Put(NewInt("x", 1)))
	require.NoError(t, f.Root().Put(inner))

	var paths []string
	f.Walk(func(path string, tag Tag) {
		paths = append(paths, path)
	})
	assert.Contains(t, paths, "inner")
	assert.Contains(t, paths, "inner.x")
}

func TestFile_Pretty(t *testing.T) {
	f := New()
	require.NoError(t, f.Root().Put(NewInt("x", 1)))
	out := f.Pretty()
	assert.Contains(t, out, "TAG_Compound")
	assert.Contains(t, out, "TAG_Int")
}

func TestFile_RenameCollisionInCompound(t *testing.T) {
	f := New()
	a := NewInt("a", 1)
	b := NewInt("b", 2)
	require.NoError(t, f.Root().Put(a))
	require.NoError(t, f.Root().Put(b))

	err := a.SetName("b")
	require.Error(t, err)
}

func TestFile_BigEndianIsDefault(t *testing.T) {
	f := New()
	require.NoError(t, f.Root().Put(NewInt("x", 256)))

	data, err := f.SaveBuffer(WithCompression(NoCompression))
	require.NoError(t, err)

	// Compound tag byte, 2-byte name length (0), then Int tag byte, 2-byte
	// name length (1), name 'x', then the 4-byte big-endian payload.
	payloadStart := 1 + 2 + 1 + 2 + 1
	payload := data[payloadStart : payloadStart+4]
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, payload)
}
