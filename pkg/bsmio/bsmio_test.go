package bsmio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/libbsm/pkg/bsm"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestBSM builds a file with one position and nothing else.
func createTestBSM() []byte {
	h := bsm.HeaderV1{
		Magic:         bsm.Magic,
		Version:       bsm.Version,
		BSphere:       bsm.BSphere{X: 1, Y: 2, Z: 3, Radius: 2},
		NumVerts:      1,
		OffsPositions: bsm.HeaderV1Size,
		OffsTexCoords: bsm.HeaderV1Size + bsm.PositionSize,
		OffsNormals:   bsm.HeaderV1Size + bsm.PositionSize + bsm.TexCoordSize,
		OffsTangents:  bsm.HeaderV1Size + bsm.PositionSize + bsm.TexCoordSize + bsm.NormalSize,
	}
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, h)
	binary.Write(buf, binary.LittleEndian, bsm.Position{X: 1, Y: 2, Z: 3})
	binary.Write(buf, binary.LittleEndian, bsm.TexCoord{U: 0.5, V: 0.5})
	binary.Write(buf, binary.LittleEndian, bsm.Normal{X: 0, Y: 5, Z: 0})
	binary.Write(buf, binary.LittleEndian, bsm.Tangent{X: 0, Y: 0, Z: 2, Handedness: 1})
	return buf.Bytes()
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadFile_Plain(t *testing.T) {
	want := createTestBSM()
	path := writeTemp(t, "cube.bsm", want)

	got, err := ReadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, bsm.IsValid(got))
}

func TestReadFile_Zstd(t *testing.T) {
	want := createTestBSM()
	packed := compress(t, want)
	require.True(t, Compressed(packed))
	path := writeTemp(t, "cube.bsm.zst", packed)

	got, err := ReadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Without decompression the frame is returned as is and is not a BSM.
	raw, err := ReadFile(path, Options{Decompress: false})
	require.NoError(t, err)
	assert.Equal(t, packed, raw)
	assert.False(t, bsm.IsValid(raw))
}

func TestRead_TooLarge(t *testing.T) {
	data := createTestBSM()

	_, err := Read(bytes.NewReader(data), Options{MaxSize: int64(len(data) - 1)})
	assert.ErrorIs(t, err, ErrTooLarge)

	got, err := Read(bytes.NewReader(data), Options{MaxSize: int64(len(data))})
	require.NoError(t, err)
	assert.Len(t, got, len(data))
}

func TestRead_ZstdTooLarge(t *testing.T) {
	data := make([]byte, 1<<16)
	_, err := Read(bytes.NewReader(compress(t, data)), Options{MaxSize: 1024, Decompress: true})
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(bytes.NewReader(nil), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("/nonexistent/model.bsm", DefaultOptions())
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeTemp(t, "cube.bsm.zst", compress(t, createTestBSM()))

	m, err := LoadFile(path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, m.Normals, 1)
	assert.Equal(t, bsm.Normal{X: 0, Y: 1, Z: 0}, m.Normals[0])
	assert.Equal(t, bsm.Tangent{X: 0, Y: 0, Z: 1, Handedness: 1}, m.Tangents[0])
	assert.Equal(t, float32(0.5), m.Transform().Scale)
}

func TestLoadFile_Invalid(t *testing.T) {
	data := createTestBSM()
	data[0] = 'X'
	path := writeTemp(t, "bad.bsm", data)

	_, err := LoadFile(path, DefaultOptions())
	assert.ErrorIs(t, err, bsm.ErrInvalidMagic)
}
