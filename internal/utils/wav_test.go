package utils

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}

	wav := EncodeWAV(pcm, WAVSampleRate, WAVChannels, WAVBitsPerSample)

	require.Len(t, wav, 44+len(pcm))

	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, "data", string(wav[36:40]))

	assert.EqualValues(t, 36+len(pcm), binary.LittleEndian.Uint32(wav[4:8]))
	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(wav[20:22]), "audio format must be PCM")
	assert.EqualValues(t, WAVChannels, binary.LittleEndian.Uint16(wav[22:24]))
	assert.EqualValues(t, WAVSampleRate, binary.LittleEndian.Uint32(wav[24:28]))
	assert.EqualValues(t, WAVSampleRate*2, binary.LittleEndian.Uint32(wav[28:32]), "byte rate for 16-bit mono")
	assert.EqualValues(t, WAVBitsPerSample, binary.LittleEndian.Uint16(wav[34:36]))
	assert.EqualValues(t, len(pcm), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, pcm, wav[44:])
}

func TestEncodeWAV_EmptyPayload(t *testing.T) {
	wav := EncodeWAV(nil, WAVSampleRate, WAVChannels, WAVBitsPerSample)

	require.Len(t, wav, 44)
	assert.EqualValues(t, 0, binary.LittleEndian.Uint32(wav[40:44]))
}
