// Package audio converts captured microphone frames into the wire format of the live session.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"guardian/internal/domain/service"
)

// EncodePCM16 clamps samples to [-1, 1] and scales them to little-endian signed 16-bit PCM.
// Negative samples scale by 32768 and the rest by 32767 so both ends of the range are reachable.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		s = max(-1, min(1, s))

		var v int16
		if s < 0 {
			v = int16(s * 32768)
		} else {
			v = int16(s * 32767)
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}

	return out
}

// MimeType returns the descriptor of PCM16 mono audio at the given rate.
func MimeType(sampleRate int) string {
	return fmt.Sprintf("audio/pcm;rate=%d", sampleRate)
}

// Chunk encodes one frame as base64 PCM16 tagged with its mime type.
func Chunk(samples []float32, sampleRate int) service.AudioChunk {
	return service.AudioChunk{
		Data:     base64.StdEncoding.EncodeToString(EncodePCM16(samples)),
		MimeType: MimeType(sampleRate),
	}
}

// DecodeFloat32LE reads little-endian IEEE-754 samples as sent by the device bridge.
// A trailing partial sample is ignored.
func DecodeFloat32LE(raw []byte) []float32 {
	n := len(raw) / 4
	out := make([]float32, n)
	for i := range n {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}

	return out
}
