package sound

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/gopxl/beep"
)

// BytesPerFrame - один стерео-кадр 16 бит little-endian
const BytesPerFrame = 4

// PCMReader отдаёт поток beep в формате, который ждёт плеер Ebitengine:
// 16-битный знаковый little-endian, два канала.
type PCMReader struct {
	streamer beep.Streamer
	buf      [][2]float64
	done     bool
}

// NewPCMReader creates a reader over s
func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{streamer: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.streamer.Stream(buf)
	if !ok {
		r.done = true
		if err := r.streamer.Err(); err != nil {
			return 0, err
		}
	}
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			binary.LittleEndian.PutUint16(p[i*BytesPerFrame+c*2:], uint16(toInt16(buf[i][c])))
		}
	}
	if n == 0 && r.done {
		return 0, io.EOF
	}
	return n * BytesPerFrame, nil
}

// RenderPCM читает конечный поток целиком
func RenderPCM(s beep.Streamer) ([]byte, error) {
	r := NewPCMReader(s)
	chunk := make([]byte, 1024*BytesPerFrame)
	var out bytes.Buffer
	for {
		n, err := r.Read(chunk)
		out.Write(chunk[:n])
		if err == io.EOF {
			return out.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
