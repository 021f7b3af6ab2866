// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader serves little-endian int16 PCM in chunks of at most step bytes.
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	offset     int
	step       int
	err        error
}

func newMockReader(step int, samples ...int16) *mockMP3Reader {
	pcm := make([]byte, 0, len(samples)*2)
	for _, v := range samples {
		pcm = binary.LittleEndian.AppendUint16(pcm, uint16(v))
	}
	return &mockMP3Reader{sampleRate: 44100, pcm: pcm, step: step}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	end := len(m.pcm)
	if m.step > 0 {
		end = min(end, m.offset+m.step)
	}
	n := copy(buf, m.pcm[m.offset:end])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotMP3) {
				t.Errorf("Decode() error = %v, want ErrNotMP3", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(0), sampleRate: 44100, buf: make([]byte, 8192)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(0, 0, 32767, -32767, -32768)}
	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if dst[0] != 0 || dst[1] != 1 || dst[2] != -1 {
		t.Errorf("samples = %v, want [0 1 -1 ...]", dst)
	}
	if dst[3] >= -1 {
		t.Errorf("most negative code = %v, want below -1", dst[3])
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_OddChunks(t *testing.T) {
	t.Parallel()

	want := []int16{100, -200, 300, -400, 500}
	src := &source{dec: newMockReader(3, want...)}

	var got []float32
	dst := make([]float32, 2)
	for range 20 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != float32(v)/32767 {
			t.Errorf("sample %d = %v, want %v", i, got[i], float32(v)/32767)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(0, 1, 2)}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	reader := newMockReader(0, 1, 2)
	reader.err = io.ErrUnexpectedEOF
	src := &source{dec: reader}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 4096)
	for i := range samples {
		samples[i] = int16(i * 7)
	}
	dst := make([]float32, 4096)

	for b.Loop() {
		src := &source{dec: newMockReader(0, samples...)}
		src.ReadSamples(dst)
	}
}
