// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wavecodec/formats/wav"
)

// Example_encoding writes a short stereo file into memory.
func Example_encoding() {
	store := &wav.MemStorage{}

	out := wav.NewFile(wav.WithStorage(store))
	out.Bind("tone.wav")
	out.SetSampleRate(8000)
	out.SetChannels(2)
	out.SetBitsPerSample(16)

	// two frames: (L, R), (L, R)
	if err := out.Write([]float32{1.0, -1.0, 0.5, -0.5}); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	data, _ := store.Bytes("tone.wav")
	h := out.Header()
	fmt.Printf("Wrote %d bytes\n", len(data))
	fmt.Printf("Data: %d bytes, block align %d, byte rate %d\n", h.DataSize, h.BlockAlign, h.ByteRate)
	// Output:
	// Wrote 52 bytes
	// Data: 8 bytes, block align 4, byte rate 32000
}

// Example_roundTrip shows writing and then reading back.
func Example_roundTrip() {
	store := &wav.MemStorage{}

	out := wav.NewFile(wav.WithStorage(store))
	out.Bind("rt.wav")
	out.SetSampleRate(16000)
	out.SetChannels(1)
	out.SetBitsPerSample(8)
	out.Write([]float32{0, 1, -1})

	in := wav.NewFile(wav.WithStorage(store))
	if err := in.Open("rt.wav"); err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	samples, err := in.Read()
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("%d Hz, %d bits: %v\n", in.SampleRate(), in.BitsPerSample(), samples)
	// Output:
	// 16000 Hz, 8 bits: [0 1 -1]
}

// Example_validation shows how failures are classified.
func Example_validation() {
	store := &wav.MemStorage{}
	store.WriteFile("text.txt", bytes.Repeat([]byte("not audio "), 10))
	store.WriteFile("tiny.wav", []byte("RIFF"))

	f := wav.NewFile(wav.WithStorage(store))

	for _, path := range []string{"text.txt", "tiny.wav", "missing.wav"} {
		err := f.Open(path)
		switch {
		case errors.Is(err, wav.ErrBadSignature):
			fmt.Println(path, "-> bad signature")
		case errors.Is(err, wav.ErrTruncated):
			fmt.Println(path, "-> truncated")
		case errors.Is(err, wav.ErrIO):
			fmt.Println(path, "-> i/o error")
		}
	}
	// Output:
	// text.txt -> bad signature
	// tiny.wav -> truncated
	// missing.wav -> i/o error
}

// Example_header decodes a header from raw bytes.
func Example_header() {
	h := wav.DefaultHeader()
	h.SampleRate = 44100
	h.NumChannels = 2
	h.BitsPerSample = 16
	h.Recompute(44100 * 2)

	raw, _ := h.MarshalBinary()

	var back wav.Header
	back.UnmarshalBinary(raw)

	fmt.Println(len(raw), back.Validate() == nil, back.Duration())
	// Output:
	// 44 true 1s
}
