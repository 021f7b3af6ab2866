// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical PCM WAVE files.
//
// A canonical file is a 44-byte header (RIFF, a 16-byte fmt chunk and the
// data chunk header) followed by interleaved little-endian signed integer
// samples of 8, 16 or 32 bits. Anything else (extra chunks, compressed
// encodings, 24-bit samples) is rejected by validation rather than decoded.
//
// # Header
//
// Header is a plain value with explicit little-endian encoding:
//
//	| Offset | Size | Field           |
//	|--------|------|-----------------|
//	| 0      | 4    | "RIFF"          |
//	| 4      | 4    | chunk size      |
//	| 8      | 4    | "WAVE"          |
//	| 12     | 4    | "fmt "          |
//	| 16     | 4    | 16              |
//	| 20     | 2    | 1 (PCM)         |
//	| 22     | 2    | channels        |
//	| 24     | 4    | sample rate     |
//	| 28     | 4    | byte rate       |
//	| 32     | 2    | block align     |
//	| 34     | 2    | bits per sample |
//	| 36     | 4    | "data"          |
//	| 40     | 4    | data size       |
//
// # Reading
//
//	f := wav.NewFile()
//	if err := f.Open("in.wav"); err != nil {
//	    // errors.Is(err, wav.ErrTruncated), wav.ErrBadSignature, ...
//	}
//	samples, err := f.Read()
//
// Samples are float32, each integer divided by 2^(bits-1)-1, interleaved
// frame by frame. Splitting channels is left to the caller (see
// audio.Deinterleave).
//
// # Writing
//
//	out := wav.NewFile()
//	out.Bind("out.wav")
//	out.SetSampleRate(44100)
//	out.SetChannels(2)
//	out.SetBitsPerSample(16)
//	err := out.Write(samples)
//
// Write recomputes byte rate, block align and both chunk sizes, then stores
// header and payload with one Storage.WriteFile call. Samples are multiplied
// by the same 2^(bits-1)-1, rounded and saturated, so 1.0 encodes as 32767
// and -1.0 as -32767 at 16 bits.
//
// Format values held as int go through SetFormat, which rejects anything
// the header fields cannot hold instead of truncating it:
//
//	err := out.SetFormat(channels, rate, bits) // wav.ErrOutOfRange
//
// Write fails with ErrOutOfRange when the payload would exceed MaxDataSize
// bytes, the most a 32-bit RIFF size field can describe.
//
// # Error Handling
//
// Failures are classified with errors.Is:
//   - ErrTruncated: fewer than 44 bytes, or a payload shorter than announced
//   - ErrBadSignature: a RIFF, WAVE, "fmt " or data id mismatch
//   - ErrUnsupportedBitDepth: bits per sample other than 8, 16 or 32
//   - ErrUnsupportedEncoding: a format tag other than PCM
//   - ErrOutOfRange: a format or payload the header fields cannot hold
//   - ErrIO: the storage or stream could not be read or written; the error
//     is an *IOError carrying the operation, path and cause
//
// # Storage
//
// File talks to a Storage. OSStorage replaces files through a temporary
// sibling and a rename; MemStorage keeps everything in memory.
//
// # Probing
//
// Probe lists the chunks of any RIFF stream, which explains why a file with
// a LIST chunk or an extended fmt chunk fails to open.
package wav
