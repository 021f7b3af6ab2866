// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pipeline contracts shared by the format
// decoders and the WAVE codec.
//
// This package contains:
//   - Source interface for audio input
//   - Decoder interface and a Registry keyed by file extension
//   - SliceSource and ReadAll for moving between streams and slices
//   - Interleave, Deinterleave and Peak for caller-side channel handling
//   - Resampler and MonoMixer, Sources that change rate or channel count
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every input decoder (wav, aiff, mp3, vorbis) returns a Source, so any of
// them can feed the WAVE encoder.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV") // case and leading dot are ignored
//
// # Collecting Samples
//
// ReadAll drains a Source into memory:
//
//	samples, err := audio.ReadAll(src, 0)
//
// # Channel Layout
//
// Samples are interleaved frame by frame: f0c0, f0c1, ..., f1c0, ...
// The codec never reorders them. Deinterleave and Interleave convert
// between that layout and one slice per channel:
//
//	perChannel, err := audio.Deinterleave(samples, 2)
//	left, right := perChannel[0], perChannel[1]
//
// # Rate and Channel Conversion
//
// Resampler and MonoMixer wrap another Source:
//
//	mono, _ := audio.NewMonoMixer(src)
//	r, _ := audio.NewResampler(mono, 8000)
//	samples, err := audio.ReadAll(r, 0)
//
// Resampler interpolates with a Catmull-Rom spline and low-pass filters
// the input when downsampling. Both pass samples through untouched when
// there is nothing to convert.
//
// # Sample Format
//
// Audio samples are represented as float32, nominally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents the positive full scale of the source bit depth
//   - -1.0 represents its negation
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
