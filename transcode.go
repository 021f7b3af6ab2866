// SPDX-License-Identifier: EPL-2.0

package wavecodec

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ik5/wavecodec/audio"
	"github.com/ik5/wavecodec/formats/aiff"
	"github.com/ik5/wavecodec/formats/mp3"
	"github.com/ik5/wavecodec/formats/vorbis"
	"github.com/ik5/wavecodec/formats/wav"
)

// DefaultRegistry returns a registry with every decoder in formats/ keyed
// by the usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// DecodeFile picks a decoder from reg by the extension of path and decodes
// the whole file from memory. The returned source holds no file handle.
func DecodeFile(reg *audio.Registry, path string) (audio.Source, error) {
	ext := filepath.Ext(path)

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &wav.IOError{Op: "read", Path: path, Err: err}
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return src, nil
}

// Reformat wraps src so that it yields rate Hz and, when mono is set, a
// single channel. A rate of 0 keeps the source rate. With nothing to change
// src itself is returned, so the samples stay untouched.
func Reformat(src audio.Source, rate int, mono bool) (audio.Source, error) {
	if rate < 0 {
		return nil, errors.Wrapf(audio.ErrInvalidRate, "%d Hz", rate)
	}

	out := src
	if mono && src.Channels() != 1 {
		mixer, err := audio.NewMonoMixer(out)
		if err != nil {
			return nil, err
		}
		out = mixer
	}

	if rate != 0 && rate != out.SampleRate() {
		resampler, err := audio.NewResampler(out, rate)
		if err != nil {
			return nil, err
		}
		out = resampler
	}

	return out, nil
}

// Transcode drains src and writes it to dst as bits-per-sample PCM, taking
// the channel count and sample rate from src. dst must already be bound to
// an output path. src is not closed.
//
// A format the header cannot hold is rejected before src is read.
func Transcode(src audio.Source, dst *wav.File, bits int) error {
	if err := dst.SetFormat(src.Channels(), src.SampleRate(), bits); err != nil {
		return err
	}

	samples, err := audio.ReadAll(src, 0)
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	return dst.Write(samples)
}

// ReadFile opens path with validation and decodes every sample. The header
// is returned even when decoding fails part way.
func ReadFile(path string, opts ...wav.Option) ([]float32, wav.Header, error) {
	f := wav.NewFile(opts...)
	if err := f.Open(path); err != nil {
		return []float32{}, f.Header(), err
	}

	samples, err := f.Read()

	return samples, f.Header(), err
}

// WriteFile writes samples to path using the channel count, sample rate
// and bit depth of h. The size fields of h are ignored and recomputed.
func WriteFile(path string, h wav.Header, samples []float32, opts ...wav.Option) error {
	f := wav.NewFile(opts...)
	if _, err := f.Bind(path); err != nil {
		return err
	}

	f.SetChannels(h.NumChannels)
	f.SetSampleRate(h.SampleRate)
	f.SetBitsPerSample(h.BitsPerSample)

	return f.Write(samples)
}
