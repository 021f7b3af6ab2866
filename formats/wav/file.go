// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/pkg/errors"
)

// File binds a Header to a path in a Storage and decodes or encodes the
// samples stored there.
//
// A File is not safe for concurrent use. Distinct Files may work on distinct
// paths concurrently; nothing coordinates access to the same path.
type File struct {
	path    string
	header  Header
	storage Storage
	logger  *slog.Logger
}

// Option configures a File.
type Option func(*File)

// WithStorage sets the byte-stream layer. The default is OSStorage.
func WithStorage(s Storage) Option {
	return func(f *File) {
		f.storage = s
	}
}

// WithLogger sets the logger used for debug events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(f *File) {
		f.logger = l
	}
}

// NewFile returns an unbound File holding DefaultHeader.
func NewFile(opts ...Option) *File {
	f := &File{
		header:  DefaultHeader(),
		storage: OSStorage{},
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Path is the path the File is bound to, or "" before Bind or Open.
func (f *File) Path() string { return f.path }

// Header returns a copy of the in-memory header.
func (f *File) Header() Header { return f.header }

// Channels is the channel count of the in-memory header.
func (f *File) Channels() uint16 { return f.header.NumChannels }

// SetChannels sets the channel count. Derived fields wait for Write.
func (f *File) SetChannels(n uint16) { f.header.NumChannels = n }

// SampleRate is the sample rate of the in-memory header, in Hz.
func (f *File) SampleRate() uint32 { return f.header.SampleRate }

// SetSampleRate sets the sample rate. Derived fields wait for Write.
func (f *File) SetSampleRate(rate uint32) { f.header.SampleRate = rate }

// BitsPerSample is the sample width of the in-memory header.
func (f *File) BitsPerSample() uint16 { return f.header.BitsPerSample }

// SetBitsPerSample sets the sample width. Only 8, 16 and 32 can be written
// or read; other values are stored and rejected later.
func (f *File) SetBitsPerSample(bits uint16) { f.header.BitsPerSample = bits }

// SetFormat sets channel count, sample rate and bit depth from values of
// wider types, such as those of an audio.Source. Nothing is changed when a
// value does not fit: bits other than 8, 16 or 32 give ErrUnsupportedBitDepth
// and channels or rates outside their fields give ErrOutOfRange.
func (f *File) SetFormat(channels, sampleRate, bits int) error {
	if !SupportedBitDepth(bits) {
		return errors.Wrapf(ErrUnsupportedBitDepth, "%d bits per sample", bits)
	}
	if channels < 1 || channels > math.MaxUint16 {
		return errors.Wrapf(ErrOutOfRange, "%d channels", channels)
	}
	if sampleRate < 1 || uint64(sampleRate) > math.MaxUint32 {
		return errors.Wrapf(ErrOutOfRange, "sample rate %d", sampleRate)
	}

	f.header.NumChannels = uint16(channels)
	f.header.SampleRate = uint32(sampleRate)
	f.header.BitsPerSample = uint16(bits)

	return nil
}

// Bind points the File at path and, when the object there holds at least a
// full header, loads that header. It returns the size of the object.
//
// A missing object is not an error: the size is 0 and the header keeps its
// current value. This is how an output path is bound before Write.
func (f *File) Bind(path string) (int64, error) {
	f.path = path

	size, err := f.storage.Size(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("wav: bound missing object", "path", path)
		return 0, nil
	}
	if err != nil {
		return 0, ioFailure("stat", path, err)
	}

	if size < HeaderSize {
		f.logger.Debug("wav: object shorter than header", "path", path, "size", size)
		return size, nil
	}

	if err := f.readHeader(); err != nil {
		return size, err
	}

	f.logger.Debug("wav: header loaded", "path", path,
		"channels", f.header.NumChannels,
		"sample_rate", f.header.SampleRate,
		"bits_per_sample", f.header.BitsPerSample,
		"data_size", f.header.DataSize)

	return size, nil
}

// Open binds path and requires a valid header there. It fails with ErrIO
// when the object cannot be reached, ErrTruncated when it is shorter than a
// header, and with the Header.Validate classification otherwise.
//
// On failure the in-memory header is reset to DefaultHeader.
func (f *File) Open(path string) error {
	err := f.open(path)
	if err != nil {
		f.header = DefaultHeader()
		f.logger.Debug("wav: open rejected", "path", path, "error", err)
	}

	return err
}

func (f *File) open(path string) error {
	size, err := f.Bind(path)
	if err != nil {
		return err
	}

	if size == 0 {
		if _, err := f.storage.Size(path); err != nil {
			return ioFailure("stat", path, err)
		}
	}

	if size < HeaderSize {
		return errors.Wrapf(ErrTruncated, "%s: %d bytes, header needs %d", path, size, HeaderSize)
	}

	return f.header.Validate()
}

func (f *File) readHeader() error {
	r, err := f.storage.Open(f.path)
	if err != nil {
		return ioFailure("open", f.path, err)
	}
	defer r.Close()

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return errors.Wrapf(ErrTruncated, "%s: reading header", f.path)
		}
		return ioFailure("read", f.path, err)
	}

	var h Header
	if err := h.UnmarshalBinary(buf); err != nil {
		return err
	}
	f.header = h

	return nil
}

// Read decodes every sample of the bound object into interleaved float32
// values, each integer divided by 2^(bits-1)-1.
//
// An unsupported bit depth returns an empty slice and ErrUnsupportedBitDepth.
// A payload shorter than the header announces returns the samples that were
// read completely together with ErrTruncated.
func (f *File) Read() ([]float32, error) {
	bits := int(f.header.BitsPerSample)

	r, err := f.storage.Open(f.path)
	if err != nil {
		return []float32{}, ioFailure("open", f.path, err)
	}
	defer r.Close()

	if !SupportedBitDepth(bits) {
		return []float32{}, errors.Wrapf(ErrUnsupportedBitDepth, "%s: %d bits per sample", f.path, bits)
	}

	if _, err := io.CopyN(io.Discard, r, HeaderSize); err != nil {
		if err == io.EOF {
			return []float32{}, errors.Wrapf(ErrTruncated, "%s: skipping header", f.path)
		}
		return []float32{}, ioFailure("read", f.path, err)
	}

	count := f.header.SampleCount()
	bps := bits / 8

	// Never trust DataSize for the allocation: cap it by what is stored.
	if size, err := f.storage.Size(f.path); err == nil {
		count = min(count, int(max(size-HeaderSize, 0))/bps)
	}

	payload := make([]byte, count*bps)
	n, err := io.ReadFull(r, payload)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return []float32{}, ioFailure("read", f.path, err)
	}

	samples := make([]float32, n/bps)
	decodeSamples(samples, payload[:n], bits)

	if len(samples) < f.header.SampleCount() {
		f.logger.Debug("wav: short payload", "path", f.path,
			"want", f.header.SampleCount(), "got", len(samples))
		return samples, errors.Wrapf(ErrTruncated, "%s: %d of %d samples", f.path, len(samples), f.header.SampleCount())
	}

	return samples, nil
}

// Write encodes samples at the configured bit depth and replaces the bound
// object with header and payload in a single Storage write.
//
// Channel count, sample rate and bit depth must be set beforehand; the
// derived header fields are recomputed from them and len(samples). Values
// outside [-1, 1] saturate. An unsupported bit depth writes nothing.
func (f *File) Write(samples []float32) error {
	bits := int(f.header.BitsPerSample)
	if !SupportedBitDepth(bits) {
		return errors.Wrapf(ErrUnsupportedBitDepth, "%d bits per sample", bits)
	}

	if f.path == "" {
		return errors.Wrap(ErrIO, "no path bound")
	}

	if err := f.header.Recompute(len(samples)); err != nil {
		return err
	}

	buf, err := f.header.AppendBinary(make([]byte, 0, HeaderSize+int(f.header.DataSize)))
	if err != nil {
		return err
	}
	buf = appendSamples(buf, samples, bits)

	if err := f.storage.WriteFile(f.path, buf); err != nil {
		return ioFailure("write", f.path, err)
	}

	f.logger.LogAttrs(context.Background(), slog.LevelDebug, "wav: written",
		slog.String("path", f.path),
		slog.Int("samples", len(samples)),
		slog.Int("bytes", len(buf)))

	return nil
}

// ReadFloat32Buffer is Read wrapped in a go-audio buffer carrying the
// channel count, sample rate and source bit depth.
func (f *File) ReadFloat32Buffer() (*goaudio.Float32Buffer, error) {
	samples, err := f.Read()
	if err != nil {
		return nil, err
	}

	return &goaudio.Float32Buffer{
		Format:         f.header.PCMFormat(),
		Data:           samples,
		SourceBitDepth: int(f.header.BitsPerSample),
	}, nil
}

// WriteFloat32Buffer takes channel count and sample rate from buf.Format,
// and the bit depth from buf.SourceBitDepth when it is set, then calls Write.
// Values that do not fit the header are rejected as SetFormat does.
func (f *File) WriteFloat32Buffer(buf *goaudio.Float32Buffer) error {
	if buf == nil {
		return errors.New("wav: nil buffer")
	}

	channels, rate, bits := int(f.header.NumChannels), int(f.header.SampleRate), int(f.header.BitsPerSample)
	if buf.Format != nil {
		channels, rate = buf.Format.NumChannels, buf.Format.SampleRate
	}
	if buf.SourceBitDepth != 0 {
		bits = buf.SourceBitDepth
	}

	if err := f.SetFormat(channels, rate, bits); err != nil {
		return err
	}

	return f.Write(buf.Data)
}

func ioFailure(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
