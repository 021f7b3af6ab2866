// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/pkg/errors"
	xriff "golang.org/x/image/riff"
)

// ChunkInfo describes one top-level chunk inside a RIFF form.
type ChunkInfo struct {
	ID     string
	Size   uint32
	Offset int64 // offset of the chunk header from the start of the stream
}

// Probe lists the form type and the chunks of a RIFF stream without
// interpreting them. It shows why a file with extra chunks, or with a fmt
// chunk longer than 16 bytes, is not a canonical 44-byte header.
//
// A stream that ends early gives ErrTruncated, a missing RIFF id
// ErrBadSignature, and a failing reader an *IOError. Chunks read before the
// failure are returned with the error.
func Probe(r io.Reader) (string, []ChunkInfo, error) {
	tr := &readTracker{r: r}

	var head [12]byte
	if _, err := io.ReadFull(tr, head[:]); err != nil {
		return "", nil, tr.classify(err, "reading RIFF header")
	}
	if [4]byte(head[:4]) != riff.RiffID {
		return "", nil, errors.Wrapf(ErrBadSignature, "stream starts with %q", head[:4])
	}

	form, list, err := xriff.NewReader(io.MultiReader(bytes.NewReader(head[:]), tr))
	if err != nil {
		return "", nil, errors.Wrap(ErrBadSignature, err.Error())
	}

	var chunks []ChunkInfo
	offset := int64(12)

	for {
		id, size, _, err := list.Next()
		if err == io.EOF {
			return string(form[:]), chunks, nil
		}
		if err != nil {
			return string(form[:]), chunks, tr.classify(err, fmt.Sprintf("after %d chunks", len(chunks)))
		}

		chunks = append(chunks, ChunkInfo{ID: string(id[:]), Size: size, Offset: offset})
		offset += 8 + int64(size) + int64(size&1)
	}
}

// readTracker remembers the last error of the underlying reader other
// than io.EOF, so that parse failures and read failures can be told apart.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

func (t *readTracker) classify(err error, context string) error {
	if t.err != nil {
		return errors.Wrap(&IOError{Op: "read", Path: "riff stream", Err: t.err}, context)
	}
	return errors.Wrapf(ErrTruncated, "%s: %v", context, err)
}

// Canonical reports whether chunks are exactly a 16-byte fmt chunk followed
// by a data chunk, the layout Header models.
func Canonical(chunks []ChunkInfo) bool {
	return len(chunks) == 2 &&
		chunks[0].ID == "fmt " && chunks[0].Size == fmtChunkSize &&
		chunks[1].ID == "data"
}
