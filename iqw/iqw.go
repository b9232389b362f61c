// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2020
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

// Package iqw implements the simplest of the three codecs: a raw
// sequence of little-endian float32 values in interleaved I,Q order,
// no header, no trailer, no length field. It is also the binary
// substrate the iqtar codec delegates its payload member to.
package iqw

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"hz.tools/waveform"
)

// ErrNoMetadata's message is appended to the waveform.ErrConfiguration
// that Codec.LoadMeta returns (errors.Is matches ErrConfiguration, not
// ErrNoMetadata): iqw carries no header at all, so a metadata-only
// load is a request the format cannot satisfy (spec.md §4.1
// "Fails: IQW carries no metadata").
var ErrNoMetadata = fmt.Errorf("iqw: format carries no metadata")

// Codec implements waveform.Codec for the .iqw wire format.
type Codec struct{}

var _ waveform.Codec = Codec{}

// Load reads every byte of r and decodes it as interleaved float32
// I,Q pairs into a single-segment Waveform with no metadata defaults
// applied (spec.md §4.1: "metadata defaults suppressed (raw load)").
func (Codec) Load(r io.Reader) (*waveform.Waveform, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(content)
}

// LoadChunk seeks past offset*8 bytes and decodes samples*8 bytes that
// follow. If the stream is shorter than requested, the returned buffer
// is correspondingly short rather than zero-padded (spec.md §9: this
// behaviour is unasserted by the source; this implementation reads
// what's available).
func (Codec) LoadChunk(r io.Reader, samples, offset int) (*waveform.Waveform, error) {
	if _, err := io.CopyN(io.Discard, r, int64(offset)*8); err != nil && err != io.EOF {
		return nil, err
	}

	buf := make([]byte, samples*8)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	// Trim to a whole number of 8-byte I/Q pairs; a short final pair
	// carries no complete sample and is dropped.
	n -= n % 8
	return decode(buf[:n])
}

// LoadMeta always fails: iqw has no metadata to load (spec.md §4.1).
func (Codec) LoadMeta(r io.Reader) (*waveform.Waveform, error) {
	return nil, fmt.Errorf("%w: %s", waveform.ErrConfiguration, ErrNoMetadata)
}

// Save divides each segment's samples by scale (default 1.0),
// interleaves real/imag into a float32 stream, and writes the
// concatenation of every segment's stream with no separator (spec.md
// §4.1).
func (Codec) Save(w io.Writer, wf *waveform.Waveform, scale float64) error {
	if scale == 0 {
		scale = 1.0
	}
	for i := 0; i < wf.Segments(); i++ {
		data, err := wf.Data(i)
		if err != nil {
			return err
		}
		out := make(waveform.SamplesC64, data.Length())
		for j, sample := range data {
			out[j] = complex64(sample / complex(scale, 0))
		}
		if _, err := waveform.WriteSamples(w, out); err != nil {
			return err
		}
	}
	return nil
}

// decode splits content into interleaved float32 I,Q pairs and builds
// the single-segment Waveform iqw always produces.
func decode(content []byte) (*waveform.Waveform, error) {
	c64 := make(waveform.SamplesC64, len(content)/8)
	if _, err := waveform.ReadSamples(bytes.NewReader(content), c64); err != nil {
		return nil, err
	}

	c128 := make(waveform.SamplesC128, len(c64))
	if err := c64.ToC128(c128); err != nil {
		return nil, err
	}

	seg := waveform.NewSegment(c128, waveform.NewMetadata())
	return waveform.NewWaveform(time.Time{}, seg)
}

// vim: foldmethod=marker
