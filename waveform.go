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

package waveform

import (
	"bytes"
	"fmt"
	"os"
	"time"
)

// ErrEmptyWaveform is returned by NewWaveform when given zero segments;
// a Waveform has at least one segment (spec.md §3 Invariants).
var ErrEmptyWaveform = fmt.Errorf("waveform: a Waveform must have at least one segment")

// ErrIndexOutOfRange is returned by Waveform.Data/Meta for an index
// outside [0, len(segments)). Go's static typing already rejects
// non-integer indices at compile time, so this is the only run-time
// check the reference implementation's IntegerIndexedProperty facade
// needed (spec.md §9).
var ErrIndexOutOfRange = fmt.Errorf("waveform: segment index out of range")

// Waveform is the in-memory model every codec loads into and saves
// from: a non-empty ordered list of Segments, an optional source
// filename, and a creation timestamp captured at construction (used by
// the WV DATE tag and the IQTAR <DateTime> element).
type Waveform struct {
	segments []*Segment
	filename string
	created  time.Time
}

// NewWaveform builds a Waveform from one or more segments, stamping
// created with the provided timestamp. Callers that want "now" should
// pass time.Now() explicitly -- this package never calls time.Now()
// itself so that save output is reproducible given a fixed clock.
func NewWaveform(created time.Time, segments ...*Segment) (*Waveform, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyWaveform
	}
	return &Waveform{segments: segments, created: created}, nil
}

// Filename returns the source filename, if the Waveform was loaded
// from a named path, or "" otherwise.
func (w *Waveform) Filename() string {
	return w.filename
}

// SetFilename sets the source filename.
func (w *Waveform) SetFilename(name string) {
	w.filename = name
}

// Created returns the creation timestamp.
func (w *Waveform) Created() time.Time {
	return w.created
}

// Segments returns the number of segments in this Waveform.
func (w *Waveform) Segments() int {
	return len(w.segments)
}

// Data returns the sample buffer of segment i.
func (w *Waveform) Data(i int) (SamplesC128, error) {
	if i < 0 || i >= len(w.segments) {
		return nil, ErrIndexOutOfRange
	}
	return w.segments[i].Samples, nil
}

// Meta returns the metadata of segment i.
func (w *Waveform) Meta(i int) (*Metadata, error) {
	if i < 0 || i >= len(w.segments) {
		return nil, ErrIndexOutOfRange
	}
	return w.segments[i].Meta, nil
}

// Segment returns segment i in full.
func (w *Waveform) Segment(i int) (*Segment, error) {
	if i < 0 || i >= len(w.segments) {
		return nil, ErrIndexOutOfRange
	}
	return w.segments[i], nil
}

// AppendSegment appends a segment to the Waveform. Used by codecs
// assembling a multi-segment (MWV) or multi-channel (IQTAR) load.
func (w *Waveform) AppendSegment(s *Segment) {
	w.segments = append(w.segments, s)
}

// ToBytes serialises w with codec c into an in-memory byte slice,
// rounding out the Waveform facade's to_bytes/from_bytes operation
// (spec.md §6) atop the stream-oriented Codec contract.
func (w *Waveform) ToBytes(c Codec, scale float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Save(&buf, w, scale); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes decodes a Waveform from an in-memory byte slice with codec
// c, the inverse of ToBytes.
func FromBytes(c Codec, data []byte) (*Waveform, error) {
	return c.Load(bytes.NewReader(data))
}

// LoadFile opens name and loads it with codec c, closing the file on
// every exit path. This is the filename-oriented convenience wrapper
// over Codec.Load for callers that have a path; streaming
// callers that already have an open handle should call c.Load
// directly instead.
func LoadFile(c Codec, name string) (*Waveform, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wf, err := c.Load(f)
	if err != nil {
		return nil, err
	}
	wf.filename = name
	return wf, nil
}

// SaveFile creates (or truncates) name and saves w into it with codec
// c, closing the file on every exit path.
func SaveFile(c Codec, name string, w *Waveform, scale float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Save(f, w, scale)
}

// vim: foldmethod=marker
