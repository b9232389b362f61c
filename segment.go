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

// Segment is one channel (IQTAR multi-channel) or one MWV segment: a
// sample buffer plus the metadata describing it.
type Segment struct {
	// Samples is the double-precision sample buffer for this segment.
	Samples SamplesC128

	// Meta is this segment's metadata. Never nil on a Segment returned
	// by a codec; NewSegment replaces a nil Meta with an empty one.
	Meta *Metadata
}

// NewSegment builds a Segment from a buffer and its metadata.
func NewSegment(samples SamplesC128, meta *Metadata) *Segment {
	if meta == nil {
		meta = NewMetadata()
	}
	return &Segment{Samples: samples, Meta: meta}
}

// Length returns the number of IQ samples in this segment's buffer.
func (s *Segment) Length() int {
	return s.Samples.Length()
}

// vim: foldmethod=marker
