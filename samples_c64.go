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
	"math"
	"unsafe"
)

// SamplesC64 is a vector of complex64 values, i.e. interleaved float32
// I/Q pairs. This is the on-disk representation of the IQW codec and
// of the payload member inside an IQTAR archive.
type SamplesC64 []complex64

// Format implements the Samples interface.
func (s SamplesC64) Format() SampleFormat {
	return SampleFormatC64
}

// Size implements the Samples interface.
func (s SamplesC64) Size() int {
	return int(unsafe.Sizeof(complex64(0))) * len(s)
}

// Length implements the Samples interface.
func (s SamplesC64) Length() int {
	return len(s)
}

// Slice implements the Samples interface.
func (s SamplesC64) Slice(start, end int) Samples {
	return s[start:end]
}

// ToC128 widens the float32 wire buffer to the double-precision model
// buffer used by Segment.
func (s SamplesC64) ToC128(out SamplesC128) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i, sample := range s {
		out[i] = complex128(sample)
	}
	return nil
}

// ToI16 quantises the float32 wire buffer directly to int16, used when
// converting an IQTAR/IQW-origin Segment into a WV payload without an
// intermediate widen-then-narrow pass.
func (s SamplesC64) ToI16(out SamplesI16) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i := range s {
		out[i] = [2]int16{
			int16(real(s[i]) * math.MaxInt16),
			int16(imag(s[i]) * math.MaxInt16),
		}
	}
	return nil
}

// vim: foldmethod=marker
