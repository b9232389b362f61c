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

// SamplesC128 is the double-precision in-memory sample buffer that
// backs every Segment, regardless of which wire format it was loaded
// from or will be saved to: an ordered sequence of complex numbers
// with 64-bit real and imaginary components.
//
// Codecs convert into and out of this format at their load/save
// boundary; nothing in the data model itself is aware of int16
// quantisation or float32 narrowing.
type SamplesC128 []complex128

// Format implements the Samples interface.
func (s SamplesC128) Format() SampleFormat {
	return SampleFormatC128
}

// Size implements the Samples interface.
func (s SamplesC128) Size() int {
	return int(unsafe.Sizeof(complex128(0))) * len(s)
}

// Length implements the Samples interface.
func (s SamplesC128) Length() int {
	return len(s)
}

// Slice implements the Samples interface.
func (s SamplesC128) Slice(start, end int) Samples {
	return s[start:end]
}

// ToC64 narrows the model buffer to the float32 wire format shared by
// the IQW and IQTAR codecs.
func (s SamplesC128) ToC64(out SamplesC64) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i, sample := range s {
		out[i] = complex64(sample)
	}
	return nil
}

// ToI16 quantises the model buffer to the int16 wire format used by
// the WV codec, rounding half to even (matching numpy's np.round) and
// saturating to [math.MinInt16, math.MaxInt16]. scale defaults to
// 1.0 << 15 at the call site (see wv.quantize); this method takes the
// scale already folded into the input, i.e. it rounds and saturates
// only.
func (s SamplesC128) ToI16(out SamplesI16) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i, sample := range s {
		out[i] = [2]int16{
			saturateInt16(math.RoundToEven(real(sample))),
			saturateInt16(math.RoundToEven(imag(sample))),
		}
	}
	return nil
}

func saturateInt16(v float64) int16 {
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// vim: foldmethod=marker
