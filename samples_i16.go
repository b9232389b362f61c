// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2020-2021
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

// SamplesI16 is a vector of interleaved int16 integers, MSB aligned,
// ranging from math.MinInt16 to math.MaxInt16. This is the on-disk
// representation of WV payload data: little-endian pairs [I, Q].
//
// Quantisation scale is 2^15 by default (saturating); see
// SamplesC128.ToI16 and wv's quantize/dequantize helpers.
type SamplesI16 [][2]int16

// Format implements the Samples interface.
func (s SamplesI16) Format() SampleFormat {
	return SampleFormatI16
}

// Size implements the Samples interface.
func (s SamplesI16) Size() int {
	return int(unsafe.Sizeof([2]int16{})) * len(s)
}

// Length implements the Samples interface.
func (s SamplesI16) Length() int {
	return len(s)
}

// Slice implements the Samples interface.
func (s SamplesI16) Slice(start, end int) Samples {
	return s[start:end]
}

// ToC128 dequantises the int16 wire buffer to the double-precision
// model buffer, dividing each component by math.MaxInt16.
func (s SamplesI16) ToC128(out SamplesC128) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i := range s {
		out[i] = complex(
			float64(s[i][0])/math.MaxInt16,
			float64(s[i][1])/math.MaxInt16,
		)
	}
	return nil
}

// ToC64 dequantises the int16 wire buffer directly to the float32 wire
// buffer, used when re-encoding a WV-origin Segment as IQW/IQTAR.
func (s SamplesI16) ToC64(out SamplesC64) error {
	if s.Length() > out.Length() {
		return ErrDstTooSmall
	}
	for i := range s {
		cI := float32(s[i][0]) / math.MaxInt16
		cQ := float32(s[i][1]) / math.MaxInt16
		out[i] = complex(cI, cQ)
	}
	return nil
}

// vim: foldmethod=marker
