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
	"fmt"
)

var (
	// ErrSampleFormatMismatch will be returned when there's a mismatch
	// between sample formats.
	ErrSampleFormatMismatch = fmt.Errorf("waveform: sample formats do not match")

	// ErrSampleFormatUnknown will be returned when a specific sample format
	// is not implemented.
	ErrSampleFormatUnknown = fmt.Errorf("waveform: sample format is not understood")

	// ErrDstTooSmall will be returned when attempting to perform an
	// operation and the target buffer is too small to use.
	ErrDstTooSmall = fmt.Errorf("waveform: destination sample buffer is too small")
)

// Samples represents an ordered, finite sequence of complex numbers.
//
// This type is an interface and not a concrete type because the codecs
// need to move between three wire/model representations -- the
// double-precision in-memory model (SamplesC128), the float32 wire
// format shared by IQW and IQTAR (SamplesC64), and the int16 wire
// format used by WV (SamplesI16) -- without forcing a conversion at
// every boundary that doesn't need one.
type Samples interface {
	// Format returns the type of this vector, as exported by the
	// SampleFormat enum.
	Format() SampleFormat

	// Size returns the size of this buffer in *bytes*. This is used at
	// i/o boundaries, such as raw-byte codec encode/decode.
	Size() int

	// Length returns the number of IQ samples (real/imaginary pairs) in
	// this buffer.
	Length() int

	// Slice returns a slice of the sample buffer between start and end.
	// The returned value aliases the original backing array.
	Slice(int, int) Samples
}

// SampleFormat identifies the concrete representation backing a Samples
// value, so code can compare formats without a type assertion.
type SampleFormat uint8

const (
	// SampleFormatC128 is the double-precision complex model used by the
	// Waveform/Segment in-memory representation. See SamplesC128.
	SampleFormatC128 SampleFormat = 1

	// SampleFormatC64 is the interleaved float32 wire format shared by
	// the IQW and IQTAR codecs. See SamplesC64.
	SampleFormatC64 SampleFormat = 2

	// SampleFormatI16 is the interleaved int16 wire format used by the
	// WV codec. See SamplesI16.
	SampleFormatI16 SampleFormat = 3
)

// Size returns the number of bytes needed to represent a single phasor,
// both real and imaginary.
func (sf SampleFormat) Size() int {
	switch sf {
	case SampleFormatI16:
		return 4
	case SampleFormatC64:
		return 8
	case SampleFormatC128:
		return 16
	default:
		return 0
	}
}

// String returns the format name as a human readable string.
func (sf SampleFormat) String() string {
	switch sf {
	case SampleFormatC128:
		return "complex128"
	case SampleFormatC64:
		return "complex64"
	case SampleFormatI16:
		return "interleaved int16"
	default:
		return "unknown"
	}
}

// MakeSamples creates a buffer of the specified size and type. This is
// used by code that is generic across sample formats, such as the
// buffer pool.
func MakeSamples(sampleFormat SampleFormat, sampleSize int) (Samples, error) {
	switch sampleFormat {
	case SampleFormatC128:
		return make(SamplesC128, sampleSize), nil
	case SampleFormatC64:
		return make(SamplesC64, sampleSize), nil
	case SampleFormatI16:
		return make(SamplesI16, sampleSize), nil
	default:
		return nil, ErrSampleFormatUnknown
	}
}

// vim: foldmethod=marker
