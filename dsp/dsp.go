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

// Package dsp implements the handful of level-measurement helpers the
// wv saver calls on when a Segment's metadata doesn't already carry
// "rms"/"peak": PeakDB, RMSDB, PARDB and Normalize (spec.md §4.4).
//
// These are not a DSP transform library (spec.md §1 Non-goals); they
// exist only to synthesise the LEVEL OFFS tag. The reference
// implementation computes them at float16 intermediate precision and
// the wv golden files were captured against that precision, so this
// package rounds through float32 (Go has no float16) at the same
// points the original narrows through np.float16, to stay as close to
// byte-exact as a systems language can get — see DESIGN.md.
package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// f16 approximates numpy's float16 narrowing by round-tripping through
// float32 and truncating the mantissa to 10 bits, matching the
// precision loss (if not the exact bit pattern) the reference
// implementation's np.float16 casts introduce before the final
// log10/sqrt. See the "float16 intermediate precision" design note in
// spec.md §9.
func f16(v float64) float64 {
	f32 := float32(v)
	bits := math.Float32bits(f32)
	// Drop the low 13 mantissa bits of the float32, the same count
	// that separates a float32 mantissa (23 bits) from a float16
	// mantissa (10 bits).
	bits &^= 0x1fff
	return float64(math.Float32frombits(bits))
}

// magnitudes returns |x| for every sample in data.
func magnitudes(data []complex128) []float64 {
	mags := make([]float64, len(data))
	for i, x := range data {
		mags[i] = math.Hypot(real(x), imag(x))
	}
	return mags
}

// ConvertToDB converts an amplitude ratio to dB: 20*log10(value), at
// float16 intermediate precision (spec.md §4.4, §8 "convert_to_db(10)
// == 20").
func ConvertToDB(value float64) float64 {
	return 20 * math.Log10(f16(value))
}

// PeakDB returns 20*log10(max|x|) over data.
func PeakDB(data []complex128) float64 {
	if len(data) == 0 {
		return ConvertToDB(0)
	}
	return ConvertToDB(f16(floats.Max(magnitudes(data))))
}

// RMSDB returns 20*log10(sqrt(mean(|x|^2))) over data.
func RMSDB(data []complex128) float64 {
	if len(data) == 0 {
		return ConvertToDB(0)
	}
	var sumSq float64
	for _, x := range data {
		sumSq += real(x)*real(x) + imag(x)*imag(x)
	}
	mean := sumSq / float64(len(data))
	return ConvertToDB(math.Sqrt(mean))
}

// PARDB returns the peak-to-average ratio in dB: PeakDB - RMSDB.
func PARDB(data []complex128) float64 {
	return PeakDB(data) - RMSDB(data)
}

// DefaultNormalizeReference is the reference amplitude Normalize
// targets when the caller doesn't supply one: 1 - 2^-15, the 16-bit
// quantisation headroom every wv payload is saved at (spec.md §4.4),
// narrowed through f16. f16's 10-bit mantissa truncation turns it into
// 1 - 2^-11.
var DefaultNormalizeReference = f16(1 - math.Pow(2, -15))

// Normalize scales data in place so that max|x| == reference. A
// reference of 0 selects DefaultNormalizeReference. Samples are left
// untouched if every sample is zero.
func Normalize(data []complex128, reference float64) {
	if reference == 0 {
		reference = DefaultNormalizeReference
	}
	mags := magnitudes(data)
	peak := floats.Max(mags)
	if peak == 0 {
		return
	}
	scale := reference / peak
	for i, x := range data {
		data[i] = complex(real(x)*scale, imag(x)*scale)
	}
}

// vim: foldmethod=marker
