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

package wv

import (
	"hz.tools/waveform"
)

// defaultScale is 2^15, the quantisation scale save() uses when the
// caller passes 0 (spec.md §4.3.2).
const defaultScale = 1 << 15

// quantize scales samples by scale and narrows to int16, rounding
// half to even and saturating (spec.md §4.3.4: "round(scale . real)
// ... saturate"). SamplesC128.ToI16 already rounds and saturates; it
// expects the scale folded into its input, so this pre-multiplies
// first.
func quantize(samples waveform.SamplesC128, scale float64) (waveform.SamplesI16, error) {
	scaled := make(waveform.SamplesC128, samples.Length())
	for i, s := range samples {
		scaled[i] = complex(real(s)*scale, imag(s)*scale)
	}
	out := make(waveform.SamplesI16, samples.Length())
	if err := scaled.ToI16(out); err != nil {
		return nil, err
	}
	return out, nil
}

// dequantize divides each int16 component by INT16_MAX, recombining
// as complex128 (spec.md §4.3.3 step 6). The stored scale used at save
// time isn't recorded anywhere in the file, so load always divides by
// the full int16 range regardless of what scale produced it.
func dequantize(samples waveform.SamplesI16) (waveform.SamplesC128, error) {
	out := make(waveform.SamplesC128, samples.Length())
	if err := samples.ToC128(out); err != nil {
		return nil, err
	}
	return out, nil
}

// vim: foldmethod=marker
