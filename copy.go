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

// CopySamples is the interface version of `copy`, which is type-aware.
//
// This is used when two buffers share a format and need a plain copy
// rather than a conversion -- for instance ConvertBuffer falls back to
// this when src and dst already agree on Format().
func CopySamples(dst, src Samples) (int, error) {
	if dst.Format() != src.Format() {
		return 0, ErrSampleFormatMismatch
	}

	switch dst := dst.(type) {
	case SamplesC128:
		src := src.(SamplesC128)
		return copy(dst, src), nil
	case SamplesC64:
		src := src.(SamplesC64)
		return copy(dst, src), nil
	case SamplesI16:
		src := src.(SamplesI16)
		return copy(dst, src), nil
	default:
		return 0, ErrSampleFormatUnknown
	}
}

// vim: foldmethod=marker
