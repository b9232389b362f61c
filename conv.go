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

// ErrConversionNotImplemented is returned when ConvertBuffer is asked to
// convert between a pair of formats for which no conversion method
// exists on the source type.
var ErrConversionNotImplemented = errConversionNotImplemented

// ConvertBuffer converts the provided Samples to the desired output
// format.
//
// The conversion happens in CPU and is not the fast path; it exists so
// callers that need to move a Segment between the three wire
// representations (SamplesC128, SamplesC64, SamplesI16) don't have to
// hand-write the 3x3 conversion matrix themselves.
//
// In the event that the desired format is the same as the provided
// format this function copies the source samples to the target buffer.
func ConvertBuffer(dst, src Samples) error {
	if src.Format() == dst.Format() {
		_, err := CopySamples(dst, src)
		return err
	}

	if src.Length() > dst.Length() {
		return ErrDstTooSmall
	}

	switch dst.Format() {
	case SampleFormatI16:
		convertable, ok := src.(interface{ ToI16(SamplesI16) error })
		if !ok {
			return ErrConversionNotImplemented
		}
		return convertable.ToI16(dst.(SamplesI16))
	case SampleFormatC64:
		convertable, ok := src.(interface{ ToC64(SamplesC64) error })
		if !ok {
			return ErrConversionNotImplemented
		}
		return convertable.ToC64(dst.(SamplesC64))
	case SampleFormatC128:
		convertable, ok := src.(interface{ ToC128(SamplesC128) error })
		if !ok {
			return ErrConversionNotImplemented
		}
		return convertable.ToC128(dst.(SamplesC128))
	default:
		// Someone added a new type on us.
		return ErrSampleFormatUnknown
	}
}

// vim: foldmethod=marker
