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
	"encoding/binary"
	"io"
)

// WriteSamples encodes samples to w as raw little-endian bytes.
//
// Every wire format this package deals with (IQW, IQTAR's payload
// member, and the WV payload tag) is fixed little-endian, so unlike
// hz.tools/sdr's byteWriterNative/byteWriterForeign split there is no
// native-endian fast path here: binary.Write always goes through
// binary.LittleEndian.
func WriteSamples(w io.Writer, samples Samples) (int, error) {
	switch buf := samples.(type) {
	case SamplesI16:
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return 0, err
		}
		return len(buf), nil
	case SamplesC64:
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return 0, err
		}
		return len(buf), nil
	default:
		return 0, ErrSampleFormatUnknown
	}
}

// ReadSamples decodes raw little-endian bytes from r into samples.
//
// samples must already be sized to the number of IQ pairs to read;
// this performs the equivalent of io.ReadFull underneath binary.Read.
func ReadSamples(r io.Reader, samples Samples) (int, error) {
	switch buf := samples.(type) {
	case SamplesI16:
		err := binary.Read(r, binary.LittleEndian, buf)
		return buf.Length(), err
	case SamplesC64:
		err := binary.Read(r, binary.LittleEndian, buf)
		return buf.Length(), err
	default:
		return 0, ErrSampleFormatUnknown
	}
}

// vim: foldmethod=marker
