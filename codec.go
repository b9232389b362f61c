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
	"io"
)

// Codec is the contract every wire format (wv, iqtar, iqw) satisfies:
// a symmetrical load/save pair over a stream, plus the partial-read
// and metadata-only variants.
type Codec interface {
	// Load reads a complete Waveform from r.
	Load(r io.Reader) (*Waveform, error)

	// LoadChunk reads a windowed subset of samples, samples wide,
	// starting at offset, without decoding the rest of the stream.
	// Formats that cannot support this for their current shape (a
	// multi-segment WV, a multi-channel IQTAR) return ErrConfiguration.
	LoadChunk(r io.Reader, samples, offset int) (*Waveform, error)

	// LoadMeta reads only the metadata, leaving the sample buffer(s)
	// empty. Formats with no metadata of their own (IQW) return
	// ErrConfiguration.
	LoadMeta(r io.Reader) (*Waveform, error)

	// Save writes wf to w, quantising/narrowing samples against scale
	// as the format requires.
	Save(w io.Writer, wf *Waveform, scale float64) error
}

// vim: foldmethod=marker
