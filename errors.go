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

// errConversionNotImplemented backs the exported ErrConversionNotImplemented
// sentinel declared alongside ConvertBuffer in conv.go.
var errConversionNotImplemented = fmt.Errorf("waveform: unknown format conversion")

// Malformed-stream, bad-configuration and out-of-range conditions are
// each a family of sentinel errors, wrapped with fmt.Errorf("...: %w", ...)
// at the call site to add the offending detail. A sanity problem is not
// an error at all: it is a logrus.Warn call that lets the operation
// succeed (see wv.Codec.Load).
var (
	// ErrFormat is wrapped by every malformed-stream condition: a missing
	// mandatory tag, an absent WAVEFORM tag, a payload length mismatch, or
	// a missing closing brace in full-read mode.
	ErrFormat = fmt.Errorf("waveform: format error")

	// ErrConfiguration is wrapped when an operation is asked to do
	// something a format cannot support, such as a metadata-only load on
	// a format with no metadata, or a chunked load against a multi-segment
	// or multi-channel waveform.
	ErrConfiguration = fmt.Errorf("waveform: configuration error")

	// ErrRange is wrapped when a requested chunk window exceeds the
	// available samples.
	ErrRange = fmt.Errorf("waveform: range error")
)

// vim: foldmethod=marker
