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

// Package waveform reads and writes Rohde & Schwarz RF waveform files.
//
// Three wire formats are supported, each behind the same Codec contract:
// the tag-delimited ".wv" container (wv), the bare interleaved float32
// ".iqw" stream (iqw), and the ".iq.tar" archive pairing an XML sidecar
// with a headerless float32 payload (iqtar).
//
// The in-memory model is a Waveform: an ordered, non-empty list of
// Segments, each a Samples buffer plus a Metadata attribute bag. Codecs
// translate between that model and a stream; this package itself only
// carries the shared sample-buffer and metadata types the codecs build
// on, the same way hz.tools/sdr carries the shared IQ buffer types its
// hardware drivers build on.
package waveform

// vim: foldmethod=marker
