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

// Package npz is the external-collaborator stub for the .npz-style
// archive codec called out in spec.md §1: "treated as a pluggable
// codec that serialises the same waveform model through an external
// compressed-array container". original_source/npz/ shows the shape
// (load/save plus an npz_interface contract) this module would need to
// fill in, but numpy's compressed-array format has no idiomatic Go
// third-party equivalent in the retrieved pack, so Codec here is a
// documented not-implemented placeholder rather than a real codec.
package npz

import (
	"fmt"
	"io"

	"hz.tools/waveform"
)

// ErrNotImplemented is returned by every Codec method. It is a
// standalone sentinel rather than a wrapped waveform.ErrConfiguration
// because "no npz support" isn't a configuration mistake the caller
// made -- it is this package's entire contents.
var ErrNotImplemented = fmt.Errorf("waveform/npz: not implemented")

// Codec is the pluggable npz stand-in. It satisfies waveform.Codec so
// callers that dispatch on format can wire it in alongside wv/iqtar/
// iqw without a type switch, but every method fails until a real
// implementation lands on top of a compressed-array library.
type Codec struct{}

var _ waveform.Codec = Codec{}

// Load implements waveform.Codec.
func (Codec) Load(r io.Reader) (*waveform.Waveform, error) {
	return nil, ErrNotImplemented
}

// LoadChunk implements waveform.Codec.
func (Codec) LoadChunk(r io.Reader, samples, offset int) (*waveform.Waveform, error) {
	return nil, ErrNotImplemented
}

// LoadMeta implements waveform.Codec.
func (Codec) LoadMeta(r io.Reader) (*waveform.Waveform, error) {
	return nil, ErrNotImplemented
}

// Save implements waveform.Codec.
func (Codec) Save(w io.Writer, wf *waveform.Waveform, scale float64) error {
	return ErrNotImplemented
}

// vim: foldmethod=marker
