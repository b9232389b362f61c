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

package waveform_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"hz.tools/waveform"
)

func TestBytesIOC64RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	in := waveform.SamplesC64{0.2 + 0.4i, 0.6 + 0.8i}
	n, err := waveform.WriteSamples(&buf, in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 16, buf.Len())

	out := make(waveform.SamplesC64, 2)
	n, err = waveform.ReadSamples(&buf, out)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, in, out)
}

func TestBytesIOI16RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	in := waveform.SamplesI16{{100, -200}, {300, -400}}
	_, err := waveform.WriteSamples(&buf, in)
	assert.NoError(t, err)
	assert.Equal(t, 8, buf.Len())

	out := make(waveform.SamplesI16, 2)
	_, err = waveform.ReadSamples(&buf, out)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestBytesIOUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := waveform.WriteSamples(&buf, make(waveform.SamplesC128, 1))
	assert.Equal(t, waveform.ErrSampleFormatUnknown, err)

	_, err = waveform.ReadSamples(&buf, make(waveform.SamplesC128, 1))
	assert.Equal(t, waveform.ErrSampleFormatUnknown, err)
}

// vim: foldmethod=marker
