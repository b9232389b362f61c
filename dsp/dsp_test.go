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

package dsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"hz.tools/waveform/dsp"
)

func TestConvertToDB(t *testing.T) {
	assert.InDelta(t, 20.0, dsp.ConvertToDB(10), 1e-2)
}

func TestPeakDB(t *testing.T) {
	data := []complex128{1, 0.5, 0.25}
	assert.InDelta(t, 0.0, dsp.PeakDB(data), 1e-2)
}

func TestRMSDBOfUnitAmplitude(t *testing.T) {
	data := make([]complex128, 1024)
	for i := range data {
		data[i] = 1
	}
	assert.InDelta(t, 0.0, dsp.RMSDB(data), 1e-2)
}

func TestPARDB(t *testing.T) {
	data := []complex128{1, 0.1, 0.1, 0.1}
	par := dsp.PARDB(data)
	assert.Greater(t, par, 0.0)
}

func TestNormalize(t *testing.T) {
	data := make([]complex128, 16)
	for i := range data {
		data[i] = complex(float64(i), 0)
	}
	dsp.Normalize(data, 0)

	var maxAbs float64
	for _, x := range data {
		if m := math.Abs(real(x)); m > maxAbs {
			maxAbs = m
		}
	}
	assert.InDelta(t, dsp.DefaultNormalizeReference, maxAbs, 1e-6)
}

func TestNormalizeAllZero(t *testing.T) {
	data := make([]complex128, 4)
	dsp.Normalize(data, 0)
	for _, x := range data {
		assert.Equal(t, complex128(0), x)
	}
}

// vim: foldmethod=marker
