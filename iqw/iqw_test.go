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

package iqw_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hz.tools/waveform"
	"hz.tools/waveform/iqw"
)

func TestSaveIdentity(t *testing.T) {
	// spec.md §8 scenario 1: samples = [0.2+0.4j, 0.6+0.8j], scale = 1.0
	// must produce exactly 16 bytes: float32 LE 0.2, 0.4, 0.6, 0.8.
	samples := waveform.SamplesC128{0.2 + 0.4i, 0.6 + 0.8i}
	wf, err := waveform.NewWaveform(time.Time{}, waveform.NewSegment(samples, waveform.NewMetadata()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqw.Codec{}.Save(&buf, wf, 1.0))
	assert.Equal(t, 16, buf.Len())

	var expected []byte
	for _, f := range []float32{0.2, 0.4, 0.6, 0.8} {
		expected = append(expected, float32Bytes(f)...)
	}
	assert.Equal(t, expected, buf.Bytes())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	samples := waveform.SamplesC128{1 + 2i, 3 + 4i, 5 + 6i}
	wf, err := waveform.NewWaveform(time.Time{}, waveform.NewSegment(samples, waveform.NewMetadata()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqw.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqw.Codec{}.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Segments())

	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, 3)
	for i := range samples {
		assert.InDelta(t, real(samples[i]), real(data[i]), 1e-6)
		assert.InDelta(t, imag(samples[i]), imag(data[i]), 1e-6)
	}
}

func TestLoadChunk(t *testing.T) {
	samples := waveform.SamplesC128{1, 2, 3, 4, 5}
	wf, err := waveform.NewWaveform(time.Time{}, waveform.NewSegment(samples, waveform.NewMetadata()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqw.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqw.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 2, 2)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.InDelta(t, 3.0, real(data[0]), 1e-6)
	assert.InDelta(t, 4.0, real(data[1]), 1e-6)
}

func TestLoadChunkShortRead(t *testing.T) {
	samples := waveform.SamplesC128{1, 2}
	wf, err := waveform.NewWaveform(time.Time{}, waveform.NewSegment(samples, waveform.NewMetadata()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqw.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqw.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 10, 0)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

func TestLoadMetaFails(t *testing.T) {
	_, err := iqw.Codec{}.LoadMeta(bytes.NewReader(nil))
	assert.ErrorIs(t, err, waveform.ErrConfiguration)
}

func float32Bytes(f float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
	return buf
}

// vim: foldmethod=marker
