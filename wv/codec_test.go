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

package wv_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hz.tools/rf"
	"hz.tools/waveform"
	"hz.tools/waveform/wv"
)

func TestSaveLoadRoundTripSingleSegment(t *testing.T) {
	samples := waveform.SamplesC128{0.25 + 0.5i, -0.25 - 0.5i, 0.1 + 0.1i}
	meta := waveform.NewWVMetadata()
	meta.SetClock(rf.Hz(1e8))
	meta.SetComment("round trip")
	seg := waveform.NewSegment(samples, meta)
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	loaded, err := wv.Codec{}.Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Segments())

	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, len(samples))
	for i := range samples {
		assert.InDelta(t, real(samples[i]), real(data[i]), 1e-3)
		assert.InDelta(t, imag(samples[i]), imag(data[i]), 1e-3)
	}

	lm, err := loaded.Meta(0)
	require.NoError(t, err)
	assert.Equal(t, "SMU-WV", lm.Type())
	clock, ok := lm.Clock()
	require.True(t, ok)
	assert.Equal(t, rf.Hz(1e8), clock)
	assert.Equal(t, "round trip", lm.Comment())
}

func TestSaveRequiresClock(t *testing.T) {
	samples := waveform.SamplesC128{1 + 1i}
	seg := waveform.NewSegment(samples, waveform.NewWVMetadata())
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = wv.Codec{}.Save(&buf, wf, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrConfiguration)
	assert.Contains(t, err.Error(), "CLOCK")
}

func TestSaveLoadRoundTripMarkersAndControlList(t *testing.T) {
	samples := make(waveform.SamplesC128, 8)
	for i := range samples {
		samples[i] = complex(float64(i)/10, -float64(i)/10)
	}
	meta := waveform.NewWVMetadata()
	meta.SetClock(rf.Hz(2e8))
	meta.SetMarker(1, []waveform.MarkerEntry{{Sample: 4, Value: 1}, {Sample: 0, Value: 1}})
	cl := [4][]bool{}
	for r := range cl {
		row := make([]bool, len(samples))
		for i := range row {
			row[i] = (i+r)%2 == 0
		}
		cl[r] = row
	}
	meta.SetControlList(cl)
	seg := waveform.NewSegment(samples, meta)
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	loaded, err := wv.Codec{}.Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	lm, err := loaded.Meta(0)
	require.NoError(t, err)

	markers, ok := lm.Marker(1)
	require.True(t, ok)
	require.Len(t, markers, 2)
	assert.Equal(t, 0, markers[0].Sample)
	assert.Equal(t, 4, markers[1].Sample)

	gotCL, ok := lm.ControlList()
	require.True(t, ok)
	assert.Equal(t, cl, gotCL)
}

func TestSaveLoadRoundTripMultiSegment(t *testing.T) {
	segA := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, wvMetaWithClock(1e8))
	segB := waveform.NewSegment(waveform.SamplesC128{4, 5, 6, 7}, wvMetaWithClock(2e8))
	wf, err := waveform.NewWaveform(time.Time{}, segA, segB)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	loaded, err := wv.Codec{}.Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Segments())

	d0, err := loaded.Data(0)
	require.NoError(t, err)
	assert.Len(t, d0, 3)

	d1, err := loaded.Data(1)
	require.NoError(t, err)
	assert.Len(t, d1, 4)

	m0, err := loaded.Meta(0)
	require.NoError(t, err)
	assert.Equal(t, "SMU-MWV", m0.Type())
	c0, _ := m0.Clock()
	assert.Equal(t, rf.Hz(1e8), c0)

	m1, err := loaded.Meta(1)
	require.NoError(t, err)
	c1, _ := m1.Clock()
	assert.Equal(t, rf.Hz(2e8), c1)
}

func TestLoadMetaDoesNotDecodePayload(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, wvMetaWithClock(1e8))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	loaded, err := wv.Codec{}.LoadMeta(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Segments())

	data, err := loaded.Data(0)
	require.NoError(t, err)
	assert.Len(t, data, 0)

	m, err := loaded.Meta(0)
	require.NoError(t, err)
	n, ok := m.Samples()
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestLoadChunkWindow(t *testing.T) {
	samples := make(waveform.SamplesC128, 10)
	for i := range samples {
		samples[i] = complex(float64(i)/20, 0)
	}
	seg := waveform.NewSegment(samples, wvMetaWithClock(1e8))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	loaded, err := wv.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 3, 4)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.InDelta(t, real(samples[4]), real(data[0]), 1e-3)
	assert.InDelta(t, real(samples[6]), real(data[2]), 1e-3)
}

func TestLoadChunkRejectsOffsetPastPayload(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, wvMetaWithClock(1e8))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	_, err = wv.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrRange)
}

func TestLoadChunkRejectsPartialOverlapShortfall(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, wvMetaWithClock(1e8))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	// Only 2 samples remain from offset 1, but 5 are requested: this
	// must fail rather than silently hand back a short 2-sample read.
	_, err = wv.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrRange)
}

func TestLoadChunkRejectsMultiSegment(t *testing.T) {
	segA := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, wvMetaWithClock(1e8))
	segB := waveform.NewSegment(waveform.SamplesC128{4, 5, 6}, wvMetaWithClock(1e8))
	wf, err := waveform.NewWaveform(time.Time{}, segA, segB)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wv.Codec{}.Save(&buf, wf, 0))

	_, err = wv.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 1, 0)
	assert.ErrorIs(t, err, waveform.ErrConfiguration)
}

func TestLoadRejectsMissingSamplesTag(t *testing.T) {
	_, err := wv.Codec{}.Load(bytes.NewReader([]byte(`{TYPE:SMU-WV}{WAVEFORM-1:#}`)))
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrFormat)
}

func TestLoadRejectsMalformedBinaryTag(t *testing.T) {
	// The declared byte count is longer than what actually follows
	// before EOF, and there's no closing brace to find.
	_, err := wv.Codec{}.Load(bytes.NewReader([]byte(`{CLOCK:100000000}{SAMPLES:1}{WAVEFORM-999:#AB`)))
	require.Error(t, err)
	assert.Regexp(t, "Could not extract .* data. Malformed .* section", err.Error())
}

func wvMetaWithClock(hz float64) *waveform.Metadata {
	m := waveform.NewWVMetadata()
	m.SetClock(rf.Hz(hz))
	return m
}

// vim: foldmethod=marker
