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

package iqtar_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hz.tools/rf"
	"hz.tools/waveform"
	"hz.tools/waveform/iqtar"
)

func iqtarMetaWithClock(hz float64) *waveform.Metadata {
	m := waveform.NewIQTARMetadata()
	m.SetClock(rf.Hz(hz))
	return m
}

func TestSaveLoadRoundTripTwoIdenticalSegments(t *testing.T) {
	// spec.md §8 scenario 6: save two identical segments to .iq.tar,
	// reopen, and expect two segments back with equal samples and
	// metadata.
	samples := waveform.SamplesC128{0.1 + 0.2i, 0.3 + 0.4i, 0.5 + 0.6i}
	meta := iqtarMetaWithClock(2e6)
	meta.SetComment("two channels")

	seg1 := waveform.NewSegment(append(waveform.SamplesC128{}, samples...), meta.Copy())
	seg2 := waveform.NewSegment(append(waveform.SamplesC128{}, samples...), meta.Copy())
	wf, err := waveform.NewWaveform(time.Time{}, seg1, seg2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqtar.Codec{}.Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Segments())

	d0, err := loaded.Data(0)
	require.NoError(t, err)
	d1, err := loaded.Data(1)
	require.NoError(t, err)
	require.Len(t, d0, len(samples))
	require.Len(t, d1, len(samples))

	for i := range samples {
		assert.InDelta(t, real(samples[i]), real(d0[i]), 1e-6)
		assert.InDelta(t, imag(samples[i]), imag(d0[i]), 1e-6)
		assert.InDelta(t, real(d0[i]), real(d1[i]), 1e-6)
		assert.InDelta(t, imag(d0[i]), imag(d1[i]), 1e-6)
	}

	m0, err := loaded.Meta(0)
	require.NoError(t, err)
	m1, err := loaded.Meta(1)
	require.NoError(t, err)
	assert.Equal(t, m0.Comment(), m1.Comment())
	c0, ok := m0.Clock()
	require.True(t, ok)
	assert.Equal(t, rf.Hz(2e6), c0)
}

func TestSaveRequiresClock(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1 + 1i}, waveform.NewIQTARMetadata())
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = iqtar.Codec{}.Save(&buf, wf, 1.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrConfiguration)
}

func TestLoadMetaOnly(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqtar.Codec{}.LoadMeta(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Segments())

	data, err := loaded.Data(0)
	require.NoError(t, err)
	assert.Len(t, data, 0)

	m, err := loaded.Meta(0)
	require.NoError(t, err)
	clock, ok := m.Clock()
	require.True(t, ok)
	assert.Equal(t, rf.Hz(1e6), clock)
}

func TestLoadChunkWindow(t *testing.T) {
	samples := make(waveform.SamplesC128, 10)
	for i := range samples {
		samples[i] = complex(float64(i), -float64(i))
	}
	seg := waveform.NewSegment(samples, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqtar.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 3, 5)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.InDelta(t, real(samples[5]), real(data[0]), 1e-6)
	assert.InDelta(t, real(samples[7]), real(data[2]), 1e-6)
}

func TestLoadChunkToleratesOffsetPastPayload(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2, 3}, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	loaded, err := iqtar.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 1, 10)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	assert.Len(t, data, 0)
}

func TestLoadChunkTruncatesPartialOverlap(t *testing.T) {
	samples := waveform.SamplesC128{1, 2, 3}
	seg := waveform.NewSegment(samples, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	// Only 2 samples remain from offset 1, but 5 are requested: this
	// must short-read rather than error, unlike the wv codec.
	loaded, err := iqtar.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 5, 1)
	require.NoError(t, err)
	data, err := loaded.Data(0)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.InDelta(t, real(samples[1]), real(data[0]), 1e-6)
	assert.InDelta(t, real(samples[2]), real(data[1]), 1e-6)
}

func TestLoadChunkRejectsMultiChannel(t *testing.T) {
	seg1 := waveform.NewSegment(waveform.SamplesC128{1, 2}, iqtarMetaWithClock(1e6))
	seg2 := waveform.NewSegment(waveform.SamplesC128{3, 4}, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg1, seg2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	_, err = iqtar.Codec{}.LoadChunk(bytes.NewReader(buf.Bytes()), 1, 0)
	assert.ErrorIs(t, err, waveform.ErrConfiguration)
}

func TestScalingFactorUnitIsValidated(t *testing.T) {
	seg := waveform.NewSegment(waveform.SamplesC128{1, 2}, iqtarMetaWithClock(1e6))
	wf, err := waveform.NewWaveform(time.Time{}, seg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iqtar.Codec{}.Save(&buf, wf, 1.0))

	corrupted := bytes.ReplaceAll(buf.Bytes(), []byte(`unit="V"`), []byte(`unit="A"`))
	require.NotEqual(t, buf.Bytes(), corrupted)

	_, err = iqtar.Codec{}.Load(bytes.NewReader(corrupted))
	require.Error(t, err)
	assert.ErrorIs(t, err, waveform.ErrFormat)
}

// vim: foldmethod=marker
