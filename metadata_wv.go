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
	"hz.tools/rf"
)

// wvDefaults is the immutable default table applied by NewWVMetadata.
// Values are cloned into every new Metadata rather than shared, per
// the "hidden global state in defaults dictionaries" design note.
var wvDefaults = map[string]interface{}{
	"type":            "SMU-WV",
	"copyright":       "",
	"comment":         "",
	"encryption_flag": false,
}

// NewWVMetadata returns a Metadata seeded with the WV schema's
// defaults (spec.md §3: "WV schema").
func NewWVMetadata() *Metadata {
	return newMetadata(wvDefaults)
}

// Type returns the "type" key (e.g. "SMU-WV" or "SMU-MWV").
func (m *Metadata) Type() string {
	s, _ := m.getString("type")
	return s
}

// SetType sets the "type" key.
func (m *Metadata) SetType(t string) {
	m.values["type"] = t
}

// Copyright returns the "copyright" key.
func (m *Metadata) Copyright() string {
	s, _ := m.getString("copyright")
	return s
}

// SetCopyright sets the "copyright" key.
func (m *Metadata) SetCopyright(c string) {
	m.values["copyright"] = c
}

// Clock returns the "clock" key (sample rate in Hz) and whether it was
// set. Clock is mandatory on WV save.
func (m *Metadata) Clock() (rf.Hz, bool) {
	v, ok := m.values["clock"]
	if !ok {
		return 0, false
	}
	hz, ok := v.(rf.Hz)
	return hz, ok
}

// SetClock sets the "clock" key.
func (m *Metadata) SetClock(hz rf.Hz) {
	m.values["clock"] = hz
}

// Samples returns the "samples" key and whether it was set.
func (m *Metadata) Samples() (int, bool) {
	return m.getInt("samples")
}

// SetSamples sets the "samples" key.
func (m *Metadata) SetSamples(n int) {
	m.values["samples"] = n
}

// RefLevel returns the "reflevel" key and whether it was set; this
// field is optional.
func (m *Metadata) RefLevel() (float64, bool) {
	return m.getFloat64("reflevel")
}

// SetRefLevel sets the "reflevel" key.
func (m *Metadata) SetRefLevel(v float64) {
	m.values["reflevel"] = v
}

// RMS returns the "rms" key (LEVEL OFFS rms component) and whether it
// was set.
func (m *Metadata) RMS() (float64, bool) {
	return m.getFloat64("rms")
}

// SetRMS sets the "rms" key.
func (m *Metadata) SetRMS(v float64) {
	m.values["rms"] = v
}

// Peak returns the "peak" key (LEVEL OFFS peak component) and whether
// it was set.
func (m *Metadata) Peak() (float64, bool) {
	return m.getFloat64("peak")
}

// SetPeak sets the "peak" key.
func (m *Metadata) SetPeak(v float64) {
	m.values["peak"] = v
}

// ControlLength returns the "control_length" key and whether it was
// set; this field is optional.
func (m *Metadata) ControlLength() (int, bool) {
	return m.getInt("control_length")
}

// SetControlLength sets the "control_length" key.
func (m *Metadata) SetControlLength(n int) {
	m.values["control_length"] = n
}

// ControlList returns the "control_list" key: a 4-row boolean matrix,
// one column per sample, and whether it was set.
func (m *Metadata) ControlList() ([4][]bool, bool) {
	v, ok := m.values["control_list"]
	if !ok {
		return [4][]bool{}, false
	}
	cl, ok := v.([4][]bool)
	return cl, ok
}

// SetControlList sets the "control_list" key. All four rows must have
// equal length; the WV invariant is that control lists have exactly 4
// rows when present (spec.md §3 Invariants).
func (m *Metadata) SetControlList(cl [4][]bool) {
	m.values["control_list"] = cl
}

// EncryptionFlag returns the "encryption_flag" key. When true the WV
// payload tag is WWAVEFORM instead of WAVEFORM.
func (m *Metadata) EncryptionFlag() bool {
	b, _ := m.getBool("encryption_flag")
	return b
}

// SetEncryptionFlag sets the "encryption_flag" key.
func (m *Metadata) SetEncryptionFlag(b bool) {
	m.values["encryption_flag"] = b
}

// Marker returns the entries of marker_list_{i}, i in [1,4], in the
// order they were stored, and whether the list was present at all.
func (m *Metadata) Marker(i int) ([]MarkerEntry, bool) {
	v, ok := m.values[markerKey(i)]
	if !ok {
		return nil, false
	}
	entries, ok := v.([]MarkerEntry)
	return entries, ok
}

// SetMarker sets marker_list_{i}. Entries are sorted by Sample on
// Save, not on Set, so callers may populate them in any order.
func (m *Metadata) SetMarker(i int, entries []MarkerEntry) {
	m.values[markerKey(i)] = entries
}

func markerKey(i int) string {
	switch i {
	case 1:
		return "marker_list_1"
	case 2:
		return "marker_list_2"
	case 3:
		return "marker_list_3"
	case 4:
		return "marker_list_4"
	default:
		return "marker_list_0"
	}
}

// vim: foldmethod=marker
