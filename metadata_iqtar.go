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

// iqtarDefaults is the immutable default table applied by
// NewIQTARMetadata.
var iqtarDefaults = map[string]interface{}{
	"comment":          "",
	"scalingfactor":    float64(1.0),
	"name":             "",
	"datatype":         "float32",
	"format":           "complex",
	"numberofchannels": 1,
}

// NewIQTARMetadata returns a Metadata seeded with the IQTAR schema's
// defaults (spec.md §3: "IQTAR schema").
func NewIQTARMetadata() *Metadata {
	return newMetadata(iqtarDefaults)
}

// Name returns the "name" key (writer identification string).
func (m *Metadata) Name() string {
	s, _ := m.getString("name")
	return s
}

// SetName sets the "name" key.
func (m *Metadata) SetName(n string) {
	m.values["name"] = n
}

// DataFilename returns the "datafilename" key: the name of the payload
// member inside the archive.
func (m *Metadata) DataFilename() string {
	s, _ := m.getString("datafilename")
	return s
}

// SetDataFilename sets the "datafilename" key.
func (m *Metadata) SetDataFilename(n string) {
	m.values["datafilename"] = n
}

// NumberOfChannels returns the "numberofchannels" key, defaulting to 1.
func (m *Metadata) NumberOfChannels() int {
	n, ok := m.getInt("numberofchannels")
	if !ok {
		return 1
	}
	return n
}

// SetNumberOfChannels sets the "numberofchannels" key.
func (m *Metadata) SetNumberOfChannels(n int) {
	m.values["numberofchannels"] = n
}

// ScalingFactor returns the "scalingfactor" key, defaulting to 1.0.
// This is the volt-scale multiplier applied on load to recover
// physical amplitude.
func (m *Metadata) ScalingFactor() float64 {
	f, ok := m.getFloat64("scalingfactor")
	if !ok {
		return 1.0
	}
	return f
}

// SetScalingFactor sets the "scalingfactor" key.
func (m *Metadata) SetScalingFactor(f float64) {
	m.values["scalingfactor"] = f
}

// DataType returns the "datatype" key, defaulting to "float32".
func (m *Metadata) DataType() string {
	s, ok := m.getString("datatype")
	if !ok {
		return "float32"
	}
	return s
}

// SetDataType sets the "datatype" key.
func (m *Metadata) SetDataType(s string) {
	m.values["datatype"] = s
}

// Format returns the "format" key, defaulting to "complex". This is
// the IQTAR schema's literal format tag, unrelated to Samples.Format.
func (m *Metadata) Format() string {
	s, ok := m.getString("format")
	if !ok {
		return "complex"
	}
	return s
}

// SetFormat sets the "format" key.
func (m *Metadata) SetFormat(s string) {
	m.values["format"] = s
}

// CenterFrequency returns the "center_frequency" key and whether it
// was set; it is emitted only when non-zero (spec.md §4.2).
func (m *Metadata) CenterFrequency() (rf.Hz, bool) {
	v, ok := m.values["center_frequency"]
	if !ok {
		return 0, false
	}
	hz, ok := v.(rf.Hz)
	return hz, ok
}

// SetCenterFrequency sets the "center_frequency" key.
func (m *Metadata) SetCenterFrequency(hz rf.Hz) {
	m.values["center_frequency"] = hz
}

// vim: foldmethod=marker
