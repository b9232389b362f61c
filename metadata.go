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
	"time"
)

// MarkerEntry is one row of a WV marker list: the sample index the
// marker toggles at, and the value it's set to from that index on.
type MarkerEntry struct {
	Sample int
	Value  int
}

// Metadata is a string-keyed, dynamically-typed attribute bag attached
// to a Segment. The raw map is exposed so unknown keys survive a
// load/save round trip even though this package only knows how to
// interpret the WV and IQTAR schemas.
//
// This replaces the cooperative-inheritance dict merging of the
// reference implementation's meta_base/meta_wv/meta_iqtar classes with
// a single Go struct wrapping an explicit map, plus typed accessor
// methods in metadata_wv.go and metadata_iqtar.go.
type Metadata struct {
	values map[string]interface{}
}

// newMetadata builds a Metadata seeded from a cloned copy of defaults;
// defaults is never retained directly, so mutating the returned
// Metadata can never corrupt the caller's default table (see the
// "hidden global state in defaults dictionaries" design note).
func newMetadata(defaults map[string]interface{}) *Metadata {
	m := &Metadata{values: make(map[string]interface{}, len(defaults))}
	for k, v := range defaults {
		m.values[k] = v
	}
	return m
}

// NewMetadata returns an empty Metadata with no defaults applied, for
// callers that want a bare instance (spec.md §3: "unless the caller
// requests a bare instance").
func NewMetadata() *Metadata {
	return &Metadata{values: map[string]interface{}{}}
}

// Get returns the raw value stored under key, and whether it was set.
func (m *Metadata) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (m *Metadata) Set(key string, value interface{}) {
	m.values[key] = value
}

// Delete removes key, if present.
func (m *Metadata) Delete(key string) {
	delete(m.values, key)
}

// Keys returns the set of keys currently populated. Order is not
// significant; emission order on save is controlled by the codec, not
// by this bag.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

// Copy returns a shallow copy of m with no defaults re-applied,
// mirroring meta_base.copy(no_defaults=True) in the reference
// implementation. This is used internally when an MWV load derives
// each segment's metadata from the file-level tags, and when an
// IQTAR load gives each channel its own copy of the sidecar metadata.
func (m *Metadata) Copy() *Metadata {
	return newMetadata(m.values)
}

func (m *Metadata) getString(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *Metadata) getFloat64(key string) (float64, bool) {
	v, ok := m.values[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (m *Metadata) getInt(key string) (int, bool) {
	v, ok := m.values[key]
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

func (m *Metadata) getBool(key string) (bool, bool) {
	v, ok := m.values[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (m *Metadata) getTime(key string) (time.Time, bool) {
	v, ok := m.values[key]
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

// Comment returns the "comment" key, or "" if unset.
func (m *Metadata) Comment() string {
	s, _ := m.getString("comment")
	return s
}

// SetComment sets the "comment" key.
func (m *Metadata) SetComment(c string) {
	m.values["comment"] = c
}

// Date returns the "date" key, or the zero time if unset.
func (m *Metadata) Date() time.Time {
	t, _ := m.getTime("date")
	return t
}

// SetDate sets the "date" key.
func (m *Metadata) SetDate(t time.Time) {
	m.values["date"] = t
}

// vim: foldmethod=marker
