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

package wv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hz.tools/rf"
	"hz.tools/waveform"
	"hz.tools/waveform/wv/internal/controlbits"
)

const dateLayout = "2006-01-02;15:04:05"

// buildMetadata extracts every tag this package knows how to
// interpret out of tags into a fresh Metadata, mirroring
// original_source/wv/Load.py's _extract_meta for a single segment
// (index 0, no MWV overrides applied yet).
func buildMetadata(tags tagSet, encryption bool, samples int) (*waveform.Metadata, error) {
	meta := waveform.NewWVMetadata()
	meta.SetEncryptionFlag(encryption)
	meta.SetSamples(samples)

	if v, ok := tags.text["type"]; ok {
		meta.SetType(strings.TrimSpace(strings.SplitN(v, ",", 2)[0]))
	}
	if v, ok := tags.text["copyright"]; ok {
		meta.SetCopyright(v)
	}
	if v, ok := tags.text["comment"]; ok {
		meta.SetComment(v)
	}
	if v, ok := tags.text["date"]; ok {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed DATE tag %q: %s", waveform.ErrFormat, v, err)
		}
		meta.SetDate(t)
	}
	if v, ok := tags.text["clock"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed CLOCK tag %q", waveform.ErrFormat, v)
		}
		meta.SetClock(rf.Hz(f))
	}
	if v, ok := tags.text["reflevel"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed REFLEVEL tag %q", waveform.ErrFormat, v)
		}
		meta.SetRefLevel(f)
	}
	if v, ok := tags.text["level_offs"]; ok {
		rms, peak, err := parseFloatPair(v)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed LEVEL OFFS tag %q", waveform.ErrFormat, v)
		}
		meta.SetRMS(rms)
		meta.SetPeak(peak)
	}
	if v, ok := tags.text["control_length"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed CONTROL LENGTH tag %q", waveform.ErrFormat, v)
		}
		meta.SetControlLength(n)
	}
	for i := 1; i <= 4; i++ {
		v, ok := tags.text[markerTagKey(i)]
		if !ok {
			continue
		}
		entries, err := parseMarkerList(v)
		if err != nil {
			return nil, err
		}
		meta.SetMarker(i, entries)
	}
	if raw, ok := tags.binary["CONTROL LIST WIDTH4"]; ok {
		meta.SetControlList(controlbits.Unpack(raw, samples))
	}
	return meta, nil
}

func markerTagKey(i int) string {
	return fmt.Sprintf("marker_list_%d", i)
}

// parseFloatPair parses a "a,b" CSV pair, as used by LEVEL OFFS.
func parseFloatPair(v string) (float64, float64, error) {
	parts := strings.SplitN(v, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated values, got %q", v)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseMarkerList parses "sample:value;sample:value;..." into
// MarkerEntry rows.
func parseMarkerList(v string) ([]waveform.MarkerEntry, error) {
	if v == "" {
		return nil, nil
	}
	chunks := strings.Split(v, ";")
	entries := make([]waveform.MarkerEntry, 0, len(chunks))
	for _, chunk := range chunks {
		pair := strings.SplitN(chunk, ":", 2)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: malformed marker list entry %q", waveform.ErrFormat, chunk)
		}
		sample, err := strconv.Atoi(strings.TrimSpace(pair[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed marker list entry %q", waveform.ErrFormat, chunk)
		}
		value, err := strconv.Atoi(strings.TrimSpace(pair[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed marker list entry %q", waveform.ErrFormat, chunk)
		}
		entries = append(entries, waveform.MarkerEntry{Sample: sample, Value: value})
	}
	return entries, nil
}

// parseCSVFloats splits a CSV tag value into float64s, used by the
// MWV_SEGMENT_CLOCK/MWV_SEGMENT_LEVEL_OFFS tags.
func parseCSVFloats(v string) ([]float64, error) {
	parts := strings.Split(v, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// parseCSVInts splits a CSV tag value into ints, used by
// MWV_SEGMENT_LENGTH/MWV_SEGMENT_START.
func parseCSVInts(v string) ([]int, error) {
	parts := strings.Split(v, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// applyMWVOverrides rewrites meta in place with this segment's share
// of the MWV per-segment tags, per original_source/wv/Load.py's
// _handle_mwv_meta_data: mwv_segment_clock[i] -> clock,
// mwv_segment_level_offs[i] -> (rms, peak), mwv_segment_length[i] ->
// samples, mwv_segment{i}_comment -> comment. A segment owns only its
// own comment tag; foreign per-segment comments are never consulted.
func applyMWVOverrides(meta *waveform.Metadata, tags tagSet, index int) error {
	meta.SetType("SMU-MWV")

	if v, ok := tags.text["mwv_segment_clock"]; ok {
		clocks, err := parseCSVFloats(v)
		if err != nil {
			return fmt.Errorf("%w: malformed MWV_SEGMENT_CLOCK tag %q", waveform.ErrFormat, v)
		}
		if index < len(clocks) {
			meta.SetClock(rf.Hz(clocks[index]))
		}
	}
	if v, ok := tags.text["mwv_segment_level_offs"]; ok {
		vals, err := parseCSVFloats(v)
		if err != nil {
			return fmt.Errorf("%w: malformed MWV_SEGMENT_LEVEL_OFFS tag %q", waveform.ErrFormat, v)
		}
		if index*2+1 < len(vals) {
			meta.SetRMS(vals[index*2])
			meta.SetPeak(vals[index*2+1])
		}
	}
	if v, ok := tags.text["mwv_segment_length"]; ok {
		lengths, err := parseCSVInts(v)
		if err != nil {
			return fmt.Errorf("%w: malformed MWV_SEGMENT_LENGTH tag %q", waveform.ErrFormat, v)
		}
		if index < len(lengths) {
			meta.SetSamples(lengths[index])
		}
	}
	if v, ok := tags.text[fmt.Sprintf("mwv_segment%d_comment", index)]; ok {
		meta.SetComment(v)
	}
	return nil
}

// vim: foldmethod=marker
