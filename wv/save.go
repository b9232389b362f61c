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
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"hz.tools/waveform"
	"hz.tools/waveform/dsp"
	"hz.tools/waveform/wv/internal/controlbits"
)

// randEmptyTagLength picks the EMPTYTAG padding length: a uniformly
// random value in [0, 512] (spec.md §4.3.1). It is a variable, not a
// call to math/rand.Intn inline, so tests can pin it for deterministic
// output.
var randEmptyTagLength = func() int {
	return rand.Intn(513)
}

// Save writes wf as a single-segment wv file, or as an MWV file when
// wf has more than one segment (spec.md §4.3.4).
func (Codec) Save(w io.Writer, wf *waveform.Waveform, scale float64) error {
	if scale == 0 {
		scale = defaultScale
	}
	if wf.Segments() == 1 {
		return saveSingle(w, wf, scale)
	}
	return saveMWV(w, wf, scale)
}

func saveSingle(w io.Writer, wf *waveform.Waveform, scale float64) error {
	seg, err := wf.Segment(0)
	if err != nil {
		return err
	}

	if err := writeTag(w, "TYPE", defaultString(seg.Meta.Type(), "SMU-WV")); err != nil {
		return err
	}
	if err := writeTag(w, "COPYRIGHT", seg.Meta.Copyright()); err != nil {
		return err
	}
	if err := writeTag(w, "COMMENT", seg.Meta.Comment()); err != nil {
		return err
	}
	if err := writeLevelOffs(w, seg); err != nil {
		return err
	}
	if err := writeTag(w, "DATE", wf.Created().UTC().Format(dateLayout)); err != nil {
		return err
	}
	clock, ok := seg.Meta.Clock()
	if !ok {
		return fmt.Errorf("%w: CLOCK is a mandatory parameter", waveform.ErrConfiguration)
	}
	if err := writeTag(w, "CLOCK", pyFloatString(float64(clock))); err != nil {
		return err
	}
	if err := writeTag(w, "SAMPLES", strconv.Itoa(seg.Length())); err != nil {
		return err
	}
	if reflevel, ok := seg.Meta.RefLevel(); ok && reflevel != 0 {
		if err := writeTag(w, "REFLEVEL", fmt.Sprintf("%.6f", reflevel)); err != nil {
			return err
		}
	}
	if err := writeControlLength(w, seg.Meta); err != nil {
		return err
	}
	if err := writeControlList(w, seg.Meta); err != nil {
		return err
	}
	if err := writeMarkers(w, seg.Meta); err != nil {
		return err
	}
	if err := writeEmptyTag(w); err != nil {
		return err
	}
	return writeWaveformPayload(w, seg.Samples, scale, seg.Meta.EncryptionFlag())
}

func saveMWV(w io.Writer, wf *waveform.Waveform, scale float64) error {
	n := wf.Segments()
	segs := make([]*waveform.Segment, n)
	var all waveform.SamplesC128
	for i := 0; i < n; i++ {
		seg, err := wf.Segment(i)
		if err != nil {
			return err
		}
		segs[i] = seg
		all = append(all, seg.Samples...)
	}

	ref := segs[0]
	if err := writeTag(w, "TYPE", "SMU-MWV"); err != nil {
		return err
	}
	if err := writeTag(w, "COPYRIGHT", ref.Meta.Copyright()); err != nil {
		return err
	}
	if err := writeTag(w, "DATE", wf.Created().UTC().Format(dateLayout)); err != nil {
		return err
	}
	if err := writeTag(w, "SAMPLES", strconv.Itoa(len(all))); err != nil {
		return err
	}
	if reflevel, ok := ref.Meta.RefLevel(); ok && reflevel != 0 {
		if err := writeTag(w, "REFLEVEL", fmt.Sprintf("%.6f", reflevel)); err != nil {
			return err
		}
	}

	if err := writeTag(w, "MWV_SEGMENT_COUNT", strconv.Itoa(n)); err != nil {
		return err
	}

	lengths := make([]string, n)
	starts := make([]string, n)
	start := 0
	for i, seg := range segs {
		lengths[i] = strconv.Itoa(seg.Length())
		starts[i] = strconv.Itoa(start)
		start += seg.Length()
	}
	if err := writeTag(w, "MWV_SEGMENT_LENGTH", strings.Join(lengths, ",")); err != nil {
		return err
	}
	if err := writeTag(w, "MWV_SEGMENT_START", strings.Join(starts, ",")); err != nil {
		return err
	}
	if err := writeTag(w, "MWV_SEGMENT_CLOCK_MODE", "UNCHANGED"); err != nil {
		return err
	}
	if err := writeTag(w, "MWV_SEGMENT_LEVEL_MODE", "UNCHANGED"); err != nil {
		return err
	}

	var maxClock float64
	clocks := make([]string, n)
	for i, seg := range segs {
		c, _ := seg.Meta.Clock()
		if float64(c) > maxClock {
			maxClock = float64(c)
		}
		clocks[i] = pyFloatString(float64(c))
	}
	if maxClock == 0 {
		return fmt.Errorf("%w: CLOCK is a mandatory parameter", waveform.ErrConfiguration)
	}
	if err := writeTag(w, "CLOCK", pyFloatString(maxClock)); err != nil {
		return err
	}
	if err := writeTag(w, "MWV_SEGMENT_CLOCK", strings.Join(clocks, ",")); err != nil {
		return err
	}

	levelOffs := make([]string, 0, 2*n)
	for _, seg := range segs {
		rms, peak := segmentLevelOffs(seg)
		levelOffs = append(levelOffs, pyFloatString(rms), pyFloatString(peak))
	}
	if err := writeTag(w, "MWV_SEGMENT_LEVEL_OFFS", strings.Join(levelOffs, ",")); err != nil {
		return err
	}

	for i, seg := range segs {
		if err := writeTag(w, fmt.Sprintf("MWV_SEGMENT%d_COMMENT", i), seg.Meta.Comment()); err != nil {
			return err
		}
	}

	var filenames []string
	for _, seg := range segs {
		if v, ok := seg.Meta.Get("filename"); ok {
			if name, ok := v.(string); ok {
				filenames = append(filenames, name)
			}
		}
	}
	if len(filenames) > 0 {
		if err := writeTag(w, "MWV_SEGMENT_FILES", strings.Join(filenames, ",")); err != nil {
			return err
		}
	}

	if err := writeEmptyTag(w); err != nil {
		return err
	}
	return writeWaveformPayload(w, all, scale, ref.Meta.EncryptionFlag())
}

func writeTag(w io.Writer, key, value string) error {
	_, err := fmt.Fprintf(w, "{%s:%s}", key, value)
	return err
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// writeLevelOffs emits the LEVEL OFFS tag, computing rms/peak via the
// dsp package when absent from metadata and negating the computed
// (but never the explicitly-set) value (spec.md §4.3.4 step 2).
func writeLevelOffs(w io.Writer, seg *waveform.Segment) error {
	rms, peak := segmentLevelOffs(seg)
	return writeTag(w, "LEVEL OFFS", fmt.Sprintf("%.6f,%.6f", rms, peak))
}

func segmentLevelOffs(seg *waveform.Segment) (float64, float64) {
	rms, rmsSet := seg.Meta.RMS()
	peak, peakSet := seg.Meta.Peak()
	if !peakSet {
		peak = invertSign(dsp.PeakDB(seg.Samples))
	}
	if !rmsSet {
		rms = invertSign(dsp.RMSDB(seg.Samples))
	}
	return rms, peak
}

func invertSign(v float64) float64 {
	if v != 0 {
		return -v
	}
	return v
}

func writeControlLength(w io.Writer, meta *waveform.Metadata) error {
	n, ok := meta.ControlLength()
	if !ok || n == 0 {
		return nil
	}
	return writeTag(w, "CONTROL LENGTH", strconv.Itoa(n))
}

func writeControlList(w io.Writer, meta *waveform.Metadata) error {
	cl, ok := meta.ControlList()
	if !ok {
		return nil
	}
	packed, err := controlbits.Pack(cl)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "{CONTROL LIST WIDTH4-%d:#", len(packed)+1); err != nil {
		return err
	}
	if _, err := w.Write(packed); err != nil {
		return err
	}
	_, err = w.Write([]byte("}"))
	return err
}

func writeMarkers(w io.Writer, meta *waveform.Metadata) error {
	for i := 1; i <= 4; i++ {
		entries, ok := meta.Marker(i)
		if !ok || len(entries) == 0 {
			continue
		}
		sorted := append([]waveform.MarkerEntry(nil), entries...)
		sortMarkerEntries(sorted)
		parts := make([]string, len(sorted))
		for j, e := range sorted {
			parts[j] = fmt.Sprintf("%d:%d", e.Sample, e.Value)
		}
		if _, err := fmt.Fprintf(w, "{MARKER LIST %d: %s}", i, strings.Join(parts, ";")); err != nil {
			return err
		}
	}
	return nil
}

func sortMarkerEntries(entries []waveform.MarkerEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Sample > entries[j].Sample; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

func writeEmptyTag(w io.Writer) error {
	n := randEmptyTagLength()
	if _, err := fmt.Fprintf(w, "{EMPTYTAG-%d:#", n+1); err != nil {
		return err
	}
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = ' '
	}
	if _, err := w.Write(pad); err != nil {
		return err
	}
	_, err := w.Write([]byte("}"))
	return err
}

func writeWaveformPayload(w io.Writer, samples waveform.SamplesC128, scale float64, encryption bool) error {
	i16, err := quantize(samples, scale)
	if err != nil {
		return err
	}
	key := "WAVEFORM"
	if encryption {
		key = "WWAVEFORM"
	}
	if _, err := fmt.Fprintf(w, "{%s-%d:#", key, i16.Length()*4+1); err != nil {
		return err
	}
	if _, err := waveform.WriteSamples(w, i16); err != nil {
		return err
	}
	_, err = w.Write([]byte("}"))
	return err
}

// pyFloatString renders a float64 the way the reference
// implementation's bare str(float) tag values look on disk: whole
// numbers keep a trailing ".0", everything else uses Go's shortest
// round-tripping representation.
func pyFloatString(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// vim: foldmethod=marker
