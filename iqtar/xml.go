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

package iqtar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"hz.tools/rf"
	"hz.tools/waveform"
)

// sidecar is the RS_IQ_TAR_FileFormat XML document, field order
// matching the emission order spec.md §4.2 lists.
type sidecar struct {
	XMLName                   xml.Name      `xml:"RS_IQ_TAR_FileFormat"`
	FileFormatVersion         string        `xml:"fileFormatVersion,attr"`
	XMLNSXSI                  string        `xml:"xmlns:xsi,attr"`
	NoNamespaceSchemaLocation string        `xml:"xsi:noNamespaceSchemaLocation,attr"`
	Name                      string        `xml:"Name"`
	DateTime                  string        `xml:"DateTime"`
	Comment                   string        `xml:"Comment"`
	Samples                   int           `xml:"Samples"`
	Clock                     hzValue       `xml:"Clock"`
	Format                    string        `xml:"Format"`
	DataType                  string        `xml:"DataType"`
	ScalingFactor             voltValue     `xml:"ScalingFactor"`
	DataFilename              string        `xml:"DataFilename"`
	NumberOfChannels          int           `xml:"NumberOfChannels"`
	UserData                  *userData     `xml:"UserData,omitempty"`
}

type hzValue struct {
	Unit  string  `xml:"unit,attr"`
	Value float64 `xml:",chardata"`
}

type voltValue struct {
	Unit  string  `xml:"unit,attr"`
	Value float64 `xml:",chardata"`
}

type userData struct {
	RohdeSchwarz rohdeSchwarz `xml:"RohdeSchwarz"`
}

type rohdeSchwarz struct {
	SpectrumAnalyzer spectrumAnalyzer `xml:"SpectrumAnalyzer"`
}

type spectrumAnalyzer struct {
	CenterFrequency hzValue `xml:"CenterFrequency"`
}

// writerIdentity is the <Name> tag this package stamps on every
// archive it writes, mirroring original_source's "Python iq.tar
// Writer" self-identification.
const writerIdentity = "hz.tools/waveform iq.tar writer"

// sidecarTimeLayout is the ISO-8601-ish layout the reference
// implementation reads/writes for <DateTime>, with an optional
// fractional-seconds component.
const sidecarTimeLayout = "2006-01-02T15:04:05"
const sidecarTimeLayoutFrac = "2006-01-02T15:04:05.000000"

func marshalSidecar(doc sidecar) ([]byte, error) {
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<?xml-stylesheet type="text/xsl" href="open_IqTar_xml_file_in_web_browser.xslt"?>` + "\n")
	buf.Write(body)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func unmarshalSidecar(data []byte) (*sidecar, error) {
	var sc sidecar
	if err := xml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: malformed iq.tar xml sidecar: %s", waveform.ErrFormat, err)
	}
	return &sc, nil
}

// newSidecar builds the XML document for Save from wf's first
// segment's metadata, the concatenated channel count and the payload
// member's name.
func newSidecar(wf *waveform.Waveform, seg0 *waveform.Segment, channels int, payloadName string, clock rf.Hz) sidecar {
	doc := sidecar{
		FileFormatVersion:         "2",
		XMLNSXSI:                  "http://www.w3.org/2001/XMLSchema-instance",
		NoNamespaceSchemaLocation: "http://www.rohde-schwarz.com/file/RsIqTar.xsd",
		Name:                      writerIdentity,
		DateTime:                  wf.Created().UTC().Format(sidecarTimeLayoutFrac),
		Comment:                   seg0.Meta.Comment(),
		Samples:                   seg0.Length(),
		Clock:                     hzValue{Unit: "Hz", Value: float64(clock)},
		Format:                    defaultStr(seg0.Meta.Format(), "complex"),
		DataType:                  defaultStr(seg0.Meta.DataType(), "float32"),
		ScalingFactor:             voltValue{Unit: "V", Value: seg0.Meta.ScalingFactor()},
		DataFilename:              payloadName,
		NumberOfChannels:          channels,
	}
	if cf, ok := seg0.Meta.CenterFrequency(); ok && cf != 0 {
		doc.UserData = &userData{RohdeSchwarz: rohdeSchwarz{
			SpectrumAnalyzer: spectrumAnalyzer{
				CenterFrequency: hzValue{Unit: "Hz", Value: float64(cf)},
			},
		}}
	}
	return doc
}

// metadataFromSidecar builds a shared Metadata from a parsed sidecar,
// following original_source/iqtar/load.py's _extract_meta. "Samples"
// is deliberately not copied into the bag: the reference
// implementation discards it too (it's redundant with the decoded
// buffer length).
func metadataFromSidecar(sc *sidecar) (*waveform.Metadata, error) {
	meta := waveform.NewIQTARMetadata()
	meta.SetComment(sc.Comment)
	meta.SetClock(rf.Hz(sc.Clock.Value))
	meta.SetName(sc.Name)
	meta.SetDataFilename(sc.DataFilename)
	meta.SetNumberOfChannels(channelsOrDefault(sc.NumberOfChannels))
	meta.SetDataType(defaultStr(sc.DataType, "float32"))
	meta.SetFormat(defaultStr(sc.Format, "complex"))
	meta.SetScalingFactor(scalingOrDefault(sc.ScalingFactor.Value))

	if sc.DateTime != "" {
		t, err := parseSidecarTime(sc.DateTime)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed DateTime %q: %s", waveform.ErrFormat, sc.DateTime, err)
		}
		meta.SetDate(t)
	}
	if sc.UserData != nil {
		cf := sc.UserData.RohdeSchwarz.SpectrumAnalyzer.CenterFrequency.Value
		if cf != 0 {
			meta.SetCenterFrequency(rf.Hz(cf))
		}
	}
	return meta, nil
}

func parseSidecarTime(s string) (time.Time, error) {
	layout := sidecarTimeLayout
	if strings.Contains(s, ".") {
		layout = sidecarTimeLayoutFrac
	}
	return time.Parse(layout, s)
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func channelsOrDefault(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func scalingOrDefault(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// vim: foldmethod=marker
