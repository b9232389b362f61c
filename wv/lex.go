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

// Package wv implements the .wv tag-delimited waveform format (spec.md
// §4.3): a mix of brace-delimited text tags ({KEY:VALUE}) and
// length-prefixed binary tags ({KEY-N:#<N-1 bytes>}) ending in the
// int16-quantised WAVEFORM/WWAVEFORM payload.
//
// This is a hand-written byte scanner, not a regex port of
// original_source/wv/Load.py's _create_regex_pattern: the reference
// implementation builds one giant alternation of named capture groups,
// one per known tag. Go's regexp package has no equivalent to
// Python's re.finditer over named alternations cheaply, and more
// importantly a hand-rolled walk generalizes to unknown tags (ignored
// rather than unmatched) without listing every key twice.
package wv

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"hz.tools/waveform"
)

// tagSet is the result of a single pass over a wv byte stream: every
// text tag (normalized key -> raw value string) and every
// length-prefixed binary tag (raw key, e.g. "WAVEFORM", "CONTROL LIST
// WIDTH4" -> payload bytes).
type tagSet struct {
	text   map[string]string
	binary map[string][]byte
}

// normalizeKey lowercases key and turns spaces into underscores,
// dropping dots, matching original_source's
// "key.lower().replace(' ', '_').replace('.', '')" tag-name mangling.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ".", "")
	return key
}

// lex walks content once, collecting every text and binary tag it
// finds. Every caller in this package passes partial=false; LoadChunk
// reads its payload window through readPayloadWindow rather than
// through lex. In partial mode a binary tag whose declared length runs
// past the end of content is truncated to what's available instead of
// failing, and no tag's closing '}' is verified.
func lex(content []byte, partial bool) (tagSet, error) {
	tags := tagSet{
		text:   map[string]string{},
		binary: map[string][]byte{},
	}

	i := 0
	for i < len(content) {
		if content[i] != '{' {
			i++
			continue
		}
		j := i + 1
		k := j
		for k < len(content) && content[k] != ':' && content[k] != '-' {
			k++
		}
		if k >= len(content) {
			break
		}
		key := string(content[j:k])

		if content[k] == '-' {
			payload, next, ok, err := lexBinaryTag(content, key, k, partial)
			if err != nil {
				return tagSet{}, err
			}
			if !ok {
				i = k + 1
				continue
			}
			tags.binary[key] = payload
			i = next
			continue
		}

		valueStart := k + 1
		if valueStart < len(content) && content[valueStart] == ' ' {
			valueStart++
		}
		end := bytes.IndexByte(content[valueStart:], '}')
		if end == -1 {
			break
		}
		tags.text[normalizeKey(key)] = string(content[valueStart : valueStart+end])
		i = valueStart + end + 1
	}
	return tags, nil
}

// lexBinaryTag parses a {KEY-N:#...} tag starting at the '-' found at
// index dash. It returns the extracted payload, the index to resume
// scanning from, and ok=false if this wasn't actually a well-formed
// length-prefixed tag (the '-' belonged to something else and
// scanning should just continue past it).
func lexBinaryTag(content []byte, key string, dash int, partial bool) ([]byte, int, bool, error) {
	m := dash + 1
	for m < len(content) && content[m] >= '0' && content[m] <= '9' {
		m++
	}
	if m == dash+1 || m >= len(content) || content[m] != ':' {
		return nil, 0, false, nil
	}
	n, err := strconv.Atoi(string(content[dash+1 : m]))
	if err != nil {
		return nil, 0, false, nil
	}

	p := m + 1
	if p < len(content) && content[p] == ' ' {
		p++
	}
	if p >= len(content) || content[p] != '#' {
		return nil, 0, false, nil
	}

	payloadStart := p + 1
	payloadEnd := payloadStart + n - 1
	if payloadEnd > len(content) {
		if !partial {
			return nil, 0, false, fmt.Errorf("%w: Could not extract %s data. Malformed %s section: byte count inconclusive", waveform.ErrFormat, key, key)
		}
		payloadEnd = len(content)
		return content[payloadStart:payloadEnd], payloadEnd, true, nil
	}

	if !partial {
		if content[payloadEnd] != '}' {
			return nil, 0, false, fmt.Errorf("%w: Could not extract %s data. Malformed %s section: no closing brace after %d bytes", waveform.ErrFormat, key, key, n)
		}
	}
	return content[payloadStart:payloadEnd], payloadEnd + 1, true, nil
}

// vim: foldmethod=marker
