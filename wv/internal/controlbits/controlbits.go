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

// Package controlbits implements the wv CONTROL LIST WIDTH4 wire
// encoding: a 4-row boolean matrix, column-major packed two columns to
// a byte, big-endian bit order (spec.md §4.3.7). Grounded on
// original_source/wv/utility/array_to_bytes.py's
// pack_bool_array_to_bytes/unpack_bytes_to_bool_array, reimplemented
// as a plain byte-slice walk instead of a numpy reshape/packbits call.
package controlbits

import (
	"fmt"
)

// ErrNotFourRows is returned by Pack if the four rows of the input do
// not all have the same length. The [4][]bool input type already fixes
// the row count at four.
var ErrNotFourRows = fmt.Errorf("controlbits: control list must have exactly 4 rows")

// Pack packs a 4-row boolean matrix into bytes. Every two consecutive
// columns (8 bits) become one byte, big-endian bit order: row 0 of
// column 0 is the MSB, row 3 of column 1 is the LSB. An odd column
// count is right-padded with a zero column (spec.md §4.3.7).
func Pack(rows [4][]bool) ([]byte, error) {
	n := len(rows[0])
	for _, r := range rows {
		if len(r) != n {
			return nil, ErrNotFourRows
		}
	}

	cols := n
	if cols%2 != 0 {
		cols++
	}
	out := make([]byte, cols/2)

	get := func(row, col int) bool {
		if col >= n {
			return false
		}
		return rows[row][col]
	}

	for pair := 0; pair < cols/2; pair++ {
		c0, c1 := pair*2, pair*2+1
		var b byte
		bits := [8]bool{
			get(0, c0), get(1, c0), get(2, c0), get(3, c0),
			get(0, c1), get(1, c1), get(2, c1), get(3, c1),
		}
		for i, set := range bits {
			if set {
				b |= 1 << uint(7-i)
			}
		}
		out[pair] = b
	}
	return out, nil
}

// Unpack unpacks bytes into a 4-row boolean matrix, truncated to
// numSamples columns. The inverse of Pack: each byte expands to 8
// bits (two columns of 4 rows), big-endian bit order.
func Unpack(data []byte, numSamples int) [4][]bool {
	cols := len(data) * 2
	var rows [4][]bool
	for i := range rows {
		rows[i] = make([]bool, 0, cols)
	}

	for _, b := range data {
		bits := [8]bool{
			b&(1<<7) != 0,
			b&(1<<6) != 0,
			b&(1<<5) != 0,
			b&(1<<4) != 0,
			b&(1<<3) != 0,
			b&(1<<2) != 0,
			b&(1<<1) != 0,
			b&(1<<0) != 0,
		}
		rows[0] = append(rows[0], bits[0], bits[4])
		rows[1] = append(rows[1], bits[1], bits[5])
		rows[2] = append(rows[2], bits[2], bits[6])
		rows[3] = append(rows[3], bits[3], bits[7])
	}

	if numSamples < cols {
		for i := range rows {
			rows[i] = rows[i][:numSamples]
		}
	}
	return rows
}

// vim: foldmethod=marker
