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
	"sync"
)

// SamplesPool is a dynamically sized buffer pool of a set size and
// sample format, for code that processes large payloads in blocks and
// wants to reuse buffers across blocks instead of allocating one per
// block. None of the codecs in this module draw from it.
//
// Under the hood this is a sync.Pool, with type-safe-ish hooks to make
// it more ergonomic to use from code that only knows it wants
// "a Samples buffer of this format."
type SamplesPool struct {
	pool *sync.Pool
}

// Put returns a buffer to the pool.
func (sp SamplesPool) Put(s Samples) {
	sp.pool.Put(s)
}

// Get returns an unused buffer, or allocates a new one.
//
// The smallest size of a buffer returned is the length passed to
// NewSamplesPool, of the provided SampleFormat.
func (sp SamplesPool) Get() Samples {
	return sp.pool.Get().(Samples)
}

// NewSamplesPool creates a new SamplesPool that creates buffers of the
// provided sample format and length.
func NewSamplesPool(format SampleFormat, length int) (*SamplesPool, error) {
	switch format {
	case SampleFormatC128, SampleFormatC64, SampleFormatI16:
		break
	default:
		return nil, ErrSampleFormatUnknown
	}

	return &SamplesPool{
		pool: &sync.Pool{
			New: func() interface{} {
				buf, _ := MakeSamples(format, length)
				return buf
			},
		},
	}, nil
}

// vim: foldmethod=marker
