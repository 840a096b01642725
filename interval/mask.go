// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package interval

import (
	"context"
	"fmt"

	ivtree "github.com/biogo/store/interval"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bedblocks/blocks"
)

// maskInterval is a half-open [start, end) interval stored in a Mask.
type maskInterval struct {
	start, end int
	id         uintptr
}

func (m maskInterval) Overlap(b ivtree.IntRange) bool {
	return m.end > b.Start && m.start < b.End
}
func (m maskInterval) ID() uintptr            { return m.id }
func (m maskInterval) Range() ivtree.IntRange { return ivtree.IntRange{Start: m.start, End: m.end} }

// blockQuery is the closed interval [start, last] covered by a Block.  The
// inclusive bound keeps a block ending at the largest position queryable.
type blockQuery struct {
	start, last int
}

func (q blockQuery) Overlap(b ivtree.IntRange) bool {
	return b.End > q.start && b.Start <= q.last
}

// Mask is a set of intervals that blocks must not touch, for example
// repeat or blacklist regions.  Unlike the input regions, mask intervals may
// overlap each other.  A Mask is safe for concurrent readers once built.
type Mask struct {
	trees map[string]*ivtree.IntTree
	n     int
}

// NewMask builds a Mask from entries.  Empty intervals are ignored.
func NewMask(entries []Entry) (*Mask, error) {
	m := &Mask{trees: make(map[string]*ivtree.IntTree)}
	for _, e := range entries {
		if e.Start0 < 0 || e.End < e.Start0 {
			return nil, errors.E(blocks.MalformedKind, fmt.Sprintf("interval.NewMask: invalid interval %s:%d-%d (line %d)", e.ChrName, e.Start0, e.End, e.LineIdx))
		}
		if e.End == e.Start0 {
			continue
		}
		tree := m.trees[e.ChrName]
		if tree == nil {
			tree = &ivtree.IntTree{}
			m.trees[e.ChrName] = tree
		}
		iv := maskInterval{start: int(e.Start0), end: int(e.End), id: uintptr(m.n)}
		if err := tree.Insert(iv, true); err != nil {
			return nil, errors.E(err, "interval.NewMask:", e.ChrName)
		}
		m.n++
	}
	for _, tree := range m.trees {
		tree.AdjustRanges()
	}
	return m, nil
}

// LoadMask reads a Mask from a BED file.  Any malformed record is an error.
func LoadMask(ctx context.Context, path string, opts BEDOpts) (*Mask, error) {
	entries, err := ReadEntries(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	m, err := NewMask(entries)
	if err != nil {
		return nil, err
	}
	log.Printf("mask loaded from %s, %d interval(s) on %d contig(s)", path, m.n, len(m.trees))
	return m, nil
}

// Len returns the number of nonempty intervals in m.
func (m *Mask) Len() int {
	return m.n
}

// Overlaps reports whether any position of b is masked.
func (m *Mask) Overlaps(b blocks.Block) bool {
	tree := m.trees[b.Chrom]
	if tree == nil {
		return false
	}
	return len(tree.Get(blockQuery{start: int(b.Start), last: int(b.End)})) > 0
}

// Remove returns the blocks that don't overlap m, in their original order.
// It allocates a new slice; bs is not modified.
func (m *Mask) Remove(bs []blocks.Block) []blocks.Block {
	kept := make([]blocks.Block, 0, len(bs))
	for _, b := range bs {
		if !m.Overlaps(b) {
			kept = append(kept, b)
		}
	}
	return kept
}
