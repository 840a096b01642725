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
	"math"
	"testing"

	"github.com/grailbio/bedblocks/blocks"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestMask(t *testing.T) {
	m, err := LoadMask(context.Background(), "testdata/mask.bed", BEDOpts{})
	assert.NoError(t, err)
	// The empty chr2 interval is dropped.
	expect.EQ(t, m.Len(), 3)

	tests := []struct {
		b    blocks.Block
		want bool
	}{
		{blocks.Block{Chrom: "chr1", Start: 0, End: 9}, true},
		{blocks.Block{Chrom: "chr1", Start: 140, End: 149}, true},
		{blocks.Block{Chrom: "chr1", Start: 149, End: 200}, true},
		{blocks.Block{Chrom: "chr1", Start: 150, End: 200}, false},
		{blocks.Block{Chrom: "chr2", Start: 900, End: 999}, false},
		{blocks.Block{Chrom: "chr2", Start: 900, End: 1000}, true},
		{blocks.Block{Chrom: "chr2", Start: 1999, End: 2100}, true},
		{blocks.Block{Chrom: "chr2", Start: 2000, End: 2100}, false},
		{blocks.Block{Chrom: "chr3", Start: 0, End: 100}, false},
	}
	for _, tt := range tests {
		expect.EQ(t, m.Overlaps(tt.b), tt.want, "%v", tt.b)
	}
}

func TestMaskLargestPosition(t *testing.T) {
	const maxPos = blocks.PosType(math.MaxInt64)
	m, err := NewMask([]Entry{{ChrName: "chr1", Start0: maxPos - 10, End: maxPos}})
	assert.NoError(t, err)
	expect.True(t, m.Overlaps(blocks.Block{Chrom: "chr1", Start: maxPos - 5, End: maxPos}))
	expect.True(t, m.Overlaps(blocks.Block{Chrom: "chr1", Start: maxPos - 20, End: maxPos - 10}))
	expect.False(t, m.Overlaps(blocks.Block{Chrom: "chr1", Start: maxPos - 20, End: maxPos - 11}))
}

func TestMaskRemove(t *testing.T) {
	m, err := NewMask([]Entry{{ChrName: "chr1", Start0: 200, End: 300}})
	assert.NoError(t, err)
	bs, err := blocks.BuildBlocks("chr1", 0, 600, 100)
	assert.NoError(t, err)
	kept := m.Remove(bs)
	expect.EQ(t, kept, []blocks.Block{
		{Chrom: "chr1", Start: 0, End: 99},
		{Chrom: "chr1", Start: 100, End: 199},
		{Chrom: "chr1", Start: 300, End: 399},
		{Chrom: "chr1", Start: 400, End: 499},
		{Chrom: "chr1", Start: 500, End: 599},
	})
	expect.EQ(t, len(bs), 6)
}

func TestNewMaskInvalid(t *testing.T) {
	_, err := NewMask([]Entry{{ChrName: "chr1", Start0: 20, End: 10, LineIdx: 3}})
	expect.True(t, blocks.IsMalformed(err), "%v", err)
}
