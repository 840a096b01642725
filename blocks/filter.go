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
package blocks

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// ValidateMinDist returns a configuration error if minDist is negative.
func ValidateMinDist(minDist PosType) error {
	if minDist < 0 {
		return errors.E(ConfigKind, fmt.Sprintf("blocks: minimum distance must be nonnegative, got %d", minDist))
	}
	return nil
}

// checkSorted verifies that the blocks of each chromosome are contiguous,
// appear in increasing start order, and do not overlap.
func checkSorted(blocks []Block) error {
	done := map[string]bool{}
	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		if prev.Chrom != cur.Chrom {
			done[prev.Chrom] = true
			if done[cur.Chrom] {
				return errors.E(InvariantKind, fmt.Sprintf("blocks.FilterMinDistance: block %v at index %d returns to chromosome %s after %v", cur, i, cur.Chrom, prev))
			}
			continue
		}
		if cur.Start < prev.Start || prev.End > cur.Start {
			return errors.E(InvariantKind, fmt.Sprintf("blocks.FilterMinDistance: block %v at index %d is out of order or overlaps %v", cur, i, prev))
		}
	}
	return nil
}

// FilterMinDistance returns the subsequence of blocks chosen by a single
// greedy left-to-right sweep, such that every pair of consecutive retained
// blocks on the same chromosome satisfies next.Start - prev.End >= minDist.
// Blocks on different chromosomes are always far enough apart.
//
// The blocks of each chromosome must be contiguous in the input, sorted and
// nonoverlapping, as BuildBlocks output is.  Otherwise an invariant-violation error is returned
// and no blocks are.  On such input the earliest-start-wins sweep retains as
// many blocks as any valid subsequence can.
func FilterMinDistance(blocks []Block, minDist PosType) ([]Block, error) {
	if err := ValidateMinDist(minDist); err != nil {
		return nil, err
	}
	if err := checkSorted(blocks); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return []Block{}, nil
	}
	result := make([]Block, 0, len(blocks))
	anchor := 0
	for cand := 1; cand < len(blocks); cand++ {
		d := BlockDistance(blocks[anchor], blocks[cand])
		if n, ok := d.Finite(); ok && n < 0 {
			return nil, errors.E(InvariantKind, fmt.Sprintf("blocks.FilterMinDistance: negative distance %d between %v and %v", n, blocks[anchor], blocks[cand]))
		}
		if d.AtLeast(minDist) {
			result = append(result, blocks[anchor])
			anchor = cand
		}
	}
	// The last anchor has nothing after it to disqualify it.
	return append(result, blocks[anchor]), nil
}

// Tile generates the blocks of r and filters them with FilterMinDistance.
// minDist is validated before any block is generated.
func Tile(r Region, minDist PosType) ([]Block, error) {
	if err := ValidateMinDist(minDist); err != nil {
		return nil, err
	}
	blocks, err := r.Blocks()
	if err != nil {
		return nil, err
	}
	return FilterMinDistance(blocks, minDist)
}

// TileInterval is like Tile, but takes the region's fields directly.  Both
// blockLen and minDist are checked before the interval is looked at.
func TileInterval(chrom string, start, end, blockLen, minDist PosType) ([]Block, error) {
	if err := ValidateBlockLen(blockLen); err != nil {
		return nil, err
	}
	if err := ValidateMinDist(minDist); err != nil {
		return nil, err
	}
	r, err := NewRegion(chrom, start, end, blockLen)
	if err != nil {
		return nil, err
	}
	return Tile(r, minDist)
}
