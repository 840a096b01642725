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

// ValidateBlockLen returns a configuration error if blockLen can't be used
// as a block length: it must be at least 2 (a length-1 block would have
// End == Start), and it must fit in an int.
func ValidateBlockLen(blockLen PosType) error {
	if blockLen <= 0 {
		return errors.E(ConfigKind, fmt.Sprintf("blocks: block length must be positive, got %d", blockLen))
	}
	if PosType(int(blockLen)) != blockLen {
		return errors.E(ConfigKind, fmt.Sprintf("blocks: block length %d does not fit in a platform int", blockLen))
	}
	if blockLen == 1 {
		return errors.E(ConfigKind, "blocks: block length 1 yields blocks with end == start")
	}
	return nil
}

// GenerateBlockStarts returns the start offsets of the blocks tiling
// [start, end).  Offsets begin at start and are spaced blockLen apart; an
// offset is kept only if offset+blockLen-1 <= end, so a trailing partial
// block is never produced.  The result is empty if the region is shorter
// than a block.
func GenerateBlockStarts(start, end, blockLen PosType) ([]PosType, error) {
	if err := ValidateBlockLen(blockLen); err != nil {
		return nil, err
	}
	if start < 0 || end <= start {
		return nil, errors.E(MalformedKind, fmt.Sprintf("blocks.GenerateBlockStarts: invalid interval [%d, %d)", start, end))
	}
	// n = floor((end - start + 1) / blockLen), written so that it can't
	// overflow.  Each kept offset satisfies offset < end since blockLen >= 2.
	span := end - start
	n := span / blockLen
	if span%blockLen == blockLen-1 {
		n++
	}
	starts := make([]PosType, n)
	offset := start
	for i := range starts {
		starts[i] = offset
		offset += blockLen
	}
	return starts, nil
}

// BuildBlocks tiles [start, end) on chrom with blocks of length blockLen, in
// increasing start order.  Each block has End = Start + blockLen - 1.
func BuildBlocks(chrom string, start, end, blockLen PosType) ([]Block, error) {
	if chrom == "" {
		return nil, errors.E(MalformedKind, "blocks.BuildBlocks: empty chromosome name")
	}
	starts, err := GenerateBlockStarts(start, end, blockLen)
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, len(starts))
	for i, s := range starts {
		if blocks[i], err = NewBlock(chrom, s, s+blockLen-1); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}
