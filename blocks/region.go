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

// Region is an input interval to be tiled into blocks.  Start and End are
// 0-based, half-open.  Every block generated from a Region has length
// BlockLen.
type Region struct {
	Chrom    string
	Start    PosType
	End      PosType
	BlockLen PosType
}

// NewRegion validates its arguments and returns a Region.  A region with an
// empty chromosome name, a negative start, or end <= start is a malformed
// record.  An unusable blockLen is a configuration error.
func NewRegion(chrom string, start, end, blockLen PosType) (Region, error) {
	if err := ValidateBlockLen(blockLen); err != nil {
		return Region{}, err
	}
	if err := validateInterval(chrom, start, end); err != nil {
		return Region{}, err
	}
	return Region{Chrom: chrom, Start: start, End: end, BlockLen: blockLen}, nil
}

func validateInterval(chrom string, start, end PosType) error {
	if chrom == "" {
		return errors.E(MalformedKind, fmt.Sprintf("blocks: empty chromosome name for interval [%d, %d)", start, end))
	}
	if start < 0 {
		return errors.E(MalformedKind, fmt.Sprintf("blocks: negative start coordinate in %s:%d-%d", chrom, start, end))
	}
	if end <= start {
		return errors.E(MalformedKind, fmt.Sprintf("blocks: end must exceed start in %s:%d-%d", chrom, start, end))
	}
	return nil
}

// Blocks tiles r.  See BuildBlocks.
func (r Region) Blocks() ([]Block, error) {
	return BuildBlocks(r.Chrom, r.Start, r.End, r.BlockLen)
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d/%d", r.Chrom, r.Start, r.End, r.BlockLen)
}
